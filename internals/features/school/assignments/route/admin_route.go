// file: internals/features/school/assignments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "novaeclass_backend/internals/features/school/assignments/controller"
)

// AssignmentAdminRoutes: CRUD assignment & soal (khusus admin).
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentAdminController(db)

	assignments := r.Group("/assignments")
	assignments.Post("/", ctl.Create)
	assignments.Get("/", ctl.List)
	assignments.Get("/:id", ctl.GetByID)
	assignments.Patch("/:id", ctl.Patch)
	assignments.Delete("/:id", ctl.Delete)

	assignments.Post("/:id/questions", ctl.CreateQuestion)
	assignments.Get("/:id/questions", ctl.ListQuestions)

	r.Patch("/questions/:id", ctl.PatchQuestion)
	r.Delete("/questions/:id", ctl.DeleteQuestion)
}
