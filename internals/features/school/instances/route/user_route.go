// file: internals/features/school/instances/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instanceController "novaeclass_backend/internals/features/school/instances/controller"
)

// StudentAssignmentRoutes: pengerjaan assignment oleh siswa.
func StudentAssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instanceController.NewInstanceUserController(db)

	assignments := r.Group("/assignments")
	assignments.Get("/", ctl.List)
	assignments.Get("/:id", ctl.Detail)
	assignments.Post("/:id/submit", ctl.Submit)
	assignments.Post("/:id/retake", ctl.Retake)
	assignments.Get("/:id/export", ctl.Export)
}
