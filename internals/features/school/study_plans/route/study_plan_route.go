// file: internals/features/school/study_plans/route/study_plan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studyPlanController "novaeclass_backend/internals/features/school/study_plans/controller"
)

// StudyPlanRoutes: CRUD rencana belajar pribadi (semua role, akun berbayar).
func StudyPlanRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studyPlanController.NewStudyPlanController(db)

	plans := r.Group("/study-plans")
	plans.Post("/", ctl.Create)
	plans.Get("/", ctl.List)
	plans.Patch("/:id", ctl.Patch)
	plans.Delete("/:id", ctl.Delete)
}
