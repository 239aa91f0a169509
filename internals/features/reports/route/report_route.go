// file: internals/features/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "novaeclass_backend/internals/features/reports/controller"
)

// ParentReportRoutes: dashboard & laporan nilai anak.
func ParentReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewParentReportController(db)

	r.Get("/dashboard", ctl.Dashboard)
	r.Get("/children/:id/grades", ctl.ChildGrades)
	r.Get("/children/:id/results", ctl.ChildResults)
}

// StudentReportRoutes: rapor milik siswa sendiri.
func StudentReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewParentReportController(db)
	r.Get("/grades", ctl.StudentGrades)
}
