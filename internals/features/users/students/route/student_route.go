// file: internals/features/users/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "novaeclass_backend/internals/features/users/students/controller"
)

// StudentProfileRoutes: profil siswa sendiri (jenjang, waktu belajar, avatar).
func StudentProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	me := r.Group("/me")
	me.Get("/", ctl.Me)
	me.Patch("/grade", ctl.UpdateGrade)
	me.Post("/heartbeat", ctl.Heartbeat)
	me.Put("/avatar", ctl.UploadAvatar)
	me.Get("/avatar", ctl.GetAvatar)
}
