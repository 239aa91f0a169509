// file: internals/features/school/materials/route/material_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "novaeclass_backend/internals/features/school/materials/controller"
)

func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)

	materials := r.Group("/materials")
	materials.Post("/", ctl.Create)
	materials.Get("/", ctl.ListAll)
	materials.Patch("/:id", ctl.Patch)
	materials.Delete("/:id", ctl.Delete)
}

func MaterialStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := materialController.NewMaterialController(db)
	r.Get("/materials", ctl.ListForStudent)
}
