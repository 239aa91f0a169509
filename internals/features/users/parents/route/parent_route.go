// file: internals/features/users/parents/route/parent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentController "novaeclass_backend/internals/features/users/parents/controller"
)

func ParentProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := parentController.NewParentController(db)

	r.Get("/me", ctl.Me)
	r.Get("/children", ctl.Children)
}
