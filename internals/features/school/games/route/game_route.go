// file: internals/features/school/games/route/game_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gameController "novaeclass_backend/internals/features/school/games/controller"
)

func GameAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gameController.NewGameController(db)

	games := r.Group("/games")
	games.Post("/", ctl.Create)
	games.Get("/", ctl.ListAll)
	games.Delete("/:id", ctl.Delete)
}

func GameStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gameController.NewGameController(db)
	r.Get("/games", ctl.ListForStudent)
}
