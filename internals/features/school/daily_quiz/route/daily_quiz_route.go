// file: internals/features/school/daily_quiz/route/daily_quiz_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dailyQuizController "novaeclass_backend/internals/features/school/daily_quiz/controller"
)

func DailyQuizRoutes(r fiber.Router, db *gorm.DB) {
	ctl := dailyQuizController.NewDailyQuizController(db)

	quiz := r.Group("/daily-quiz")
	quiz.Get("/", ctl.Draw)
	quiz.Post("/answer", ctl.Answer)
}
