// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoute "novaeclass_backend/internals/features/billing/subscriptions/route"
	reportRoute "novaeclass_backend/internals/features/reports/route"
	assignmentRoute "novaeclass_backend/internals/features/school/assignments/route"
	dailyQuizRoute "novaeclass_backend/internals/features/school/daily_quiz/route"
	gameRoute "novaeclass_backend/internals/features/school/games/route"
	instanceRoute "novaeclass_backend/internals/features/school/instances/route"
	materialRoute "novaeclass_backend/internals/features/school/materials/route"
	studyPlanRoute "novaeclass_backend/internals/features/school/study_plans/route"
	authRoute "novaeclass_backend/internals/features/users/auth/route"
	parentRoute "novaeclass_backend/internals/features/users/parents/route"
	studentRoute "novaeclass_backend/internals/features/users/students/route"
	userModel "novaeclass_backend/internals/features/users/user/model"
	"novaeclass_backend/internals/constants"
	authMiddleware "novaeclass_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public auth routes...")
	authRoute.AuthPublicRoutes(api, db)

	// ===================== PROTECTED =====================
	// Webhook midtrans dikecualikan di dalam AuthMiddleware.
	api.Use(authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(api, db)
	billingRoute.BillingRoutes(api, db)
	studyPlanRoute.StudyPlanRoutes(api, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up student group...")
	student := api.Group("/s",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("portal siswa"), string(userModel.RoleStudent)),
	)
	studentRoute.StudentProfileRoutes(student, db)
	instanceRoute.StudentAssignmentRoutes(student, db)
	materialRoute.MaterialStudentRoutes(student, db)
	gameRoute.GameStudentRoutes(student, db)
	dailyQuizRoute.DailyQuizRoutes(student, db)
	reportRoute.StudentReportRoutes(student, db)

	// ===================== PARENT =====================
	log.Println("[INFO] Setting up parent group...")
	parent := api.Group("/p",
		authMiddleware.OnlyRoles(constants.RoleErrorParent("portal orang tua"), string(userModel.RoleParent)),
	)
	parentRoute.ParentProfileRoutes(parent, db)
	reportRoute.ParentReportRoutes(parent, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin group...")
	admin := api.Group("/a",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), string(userModel.RoleAdmin)),
	)
	assignmentRoute.AssignmentAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	gameRoute.GameAdminRoutes(admin, db)
}
