// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "novaeclass_backend/internals/features/users/auth/controller"
	"novaeclass_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token (register/login) + rate limit ketat.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
}

// AuthProtectedRoutes: endpoint yang butuh token aktif.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", ctl.Me)
}
