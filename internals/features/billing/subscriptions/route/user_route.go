package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionController "novaeclass_backend/internals/features/billing/subscriptions/controller"
)

// BillingRoutes: /api/billing
// Catatan: /notification harus cocok dengan skipPaths di auth middleware.
func BillingRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)

	billing := r.Group("/billing")
	billing.Get("/me", ctrl.Me)
	billing.Post("/checkout", ctrl.Checkout)
	billing.Post("/notification", ctrl.Notification)
}
