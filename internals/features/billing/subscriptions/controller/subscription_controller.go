// file: internals/features/billing/subscriptions/controller/subscription_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bmodel "novaeclass_backend/internals/features/billing/subscriptions/model"
	bservice "novaeclass_backend/internals/features/billing/subscriptions/service"
	userModel "novaeclass_backend/internals/features/users/user/model"
	helper "novaeclass_backend/internals/helpers"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// GET /api/billing/me — status entitlement principal saat ini
func (ctl *SubscriptionController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile bmodel.BillingProfileModel
	if err := ctl.DB.Where("billing_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// belum pernah checkout → demo
			return helper.JsonOK(c, "ok", fiber.Map{
				"is_paid": false,
				"plan":    bmodel.PlanDemo,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca billing profile")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"is_paid": profile.BillingProfileIsPaid,
		"plan":    profile.BillingProfilePlan,
		"paid_at": profile.BillingProfilePaidAt,
	})
}

// POST /api/billing/checkout — mulai upgrade ke paket berbayar (Snap)
func (ctl *SubscriptionController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	// get-or-create profile (idempoten keyed user_id)
	profile := bmodel.BillingProfileModel{
		BillingProfileUserID: userID,
	}
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "billing_profile_user_id"}},
		DoNothing: true,
	}).Create(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan billing profile")
	}
	if err := ctl.DB.Where("billing_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca billing profile")
	}

	if profile.BillingProfileIsPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Paket berbayar sudah aktif")
	}

	orderID := fmt.Sprintf("NOVAE-%s-%d", userID.String()[:8], time.Now().Unix())
	token, redirectURL, err := bservice.GenerateSnapToken(orderID, user.UserName, user.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	profile.BillingProfileOrderID = &orderID
	if err := ctl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	return helper.JsonCreated(c, "Checkout dibuat", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// POST /api/billing/notification — webhook Midtrans (tanpa auth, lihat skipPaths middleware)
func (ctl *SubscriptionController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := bservice.HandleSubscriptionStatusWebhook(ctl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "ok", nil)
}

// EnsureProfile dipakai internal (mis. seeding admin) — get-or-create tanpa HTTP.
func EnsureProfile(db *gorm.DB, userID uuid.UUID) error {
	p := bmodel.BillingProfileModel{BillingProfileUserID: userID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "billing_profile_user_id"}},
		DoNothing: true,
	}).Create(&p).Error
}
