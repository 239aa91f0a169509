// file: internals/features/users/parents/controller/parent_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	parentModel "novaeclass_backend/internals/features/users/parents/model"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

type childListItem struct {
	StudentProfileID uuid.UUID `json:"student_profile_id" gorm:"column:student_profile_id"`
	UserName         string    `json:"user_name" gorm:"column:user_name"`
	Grade            *string   `json:"grade" gorm:"column:student_profile_grade"`
}

// GET /api/p/me
// Profil orang tua + daftar anak + status langganan.
func (ctl *ParentController) Me(c *fiber.Ctx) error {
	parentProfileID, err := helperAuth.GetParentProfileID(c)
	if err != nil {
		return err
	}

	var profile parentModel.ParentProfileModel
	if err := ctl.DB.First(&profile, "parent_profile_id = ?", parentProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil orang tua tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	children, err := ctl.listChildren(parentProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	isPaid, err := billingService.IsPaid(ctl.DB, profile.ParentProfileUserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"parent_profile_id":           profile.ParentProfileID,
		"parent_profile_phone_number": profile.ParentProfilePhoneNumber,
		"is_paid":                     isPaid,
		"children":                    children,
	})
}

// GET /api/p/children
func (ctl *ParentController) Children(c *fiber.Ctx) error {
	parentProfileID, err := helperAuth.GetParentProfileID(c)
	if err != nil {
		return err
	}
	children, err := ctl.listChildren(parentProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "ok", children)
}

func (ctl *ParentController) listChildren(parentProfileID uuid.UUID) ([]childListItem, error) {
	var rows []childListItem
	err := ctl.DB.Table("student_profiles").
		Select("student_profiles.student_profile_id, users.user_name, student_profiles.student_profile_grade").
		Joins("JOIN parent_children pc ON pc.student_profile_id = student_profiles.student_profile_id").
		Joins("JOIN users ON users.id = student_profiles.student_profile_user_id").
		Where("pc.parent_profile_id = ?", parentProfileID).
		Order("users.user_name ASC").
		Find(&rows).Error
	if rows == nil {
		rows = []childListItem{}
	}
	return rows, err
}
