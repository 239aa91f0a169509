// file: internals/features/school/study_plans/controller/study_plan_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	spdto "novaeclass_backend/internals/features/school/study_plans/dto"
	spmodel "novaeclass_backend/internals/features/school/study_plans/model"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

// Study plan adalah fitur berbayar: semua endpoint di sini menolak akun demo.
type StudyPlanController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewStudyPlanController(db *gorm.DB) *StudyPlanController {
	return &StudyPlanController{DB: db}
}

func (ctl *StudyPlanController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// requirePaidUser: userID + cek langganan. Siswa dicek lewat orang tuanya juga.
func (ctl *StudyPlanController) requirePaidUser(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}

	var isPaid bool
	if helperAuth.IsStudent(c) {
		profileID, err := helperAuth.GetStudentProfileID(c)
		if err != nil {
			return uuid.Nil, err
		}
		isPaid, err = billingService.IsPaidForStudent(ctl.DB, profileID)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
		}
	} else {
		isPaid, err = billingService.IsPaid(ctl.DB, userID)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
		}
	}

	if !isPaid {
		return uuid.Nil, fiber.NewError(fiber.StatusPaymentRequired, "Study plan hanya untuk akun berbayar")
	}
	return userID, nil
}

// POST /api/study-plans
func (ctl *StudyPlanController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := ctl.requirePaidUser(c)
	if err != nil {
		return err
	}

	var req spdto.CreateStudyPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat study plan")
	}
	return helper.JsonCreated(c, "Study plan dibuat", spdto.FromStudyPlanModel(m))
}

// GET /api/study-plans
func (ctl *StudyPlanController) List(c *fiber.Ctx) error {
	userID, err := ctl.requirePaidUser(c)
	if err != nil {
		return err
	}

	var rows []spmodel.StudyPlanModel
	if err := ctl.DB.Where("study_plan_user_id = ?", userID).
		Order("study_plan_updated_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil study plan")
	}
	return helper.JsonOK(c, "ok", spdto.FromStudyPlanModels(rows))
}

// findOwned: plan milik user ini; milik orang lain = 404.
func (ctl *StudyPlanController) findOwned(c *fiber.Ctx, userID uuid.UUID) (*spmodel.StudyPlanModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id tidak valid")
	}
	var m spmodel.StudyPlanModel
	if err := ctl.DB.Where("study_plan_id = ? AND study_plan_user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Study plan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil study plan")
	}
	return &m, nil
}

// PATCH /api/study-plans/:id
func (ctl *StudyPlanController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := ctl.requirePaidUser(c)
	if err != nil {
		return err
	}
	m, err := ctl.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req spdto.UpdateStudyPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}
	if err := req.ApplyToModel(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan study plan")
	}
	return helper.JsonUpdated(c, "Study plan diperbarui", spdto.FromStudyPlanModel(m))
}

// DELETE /api/study-plans/:id
func (ctl *StudyPlanController) Delete(c *fiber.Ctx) error {
	userID, err := ctl.requirePaidUser(c)
	if err != nil {
		return err
	}
	m, err := ctl.findOwned(c, userID)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus study plan")
	}
	return helper.JsonDeleted(c, "Study plan dihapus", fiber.Map{"study_plan_id": m.StudyPlanID})
}
