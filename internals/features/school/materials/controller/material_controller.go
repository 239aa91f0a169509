// file: internals/features/school/materials/controller/material_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	mdto "novaeclass_backend/internals/features/school/materials/dto"
	mmodel "novaeclass_backend/internals/features/school/materials/model"
	studentService "novaeclass_backend/internals/features/users/students/service"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type MaterialController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

func (ctl *MaterialController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================
   ADMIN
========================= */

// POST /api/a/materials
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req mdto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat materi")
	}
	return helper.JsonCreated(c, "Materi dibuat", mdto.FromMaterialModel(m))
}

// GET /api/a/materials
func (ctl *MaterialController) ListAll(c *fiber.Ctx) error {
	q := ctl.DB.Model(&mmodel.MaterialModel{})
	if grade := c.Query("grade"); grade != "" {
		q = q.Where("material_grade_level = ?", grade)
	}

	var rows []mmodel.MaterialModel
	if err := q.Order("material_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}
	return helper.JsonOK(c, "ok", mdto.FromMaterialModels(rows))
}

// PATCH /api/a/materials/:id
func (ctl *MaterialController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req mdto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	var m mmodel.MaterialModel
	if err := ctl.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}
	return helper.JsonUpdated(c, "Materi diperbarui", mdto.FromMaterialModel(&m))
}

// DELETE /api/a/materials/:id
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.Delete(&mmodel.MaterialModel{}, "material_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	return helper.JsonDeleted(c, "Materi dihapus", fiber.Map{"material_id": id})
}

/* =========================
   STUDENT
========================= */

// GET /api/s/materials
// Materi sesuai jenjang siswa; akun demo hanya materi demo.
func (ctl *MaterialController) ListForStudent(c *fiber.Ctx) error {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return err
	}
	profile, err := studentService.FindProfileByID(ctl.DB, profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}
	if !profile.HasGrade() {
		return helper.JsonOK(c, "ok", []mdto.MaterialResponse{})
	}

	isPaid, err := billingService.IsPaidForStudent(ctl.DB, profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}

	q := ctl.DB.Model(&mmodel.MaterialModel{}).
		Where("material_grade_level = ?", *profile.StudentProfileGrade)
	if !isPaid {
		q = q.Where("material_is_demo = ?", true)
	}

	var rows []mmodel.MaterialModel
	if err := q.Order("material_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}
	return helper.JsonOK(c, "ok", mdto.FromMaterialModels(rows))
}
