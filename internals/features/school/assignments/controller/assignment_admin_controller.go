// file: internals/features/school/assignments/controller/assignment_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	adto "novaeclass_backend/internals/features/school/assignments/dto"
	amodel "novaeclass_backend/internals/features/school/assignments/model"
	helper "novaeclass_backend/internals/helpers"
)

type AssignmentAdminController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewAssignmentAdminController(db *gorm.DB) *AssignmentAdminController {
	return &AssignmentAdminController{DB: db}
}

func (ctl *AssignmentAdminController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

// POST /api/a/assignments
func (ctl *AssignmentAdminController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req adto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format due date tidak valid")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}
	return helper.JsonCreated(c, "Assignment dibuat", adto.FromAssignmentModel(m))
}

// GET /api/a/assignments?grade=&is_demo=&page=&per_page=
func (ctl *AssignmentAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&amodel.AssignmentModel{})
	if grade := c.Query("grade"); grade != "" {
		q = q.Where("assignment_grade_level = ?", grade)
	}
	if isDemo := c.Query("is_demo"); isDemo != "" {
		q = q.Where("assignment_is_demo = ?", isDemo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung assignment")
	}

	var rows []amodel.AssignmentModel
	if err := q.Order("assignment_due_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", adto.FromAssignmentModels(rows), &p)
}

// GET /api/a/assignments/:id
func (ctl *AssignmentAdminController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m amodel.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	return helper.JsonOK(c, "ok", adto.FromAssignmentModel(&m))
}

// PATCH /api/a/assignments/:id
func (ctl *AssignmentAdminController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req adto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	var m amodel.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format due date tidak valid")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}
	return helper.JsonUpdated(c, "Assignment diperbarui", adto.FromAssignmentModel(&m))
}

// DELETE /api/a/assignments/:id (soft delete)
func (ctl *AssignmentAdminController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Delete(&amodel.AssignmentModel{}, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	return helper.JsonDeleted(c, "Assignment dihapus", fiber.Map{"assignment_id": id})
}

/* ==========================================================================================
   QUESTIONS (nested di assignment)
========================================================================================== */

// POST /api/a/assignments/:id/questions
func (ctl *AssignmentAdminController) CreateQuestion(c *fiber.Ctx) error {
	ctl.ensureValidator()

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := ctl.DB.Model(&amodel.AssignmentModel{}).
		Where("assignment_id = ?", assignmentID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	var req adto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m := req.ToModel(assignmentID)
	if err := m.ValidateShape(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}
	return helper.JsonCreated(c, "Soal dibuat", adto.FromQuestionModel(m))
}

// GET /api/a/assignments/:id/questions
func (ctl *AssignmentAdminController) ListQuestions(c *fiber.Ctx) error {
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []amodel.QuestionModel
	if err := ctl.DB.Where("question_assignment_id = ?", assignmentID).
		Order("question_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	out := make([]adto.QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, adto.FromQuestionModel(&rows[i]))
	}
	return helper.JsonOK(c, "ok", out)
}

// PATCH /api/a/questions/:id
func (ctl *AssignmentAdminController) PatchQuestion(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m amodel.QuestionModel
	if err := ctl.DB.Where("question_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}

	var req adto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	req.ApplyToModel(&m)
	if err := m.ValidateShape(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan soal")
	}
	return helper.JsonUpdated(c, "Soal diperbarui", adto.FromQuestionModel(&m))
}

// DELETE /api/a/questions/:id (soft delete)
func (ctl *AssignmentAdminController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Delete(&amodel.QuestionModel{}, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	return helper.JsonDeleted(c, "Soal dihapus", fiber.Map{"question_id": id})
}
