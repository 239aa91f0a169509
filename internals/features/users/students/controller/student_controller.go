// file: internals/features/users/students/controller/student_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	instanceService "novaeclass_backend/internals/features/school/instances/service"
	studentDto "novaeclass_backend/internals/features/users/students/dto"
	studentModel "novaeclass_backend/internals/features/users/students/model"
	studentService "novaeclass_backend/internals/features/users/students/service"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func (ctl *StudentController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

func (ctl *StudentController) ownProfile(c *fiber.Ctx) (*studentModel.StudentProfileModel, error) {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return nil, err
	}
	profile, err := studentService.FindProfileByID(ctl.DB, profileID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}
	return profile, nil
}

// GET /api/s/me
func (ctl *StudentController) Me(c *fiber.Ctx) error {
	profile, err := ctl.ownProfile(c)
	if err != nil {
		return err
	}
	active := studentService.ActiveSecondsToday(*profile, time.Now())
	return helper.JsonOK(c, "ok", studentDto.FromStudentProfileModel(profile, active))
}

// PATCH /api/s/me/grade
// Ganti jenjang langsung memicu pembuatan instance assignment jenjang baru.
func (ctl *StudentController) UpdateGrade(c *fiber.Ctx) error {
	ctl.ensureValidator()

	profile, err := ctl.ownProfile(c)
	if err != nil {
		return err
	}

	var req studentDto.UpdateStudentGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	grade := studentModel.Grade(req.StudentProfileGrade)
	profile.StudentProfileGrade = &grade
	if err := ctl.DB.Model(&studentModel.StudentProfileModel{}).
		Where("student_profile_id = ?", profile.StudentProfileID).
		Update("student_profile_grade", grade).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jenjang")
	}

	isPaid, err := billingService.IsPaidForStudent(ctl.DB, profile.StudentProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}
	if err := instanceService.EnsureInstances(ctl.DB, profile.StudentProfileID, profile.StudentProfileGrade, isPaid); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan assignment jenjang baru")
	}

	active := studentService.ActiveSecondsToday(*profile, time.Now())
	return helper.JsonUpdated(c, "Jenjang diperbarui", studentDto.FromStudentProfileModel(profile, active))
}

// POST /api/s/me/heartbeat
// Dipanggil periodik selama siswa aktif; akumulasi waktu belajar harian.
func (ctl *StudentController) Heartbeat(c *fiber.Ctx) error {
	ctl.ensureValidator()

	profile, err := ctl.ownProfile(c)
	if err != nil {
		return err
	}

	var req studentDto.HeartbeatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	now := time.Now()
	if err := studentService.RecordHeartbeat(ctl.DB, profile, now, req.ElapsedSeconds); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat waktu belajar")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"active_seconds_today": studentService.ActiveSecondsToday(*profile, now),
	})
}

/* =========================
   AVATAR
========================= */

// PUT /api/s/me/avatar  (multipart field "avatar")
// Gambar dikonversi ke WebP 256px sebelum disimpan.
func (ctl *StudentController) UploadAvatar(c *fiber.Ctx) error {
	profile, err := ctl.ownProfile(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar tidak ditemukan")
	}

	webpBytes, err := helper.ConvertAvatarToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Model(&studentModel.StudentProfileModel{}).
		Where("student_profile_id = ?", profile.StudentProfileID).
		Update("student_profile_avatar", webpBytes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}
	return helper.JsonUpdated(c, "Avatar diperbarui", fiber.Map{"size_bytes": len(webpBytes)})
}

// GET /api/s/me/avatar
func (ctl *StudentController) GetAvatar(c *fiber.Ctx) error {
	profile, err := ctl.ownProfile(c)
	if err != nil {
		return err
	}
	if len(profile.StudentProfileAvatar) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Avatar belum diunggah")
	}
	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(profile.StudentProfileAvatar)
}
