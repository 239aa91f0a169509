// file: internals/features/school/instances/controller/instance_user_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	assignmentDto "novaeclass_backend/internals/features/school/assignments/dto"
	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	idto "novaeclass_backend/internals/features/school/instances/dto"
	iservice "novaeclass_backend/internals/features/school/instances/service"
	studentModel "novaeclass_backend/internals/features/users/students/model"
	studentService "novaeclass_backend/internals/features/users/students/service"
	"novaeclass_backend/internals/configs"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type InstanceUserController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewInstanceUserController(db *gorm.DB) *InstanceUserController {
	return &InstanceUserController{DB: db}
}

func (ctl *InstanceUserController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// studentContext: profil siswa + status paid, dipakai semua handler di sini.
func (ctl *InstanceUserController) studentContext(c *fiber.Ctx) (uuid.UUID, *studentContextData, error) {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	profile, err := studentService.FindProfileByID(ctl.DB, profileID)
	if err != nil {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}
	isPaid, err := billingService.IsPaidForStudent(ctl.DB, profileID)
	if err != nil {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}
	return profileID, &studentContextData{Profile: profile, IsPaid: isPaid}, nil
}

type studentContextData struct {
	Profile *studentModel.StudentProfileModel
	IsPaid  bool
}

// GET /api/s/assignments
// Daftar assignment siswa: instance dibuat dulu kalau belum ada, lalu
// dibagi upcoming/past berdasarkan due date. Flag locked hanya dihitung
// saat kebijakan progressive aktif.
func (ctl *InstanceUserController) List(c *fiber.Ctx) error {
	profileID, sctx, err := ctl.studentContext(c)
	if err != nil {
		return helper.JsonError(c, fiberStatus(err), err.Error())
	}

	if err := iservice.EnsureInstances(ctl.DB, profileID, sctx.Profile.StudentProfileGrade, sctx.IsPaid); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan assignment")
	}

	instances, err := iservice.ListInstancesForStudent(ctl.DB, profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	var locks []bool
	if configs.ProgressiveLockingEnabled() {
		locks = iservice.ComputeLocks(instances)
	} else {
		locks = make([]bool, len(instances))
	}

	now := time.Now()
	resp := idto.StudentAssignmentListResponse{
		Upcoming: []idto.StudentAssignmentItem{},
		Past:     []idto.StudentAssignmentItem{},
	}
	for i := range instances {
		inst := &instances[i]
		if inst.Assignment == nil {
			continue
		}
		past := dueBeforeToday(inst.Assignment.AssignmentDueDate, now)
		item := idto.StudentAssignmentItem{
			Assignment: assignmentDto.FromAssignmentModel(inst.Assignment),
			Instance:   idto.StatusFromInstanceModel(inst),
			Locked:     locks[i],
			Past:       past,
		}
		if past {
			resp.Past = append(resp.Past, item)
		} else {
			resp.Upcoming = append(resp.Upcoming, item)
		}
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /api/s/assignments/:id
func (ctl *InstanceUserController) Detail(c *fiber.Ctx) error {
	profileID, _, err := ctl.studentContext(c)
	if err != nil {
		return helper.JsonError(c, fiberStatus(err), err.Error())
	}

	instanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	instance, err := iservice.FindInstanceForStudent(ctl.DB, instanceID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	if instance.Assignment == nil {
		// assignment sudah dihapus admin
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	questions, err := ctl.loadQuestions(instance.AssignmentInstanceAssignmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	answers, err := ctl.loadSavedAnswers(instance.AssignmentInstanceID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}

	resp := idto.InstanceDetailResponse{
		Assignment: assignmentDto.FromAssignmentModel(instance.Assignment),
		Instance:   idto.StatusFromInstanceModel(instance),
		Questions:  assignmentDto.FromQuestionModelsForStudent(questions),
		Answers:    answers,
	}
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/s/assignments/:id/submit
func (ctl *InstanceUserController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	profileID, _, err := ctl.studentContext(c)
	if err != nil {
		return helper.JsonError(c, fiberStatus(err), err.Error())
	}

	instanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	instance, err := iservice.FindInstanceForStudent(ctl.DB, instanceID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	var req idto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	questions, err := ctl.loadQuestions(instance.AssignmentInstanceAssignmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	result, err := iservice.SubmitAssignment(ctl.DB, instance, questions, req.ParsedAnswers(), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}

	return helper.JsonOK(c, "Jawaban tersimpan", idto.SubmitResultResponse{
		Instance: idto.StatusFromInstanceModel(instance),
		Correct:  result.Correct,
		Total:    result.Total,
	})
}

// POST /api/s/assignments/:id/retake
// No-op kalau retake tidak diizinkan (belum dinilai, atau skor sudah lulus).
func (ctl *InstanceUserController) Retake(c *fiber.Ctx) error {
	profileID, _, err := ctl.studentContext(c)
	if err != nil {
		return helper.JsonError(c, fiberStatus(err), err.Error())
	}

	instanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	instance, err := iservice.FindInstanceForStudent(ctl.DB, instanceID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	retaken, err := iservice.StartRetake(ctl.DB, instance)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai retake")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"retaken":  retaken,
		"instance": idto.StatusFromInstanceModel(instance),
	})
}

// GET /api/s/assignments/:id/export
// Payload nilai untuk diekspor keluar sistem (mis. rapor eksternal).
func (ctl *InstanceUserController) Export(c *fiber.Ctx) error {
	profileID, _, err := ctl.studentContext(c)
	if err != nil {
		return helper.JsonError(c, fiberStatus(err), err.Error())
	}

	instanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	instance, err := iservice.FindInstanceForStudent(ctl.DB, instanceID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	resp := fiber.Map{
		"graded": idto.GradedExportFromInstance(instance),
	}
	if instance.Assignment != nil {
		resp["assignment"] = assignmentDto.ExportPayloadFromModel(instance.Assignment)
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctl *InstanceUserController) loadQuestions(assignmentID uuid.UUID) ([]assignmentModel.QuestionModel, error) {
	var rows []assignmentModel.QuestionModel
	err := ctl.DB.Where("question_assignment_id = ?", assignmentID).
		Order("question_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (ctl *InstanceUserController) loadSavedAnswers(instanceID uuid.UUID) ([]idto.SavedAnswerResponse, error) {
	var rows []iserviceAnswerRow
	err := ctl.DB.Table("student_answers").
		Where("student_answer_instance_id = ?", instanceID).
		Order("student_answer_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]idto.SavedAnswerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, idto.SavedAnswerResponse{
			QuestionID:     rows[i].StudentAnswerQuestionID,
			TextAnswer:     rows[i].StudentAnswerTextAnswer,
			SelectedOption: rows[i].StudentAnswerSelectedOption,
			SubmittedAt:    rows[i].StudentAnswerSubmittedAt,
		})
	}
	return out, nil
}

type iserviceAnswerRow struct {
	StudentAnswerQuestionID     uuid.UUID `gorm:"column:student_answer_question_id"`
	StudentAnswerTextAnswer     *string   `gorm:"column:student_answer_text_answer"`
	StudentAnswerSelectedOption *string   `gorm:"column:student_answer_selected_option"`
	StudentAnswerSubmittedAt    time.Time `gorm:"column:student_answer_submitted_at"`
}

// dueBeforeToday membandingkan komponen tanggal, bukan instan UTC, supaya
// pembagian upcoming/past benar di zona waktu server mana pun.
func dueBeforeToday(due, now time.Time) bool {
	dy, dm, dd := due.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}

// fiberStatus mengambil status dari *fiber.Error, default 500.
func fiberStatus(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
