// file: internals/features/school/daily_quiz/controller/daily_quiz_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	assignmentDto "novaeclass_backend/internals/features/school/assignments/dto"
	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

// Kuis harian: satu soal pilihan ganda acak, dijawab langsung tanpa
// menyentuh nilai assignment. Akun demo: pool dipangkas jadi tepat
// satu soal (soal demo tertua).
type DailyQuizController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewDailyQuizController(db *gorm.DB) *DailyQuizController {
	return &DailyQuizController{DB: db}
}

func (ctl *DailyQuizController) quizPool(c *fiber.Ctx) (*gorm.DB, error) {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return nil, err
	}
	isPaid, err := billingService.IsPaidForStudent(ctl.DB, profileID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}

	q := ctl.DB.Model(&assignmentModel.QuestionModel{}).
		Where("question_type = ?", assignmentModel.QuestionTypeMC)
	if !isPaid {
		// Pool demo = tepat satu soal (soal demo tertua).
		q = q.Where(`question_id = (
			SELECT q2.question_id FROM questions q2
			JOIN assignments a ON a.assignment_id = q2.question_assignment_id
			WHERE q2.question_type = 'MC'
			  AND q2.question_deleted_at IS NULL
			  AND a.assignment_is_demo = TRUE
			  AND a.assignment_deleted_at IS NULL
			ORDER BY q2.question_created_at ASC
			LIMIT 1
		)`)
	}
	return q, nil
}

// GET /api/s/daily-quiz
func (ctl *DailyQuizController) Draw(c *fiber.Ctx) error {
	pool, err := ctl.quizPool(c)
	if err != nil {
		return err
	}

	var q assignmentModel.QuestionModel
	if err := pool.Order("RANDOM()").First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada soal kuis tersedia")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal kuis")
	}
	return helper.JsonOK(c, "ok", assignmentDto.FromQuestionModelForStudent(&q))
}

type DailyQuizAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	Option     string `json:"option" validate:"required,oneof=A B C D a b c d"`
}

// POST /api/s/daily-quiz/answer
func (ctl *DailyQuizController) Answer(c *fiber.Ctx) error {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}

	pool, err := ctl.quizPool(c)
	if err != nil {
		return err
	}

	var req DailyQuizAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	questionID, _ := uuid.Parse(req.QuestionID)
	var q assignmentModel.QuestionModel
	if err := pool.Where("question_id = ?", questionID).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	selected := strings.ToUpper(req.Option)
	correct := q.QuestionCorrectOption != nil && selected == *q.QuestionCorrectOption
	return helper.JsonOK(c, "ok", fiber.Map{
		"question_id":     q.QuestionID,
		"selected_option": selected,
		"correct":         correct,
	})
}
