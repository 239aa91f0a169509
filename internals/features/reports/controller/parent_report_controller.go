// file: internals/features/reports/controller/parent_report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rdto "novaeclass_backend/internals/features/reports/dto"
	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	imodel "novaeclass_backend/internals/features/school/instances/model"
	iservice "novaeclass_backend/internals/features/school/instances/service"
	studentModel "novaeclass_backend/internals/features/users/students/model"
	studentService "novaeclass_backend/internals/features/users/students/service"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type ParentReportController struct {
	DB *gorm.DB
}

func NewParentReportController(db *gorm.DB) *ParentReportController {
	return &ParentReportController{DB: db}
}

// childRow: profil anak + username, hasil join ke users.
type childRow struct {
	studentModel.StudentProfileModel
	UserName string `gorm:"column:user_name"`
}

func (ctl *ParentReportController) listChildren(parentProfileID uuid.UUID) ([]childRow, error) {
	var rows []childRow
	err := ctl.DB.Table("student_profiles").
		Select("student_profiles.*, users.user_name").
		Joins("JOIN parent_children pc ON pc.student_profile_id = student_profiles.student_profile_id").
		Joins("JOIN users ON users.id = student_profiles.student_profile_user_id").
		Where("pc.parent_profile_id = ?", parentProfileID).
		Order("users.user_name ASC").
		Find(&rows).Error
	return rows, err
}

// findChild: anak harus milik orang tua ini; lainnya 404.
func (ctl *ParentReportController) findChild(parentProfileID, studentProfileID uuid.UUID) (*childRow, error) {
	var row childRow
	err := ctl.DB.Table("student_profiles").
		Select("student_profiles.*, users.user_name").
		Joins("JOIN parent_children pc ON pc.student_profile_id = student_profiles.student_profile_id").
		Joins("JOIN users ON users.id = student_profiles.student_profile_user_id").
		Where("pc.parent_profile_id = ? AND student_profiles.student_profile_id = ?", parentProfileID, studentProfileID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return nil, err
	}
	return &row, nil
}

func (ctl *ParentReportController) gradedInstances(studentProfileID uuid.UUID) ([]imodel.AssignmentInstanceModel, error) {
	var rows []imodel.AssignmentInstanceModel
	err := ctl.DB.Preload("Assignment").
		Where("assignment_instance_student_id = ? AND assignment_instance_score IS NOT NULL", studentProfileID).
		Order("assignment_instance_updated_at DESC").
		Find(&rows).Error
	return rows, err
}

func gradeRows(instances []imodel.AssignmentInstanceModel) []rdto.GradeRow {
	out := make([]rdto.GradeRow, 0, len(instances))
	for i := range instances {
		inst := &instances[i]
		title := ""
		if inst.Assignment != nil {
			title = inst.Assignment.AssignmentTitle
		}
		feedback := "No feedback available"
		if inst.AssignmentInstanceFeedback != nil && *inst.AssignmentInstanceFeedback != "" {
			feedback = *inst.AssignmentInstanceFeedback
		}
		out = append(out, rdto.GradeRow{
			AssignmentInstanceID: inst.AssignmentInstanceID,
			AssignmentTitle:      title,
			Score:                *inst.AssignmentInstanceScore,
			Feedback:             feedback,
			Attempts:             inst.AssignmentInstanceAttempts,
			GradedAt:             inst.AssignmentInstanceUpdatedAt,
		})
	}
	return out
}

// GET /api/p/dashboard
// Ringkasan semua anak: nilai + waktu aktif hari ini.
func (ctl *ParentReportController) Dashboard(c *fiber.Ctx) error {
	parentProfileID, err := helperAuth.GetParentProfileID(c)
	if err != nil {
		return err
	}

	children, err := ctl.listChildren(parentProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	now := time.Now()
	resp := rdto.ParentDashboardResponse{Children: []rdto.ChildSummary{}}
	for i := range children {
		child := &children[i]

		instances, err := ctl.gradedInstances(child.StudentProfileID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai anak")
		}

		var grade *string
		if child.HasGrade() {
			s := string(*child.StudentProfileGrade)
			grade = &s
		}
		resp.Children = append(resp.Children, rdto.ChildSummary{
			StudentProfileID:   child.StudentProfileID,
			UserName:           child.UserName,
			Grade:              grade,
			Grades:             gradeRows(instances),
			ActiveSecondsToday: studentService.ActiveSecondsToday(child.StudentProfileModel, now),
		})
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /api/p/children/:id/grades
func (ctl *ParentReportController) ChildGrades(c *fiber.Ctx) error {
	parentProfileID, err := helperAuth.GetParentProfileID(c)
	if err != nil {
		return err
	}
	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	child, err := ctl.findChild(parentProfileID, childID)
	if err != nil {
		return err
	}

	instances, err := ctl.gradedInstances(child.StudentProfileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai anak")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"grades": gradeRows(instances)})
}

// GET /api/p/children/:id/results
// Rincian per soal untuk semua pengerjaan anak: jawaban siswa vs kunci.
func (ctl *ParentReportController) ChildResults(c *fiber.Ctx) error {
	parentProfileID, err := helperAuth.GetParentProfileID(c)
	if err != nil {
		return err
	}
	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	child, err := ctl.findChild(parentProfileID, childID)
	if err != nil {
		return err
	}

	var instances []imodel.AssignmentInstanceModel
	if err := ctl.DB.Preload("Assignment").
		Where("assignment_instance_student_id = ?", child.StudentProfileID).
		Order("assignment_instance_created_at ASC").
		Find(&instances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengerjaan anak")
	}

	results := make([]rdto.AssignmentResultRow, 0, len(instances))
	for i := range instances {
		inst := &instances[i]

		var questions []assignmentModel.QuestionModel
		if err := ctl.DB.Where("question_assignment_id = ?", inst.AssignmentInstanceAssignmentID).
			Order("question_created_at ASC").
			Find(&questions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
		}

		var answers []imodel.StudentAnswerModel
		if err := ctl.DB.Where("student_answer_instance_id = ?", inst.AssignmentInstanceID).
			Find(&answers).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
		}
		answerByQuestion := make(map[uuid.UUID]*imodel.StudentAnswerModel, len(answers))
		for j := range answers {
			answerByQuestion[answers[j].StudentAnswerQuestionID] = &answers[j]
		}

		title := ""
		if inst.Assignment != nil {
			title = inst.Assignment.AssignmentTitle
		}
		row := rdto.AssignmentResultRow{
			AssignmentInstanceID: inst.AssignmentInstanceID,
			AssignmentTitle:      title,
			Score:                inst.AssignmentInstanceScore,
			Completed:            inst.AssignmentInstanceCompleted,
			Questions:            make([]rdto.QuestionResultRow, 0, len(questions)),
		}

		for j := range questions {
			q := &questions[j]
			answer := answerByQuestion[q.QuestionID]

			correctAnswer := ""
			if q.IsTextAnswer() {
				if q.QuestionCorrectAnswer != nil {
					correctAnswer = *q.QuestionCorrectAnswer
				}
			} else if q.QuestionCorrectOption != nil {
				correctAnswer = *q.QuestionCorrectOption
			}

			studentAnswer := "Not answered"
			if answer != nil {
				if q.IsTextAnswer() && answer.StudentAnswerTextAnswer != nil && *answer.StudentAnswerTextAnswer != "" {
					studentAnswer = *answer.StudentAnswerTextAnswer
				} else if !q.IsTextAnswer() && answer.StudentAnswerSelectedOption != nil {
					studentAnswer = *answer.StudentAnswerSelectedOption
				}
			}

			row.Questions = append(row.Questions, rdto.QuestionResultRow{
				QuestionID:    q.QuestionID,
				QuestionText:  q.QuestionText,
				CorrectAnswer: correctAnswer,
				StudentAnswer: studentAnswer,
				IsCorrect:     iservice.AnswerCorrect(q, answer),
			})
		}
		results = append(results, row)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"results": results})
}

/* =========================
   STUDENT (rapor sendiri)
========================= */

// GET /api/s/grades
func (ctl *ParentReportController) StudentGrades(c *fiber.Ctx) error {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return err
	}
	instances, err := ctl.gradedInstances(profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"grades": gradeRows(instances)})
}
