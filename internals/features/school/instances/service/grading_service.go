// file: internals/features/school/instances/service/grading_service.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	idto "novaeclass_backend/internals/features/school/instances/dto"
	imodel "novaeclass_backend/internals/features/school/instances/model"
)

/* ==========================================================================================
   GRADING ENGINE
   Penilaian murni fungsi dari (daftar soal, jawaban): tanpa DB, supaya gampang
   diuji. Submit orchestration di bawah yang menyentuh DB.
========================================================================================== */

type GradeResult struct {
	Correct int
	Total   int
	Score   float64
}

// normalizedAnswer: jawaban yang sudah dinormalisasi, siap disimpan.
type normalizedAnswer struct {
	QuestionID     uuid.UUID
	TextAnswer     *string
	SelectedOption *string
	Correct        bool
}

func textMatches(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// AnswerCorrect menilai ulang satu jawaban tersimpan terhadap soalnya.
// Dipakai laporan orang tua untuk rincian benar/salah per soal.
func AnswerCorrect(q *assignmentModel.QuestionModel, answer *imodel.StudentAnswerModel) bool {
	if q == nil || answer == nil {
		return false
	}
	if q.IsTextAnswer() {
		return q.QuestionCorrectAnswer != nil &&
			answer.StudentAnswerTextAnswer != nil &&
			*answer.StudentAnswerTextAnswer != "" &&
			textMatches(*answer.StudentAnswerTextAnswer, *q.QuestionCorrectAnswer)
	}
	return q.QuestionCorrectOption != nil &&
		answer.StudentAnswerSelectedOption != nil &&
		*answer.StudentAnswerSelectedOption == *q.QuestionCorrectOption
}

// GradeSubmission menilai jawaban terhadap soal-soal assignment.
//   - Skor = 100 * benar / jumlah soal; assignment tanpa soal bernilai 0.
//   - TEXT: cocok kalau sama setelah trim + case-insensitive. Soal TEXT tanpa
//     kunci jawaban tidak pernah dihitung benar (dinilai manual), tapi tetap
//     masuk pembagi.
//   - MC: cocok kalau tag opsi sama (A-D, case-insensitive).
//   - Jawaban untuk question_id di luar daftar soal diabaikan. Soal yang tidak
//     dijawab dihitung salah.
func GradeSubmission(questions []assignmentModel.QuestionModel, answers map[uuid.UUID]idto.AnswerValue) (GradeResult, []normalizedAnswer) {
	res := GradeResult{Total: len(questions)}
	normalized := make([]normalizedAnswer, 0, len(questions))

	for i := range questions {
		q := &questions[i]
		na := normalizedAnswer{QuestionID: q.QuestionID}
		av, answered := answers[q.QuestionID]

		if q.IsTextAnswer() {
			text := ""
			if answered && av.Text != nil {
				text = *av.Text
			}
			na.TextAnswer = &text
			if q.QuestionCorrectAnswer != nil && text != "" && textMatches(text, *q.QuestionCorrectAnswer) {
				na.Correct = true
			}
		} else {
			if answered && av.Option != nil && *av.Option != "" {
				opt := strings.ToUpper(strings.TrimSpace(*av.Option))
				na.SelectedOption = &opt
				if q.QuestionCorrectOption != nil && opt == *q.QuestionCorrectOption {
					na.Correct = true
				}
			}
		}

		if na.Correct {
			res.Correct++
		}
		normalized = append(normalized, na)
	}

	if res.Total > 0 {
		res.Score = 100.0 * float64(res.Correct) / float64(res.Total)
	}
	return res, normalized
}

// SubmitAssignment menyimpan jawaban (upsert per soal) lalu menandai instance
// selesai dengan skor hasil penilaian. Transaksional.
func SubmitAssignment(db *gorm.DB, instance *imodel.AssignmentInstanceModel, questions []assignmentModel.QuestionModel, answers map[uuid.UUID]idto.AnswerValue, now time.Time) (GradeResult, error) {
	result, normalized := GradeSubmission(questions, answers)

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(normalized) > 0 {
			rows := make([]imodel.StudentAnswerModel, 0, len(normalized))
			for _, na := range normalized {
				rows = append(rows, imodel.StudentAnswerModel{
					StudentAnswerInstanceID:     instance.AssignmentInstanceID,
					StudentAnswerQuestionID:     na.QuestionID,
					StudentAnswerStudentID:      instance.AssignmentInstanceStudentID,
					StudentAnswerTextAnswer:     na.TextAnswer,
					StudentAnswerSelectedOption: na.SelectedOption,
					StudentAnswerSubmittedAt:    now,
				})
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "student_answer_instance_id"},
					{Name: "student_answer_question_id"},
					{Name: "student_answer_student_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"student_answer_text_answer",
					"student_answer_selected_option",
					"student_answer_submitted_at",
				}),
			}).Create(&rows).Error; err != nil {
				return err
			}
		}

		score := result.Score
		instance.AssignmentInstanceCompleted = true
		instance.AssignmentInstanceScore = &score
		return tx.Model(&imodel.AssignmentInstanceModel{}).
			Where("assignment_instance_id = ?", instance.AssignmentInstanceID).
			Updates(map[string]any{
				"assignment_instance_completed": true,
				"assignment_instance_score":     score,
			}).Error
	})
	return result, err
}

// StartRetake mereset instance untuk percobaan berikutnya. No-op (mengembalikan
// false) kalau instance belum memenuhi syarat retake.
func StartRetake(db *gorm.DB, instance *imodel.AssignmentInstanceModel) (bool, error) {
	if !instance.RetakeAllowed() {
		return false, nil
	}
	instance.StartRetake()
	// attempts dinaikkan di SQL, bukan nilai hasil hitung aplikasi, supaya
	// dua retake yang berbarengan tidak saling menimpa.
	err := db.Model(&imodel.AssignmentInstanceModel{}).
		Where("assignment_instance_id = ?", instance.AssignmentInstanceID).
		Updates(map[string]any{
			"assignment_instance_completed": false,
			"assignment_instance_score":     nil,
			"assignment_instance_feedback":  nil,
			"assignment_instance_attempts":  gorm.Expr("assignment_instance_attempts + 1"),
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
