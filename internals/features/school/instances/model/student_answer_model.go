// file: internals/features/school/instances/model/student_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentAnswerModel = jawaban satu siswa untuk satu soal pada satu instance.
// Submit ulang menimpa baris yang sama (upsert), tidak menumpuk riwayat.
type StudentAnswerModel struct {
	StudentAnswerID uuid.UUID `json:"student_answer_id" gorm:"column:student_answer_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentAnswerInstanceID uuid.UUID `json:"student_answer_instance_id" gorm:"column:student_answer_instance_id;type:uuid;not null;uniqueIndex:uq_student_answer_triplet,priority:1"`
	StudentAnswerQuestionID uuid.UUID `json:"student_answer_question_id" gorm:"column:student_answer_question_id;type:uuid;not null;uniqueIndex:uq_student_answer_triplet,priority:2"`
	StudentAnswerStudentID  uuid.UUID `json:"student_answer_student_id" gorm:"column:student_answer_student_id;type:uuid;not null;uniqueIndex:uq_student_answer_triplet,priority:3"`

	StudentAnswerTextAnswer     *string `json:"student_answer_text_answer" gorm:"column:student_answer_text_answer;type:text"`
	StudentAnswerSelectedOption *string `json:"student_answer_selected_option" gorm:"column:student_answer_selected_option;type:char(1)"`

	StudentAnswerSubmittedAt time.Time `json:"student_answer_submitted_at" gorm:"column:student_answer_submitted_at;not null"`
	StudentAnswerCreatedAt   time.Time `json:"student_answer_created_at" gorm:"column:student_answer_created_at;autoCreateTime"`
	StudentAnswerUpdatedAt   time.Time `json:"student_answer_updated_at" gorm:"column:student_answer_updated_at;autoUpdateTime"`
}

func (StudentAnswerModel) TableName() string { return "student_answers" }
