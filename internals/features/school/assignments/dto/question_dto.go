// file: internals/features/school/assignments/dto/question_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	amodel "novaeclass_backend/internals/features/school/assignments/model"
)

/* ==========================================================================================
   REQUEST — CREATE
========================================================================================== */

type CreateQuestionRequest struct {
	QuestionText string `json:"question_text" validate:"required"`
	QuestionType string `json:"question_type" validate:"required,oneof=MC TEXT"`

	// MC
	QuestionOptionA       *string `json:"question_option_a" validate:"omitempty,max=255"`
	QuestionOptionB       *string `json:"question_option_b" validate:"omitempty,max=255"`
	QuestionOptionC       *string `json:"question_option_c" validate:"omitempty,max=255"`
	QuestionOptionD       *string `json:"question_option_d" validate:"omitempty,max=255"`
	QuestionCorrectOption *string `json:"question_correct_option" validate:"omitempty,oneof=A B C D"`

	// TEXT
	QuestionCorrectAnswer *string `json:"question_correct_answer" validate:"omitempty,max=255"`
}

func (r *CreateQuestionRequest) ToModel(assignmentID uuid.UUID) *amodel.QuestionModel {
	m := &amodel.QuestionModel{
		QuestionAssignmentID:  assignmentID,
		QuestionText:          r.QuestionText,
		QuestionType:          amodel.QuestionType(r.QuestionType),
		QuestionOptionA:       r.QuestionOptionA,
		QuestionOptionB:       r.QuestionOptionB,
		QuestionOptionC:       r.QuestionOptionC,
		QuestionOptionD:       r.QuestionOptionD,
		QuestionCorrectAnswer: r.QuestionCorrectAnswer,
	}
	if r.QuestionCorrectOption != nil {
		up := strings.ToUpper(strings.TrimSpace(*r.QuestionCorrectOption))
		m.QuestionCorrectOption = &up
	}
	return m
}

/* ==========================================================================================
   REQUEST — UPDATE (PATCH)
   Pointer supaya field yang tidak dikirim tidak diubah. Tipe soal tidak
   boleh diganti lewat PATCH; hapus dan buat ulang kalau perlu.
========================================================================================== */

type UpdateQuestionRequest struct {
	QuestionText *string `json:"question_text" validate:"omitempty"`

	// MC
	QuestionOptionA       *string `json:"question_option_a" validate:"omitempty,max=255"`
	QuestionOptionB       *string `json:"question_option_b" validate:"omitempty,max=255"`
	QuestionOptionC       *string `json:"question_option_c" validate:"omitempty,max=255"`
	QuestionOptionD       *string `json:"question_option_d" validate:"omitempty,max=255"`
	QuestionCorrectOption *string `json:"question_correct_option" validate:"omitempty,oneof=A B C D a b c d"`

	// TEXT
	QuestionCorrectAnswer *string `json:"question_correct_answer" validate:"omitempty,max=255"`
}

func (r *UpdateQuestionRequest) ApplyToModel(m *amodel.QuestionModel) {
	if r.QuestionText != nil {
		m.QuestionText = *r.QuestionText
	}
	if r.QuestionOptionA != nil {
		m.QuestionOptionA = r.QuestionOptionA
	}
	if r.QuestionOptionB != nil {
		m.QuestionOptionB = r.QuestionOptionB
	}
	if r.QuestionOptionC != nil {
		m.QuestionOptionC = r.QuestionOptionC
	}
	if r.QuestionOptionD != nil {
		m.QuestionOptionD = r.QuestionOptionD
	}
	if r.QuestionCorrectOption != nil {
		up := strings.ToUpper(strings.TrimSpace(*r.QuestionCorrectOption))
		m.QuestionCorrectOption = &up
	}
	if r.QuestionCorrectAnswer != nil {
		m.QuestionCorrectAnswer = r.QuestionCorrectAnswer
	}
}

/* ==========================================================================================
   RESPONSE DTO
   - Admin melihat kunci jawaban; siswa TIDAK (StudentQuestionResponse).
========================================================================================== */

type QuestionResponse struct {
	QuestionID            uuid.UUID `json:"question_id"`
	QuestionAssignmentID  uuid.UUID `json:"question_assignment_id"`
	QuestionText          string    `json:"question_text"`
	QuestionType          string    `json:"question_type"`
	QuestionOptionA       *string   `json:"question_option_a,omitempty"`
	QuestionOptionB       *string   `json:"question_option_b,omitempty"`
	QuestionOptionC       *string   `json:"question_option_c,omitempty"`
	QuestionOptionD       *string   `json:"question_option_d,omitempty"`
	QuestionCorrectOption *string   `json:"question_correct_option,omitempty"`
	QuestionCorrectAnswer *string   `json:"question_correct_answer,omitempty"`
}

func FromQuestionModel(m *amodel.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:            m.QuestionID,
		QuestionAssignmentID:  m.QuestionAssignmentID,
		QuestionText:          m.QuestionText,
		QuestionType:          m.QuestionType.String(),
		QuestionOptionA:       m.QuestionOptionA,
		QuestionOptionB:       m.QuestionOptionB,
		QuestionOptionC:       m.QuestionOptionC,
		QuestionOptionD:       m.QuestionOptionD,
		QuestionCorrectOption: m.QuestionCorrectOption,
		QuestionCorrectAnswer: m.QuestionCorrectAnswer,
	}
}

// StudentQuestionResponse tanpa kunci jawaban.
type StudentQuestionResponse struct {
	QuestionID      uuid.UUID `json:"question_id"`
	QuestionText    string    `json:"question_text"`
	QuestionType    string    `json:"question_type"`
	QuestionOptionA *string   `json:"question_option_a,omitempty"`
	QuestionOptionB *string   `json:"question_option_b,omitempty"`
	QuestionOptionC *string   `json:"question_option_c,omitempty"`
	QuestionOptionD *string   `json:"question_option_d,omitempty"`
}

func FromQuestionModelForStudent(m *amodel.QuestionModel) StudentQuestionResponse {
	return StudentQuestionResponse{
		QuestionID:      m.QuestionID,
		QuestionText:    m.QuestionText,
		QuestionType:    m.QuestionType.String(),
		QuestionOptionA: m.QuestionOptionA,
		QuestionOptionB: m.QuestionOptionB,
		QuestionOptionC: m.QuestionOptionC,
		QuestionOptionD: m.QuestionOptionD,
	}
}

func FromQuestionModelsForStudent(ms []amodel.QuestionModel) []StudentQuestionResponse {
	out := make([]StudentQuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromQuestionModelForStudent(&ms[i]))
	}
	return out
}
