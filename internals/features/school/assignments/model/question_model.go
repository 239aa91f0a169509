// file: internals/features/school/assignments/model/question_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Question type ('MC','TEXT')
============================================================================= */
type QuestionType string

const (
	QuestionTypeMC   QuestionType = "MC"
	QuestionTypeText QuestionType = "TEXT"
)

func (t QuestionType) String() string { return string(t) }
func (t QuestionType) Valid() bool {
	return t == QuestionTypeMC || t == QuestionTypeText
}

// Kunci opsi jawaban MC yang diizinkan.
var OptionKeys = []string{"A", "B", "C", "D"}

func ValidOptionKey(k string) bool {
	k = strings.ToUpper(strings.TrimSpace(k))
	for _, v := range OptionKeys {
		if k == v {
			return true
		}
	}
	return false
}

/* =============================================================================
   MODEL: questions
   Catatan:
   - MC  : option_a..d wajib + correct_option ('A'..'D').
   - TEXT: correct_answer opsional; kalau NULL jawaban tidak dinilai otomatis.
============================================================================= */
type QuestionModel struct {
	// PK
	QuestionID uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	QuestionAssignmentID uuid.UUID `json:"question_assignment_id" gorm:"column:question_assignment_id;type:uuid;not null;index:idx_question_assignment"`

	QuestionText string       `json:"question_text" gorm:"column:question_text;type:text;not null"`
	QuestionType QuestionType `json:"question_type" gorm:"column:question_type;type:varchar(5);not null;default:'MC'"`

	// MC fields (nullable untuk TEXT)
	QuestionOptionA       *string `json:"question_option_a,omitempty" gorm:"column:question_option_a;size:255"`
	QuestionOptionB       *string `json:"question_option_b,omitempty" gorm:"column:question_option_b;size:255"`
	QuestionOptionC       *string `json:"question_option_c,omitempty" gorm:"column:question_option_c;size:255"`
	QuestionOptionD       *string `json:"question_option_d,omitempty" gorm:"column:question_option_d;size:255"`
	QuestionCorrectOption *string `json:"question_correct_option,omitempty" gorm:"column:question_correct_option;type:char(1)"`

	// TEXT field (nullable)
	QuestionCorrectAnswer *string `json:"question_correct_answer,omitempty" gorm:"column:question_correct_answer;size:255"`

	// Audit
	QuestionCreatedAt time.Time      `json:"question_created_at" gorm:"column:question_created_at;autoCreateTime"`
	QuestionUpdatedAt time.Time      `json:"question_updated_at" gorm:"column:question_updated_at;autoUpdateTime"`
	QuestionDeletedAt gorm.DeletedAt `json:"question_deleted_at,omitempty" gorm:"column:question_deleted_at;index"`
}

// Nama tabel eksplisit
func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) IsTextAnswer() bool { return m.QuestionType == QuestionTypeText }
func (m *QuestionModel) IsMC() bool         { return m.QuestionType == QuestionTypeMC }

// ValidateShape mirror CHECK constraint DB supaya cepat fail di app.
func (m *QuestionModel) ValidateShape() error {
	if !m.QuestionType.Valid() {
		return errors.New("question_type harus 'MC' atau 'TEXT'")
	}

	if m.IsTextAnswer() {
		if m.QuestionCorrectOption != nil && *m.QuestionCorrectOption != "" {
			return errors.New("TEXT: correct_option harus NULL")
		}
		return nil
	}

	// MC
	for _, opt := range []*string{m.QuestionOptionA, m.QuestionOptionB, m.QuestionOptionC, m.QuestionOptionD} {
		if opt == nil || strings.TrimSpace(*opt) == "" {
			return errors.New("MC: keempat opsi (A..D) wajib diisi")
		}
	}
	if m.QuestionCorrectOption == nil || !ValidOptionKey(*m.QuestionCorrectOption) {
		return errors.New("MC: correct_option wajib salah satu A..D")
	}
	return nil
}
