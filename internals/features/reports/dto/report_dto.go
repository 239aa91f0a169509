// file: internals/features/reports/dto/report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   REPORTING (dashboard orang tua + rapor siswa)
======================================================= */

type GradeRow struct {
	AssignmentInstanceID uuid.UUID `json:"assignment_instance_id"`
	AssignmentTitle      string    `json:"assignment_title"`
	Score                float64   `json:"score"`
	Feedback             string    `json:"feedback"`
	Attempts             int       `json:"attempts"`
	GradedAt             time.Time `json:"graded_at"`
}

type ChildSummary struct {
	StudentProfileID   uuid.UUID  `json:"student_profile_id"`
	UserName           string     `json:"user_name"`
	Grade              *string    `json:"grade"`
	Grades             []GradeRow `json:"grades"`
	ActiveSecondsToday int        `json:"active_seconds_today"`
}

type ParentDashboardResponse struct {
	Children []ChildSummary `json:"children"`
}

// QuestionResultRow: rincian satu soal di hasil pengerjaan.
type QuestionResultRow struct {
	QuestionID    uuid.UUID `json:"question_id"`
	QuestionText  string    `json:"question_text"`
	CorrectAnswer string    `json:"correct_answer"`
	StudentAnswer string    `json:"student_answer"`
	IsCorrect     bool      `json:"is_correct"`
}

type AssignmentResultRow struct {
	AssignmentInstanceID uuid.UUID           `json:"assignment_instance_id"`
	AssignmentTitle      string              `json:"assignment_title"`
	Score                *float64            `json:"score"`
	Completed            bool                `json:"completed"`
	Questions            []QuestionResultRow `json:"questions"`
}
