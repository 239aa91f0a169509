// file: internals/features/school/instances/dto/instance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	adto "novaeclass_backend/internals/features/school/assignments/dto"
	imodel "novaeclass_backend/internals/features/school/instances/model"
)

/* =======================================================
   REQUEST
======================================================= */

// AnswerValue: jawaban untuk satu soal. TEXT mengisi text,
// MC mengisi option (A-D). Keduanya boleh kosong (dilewati).
type AnswerValue struct {
	Text   *string `json:"text"`
	Option *string `json:"option" validate:"omitempty,oneof=A B C D a b c d"`
}

type SubmitAssignmentRequest struct {
	// key = question_id
	Answers map[string]AnswerValue `json:"answers" validate:"required,dive"`
}

// ParsedAnswers mengembalikan map dengan key uuid; entri dengan key
// yang bukan uuid diabaikan.
func (r *SubmitAssignmentRequest) ParsedAnswers() map[uuid.UUID]AnswerValue {
	out := make(map[uuid.UUID]AnswerValue, len(r.Answers))
	for k, v := range r.Answers {
		id, err := uuid.Parse(k)
		if err != nil {
			continue
		}
		out[id] = v
	}
	return out
}

/* =======================================================
   RESPONSE
======================================================= */

type InstanceStatusResponse struct {
	AssignmentInstanceID uuid.UUID `json:"assignment_instance_id"`
	Completed            bool      `json:"completed"`
	Score                *float64  `json:"score"`
	Feedback             *string   `json:"feedback"`
	Attempts             int       `json:"attempts"`
	RetakeAllowed        bool      `json:"retake_allowed"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func StatusFromInstanceModel(m *imodel.AssignmentInstanceModel) InstanceStatusResponse {
	return InstanceStatusResponse{
		AssignmentInstanceID: m.AssignmentInstanceID,
		Completed:            m.AssignmentInstanceCompleted,
		Score:                m.AssignmentInstanceScore,
		Feedback:             m.AssignmentInstanceFeedback,
		Attempts:             m.AssignmentInstanceAttempts,
		RetakeAllowed:        m.AssignmentInstanceCompleted && m.RetakeAllowed(),
		UpdatedAt:            m.AssignmentInstanceUpdatedAt,
	}
}

// StudentAssignmentItem: satu baris di daftar assignment siswa.
type StudentAssignmentItem struct {
	Assignment adto.AssignmentResponse `json:"assignment"`
	Instance   InstanceStatusResponse  `json:"instance"`
	Locked     bool                    `json:"locked"`
	Past       bool                    `json:"past"`
}

type StudentAssignmentListResponse struct {
	Upcoming []StudentAssignmentItem `json:"upcoming"`
	Past     []StudentAssignmentItem `json:"past"`
}

type SavedAnswerResponse struct {
	QuestionID     uuid.UUID `json:"question_id"`
	TextAnswer     *string   `json:"text_answer"`
	SelectedOption *string   `json:"selected_option"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

func SavedAnswerFromModel(m *imodel.StudentAnswerModel) SavedAnswerResponse {
	return SavedAnswerResponse{
		QuestionID:     m.StudentAnswerQuestionID,
		TextAnswer:     m.StudentAnswerTextAnswer,
		SelectedOption: m.StudentAnswerSelectedOption,
		SubmittedAt:    m.StudentAnswerSubmittedAt,
	}
}

type InstanceDetailResponse struct {
	Assignment adto.AssignmentResponse       `json:"assignment"`
	Instance   InstanceStatusResponse        `json:"instance"`
	Questions  []adto.StudentQuestionResponse `json:"questions"`
	Answers    []SavedAnswerResponse         `json:"answers"`
}

type SubmitResultResponse struct {
	Instance InstanceStatusResponse `json:"instance"`
	Correct  int                    `json:"correct"`
	Total    int                    `json:"total"`
}

/* =======================================================
   EXPORT
======================================================= */

// GradedExportPayload: representasi nilai untuk diekspor keluar sistem.
type GradedExportPayload struct {
	Title    string   `json:"title"`
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

func GradedExportFromInstance(m *imodel.AssignmentInstanceModel) GradedExportPayload {
	title := ""
	if m.Assignment != nil {
		title = m.Assignment.AssignmentTitle
	}
	feedback := "No feedback provided."
	if m.AssignmentInstanceFeedback != nil && *m.AssignmentInstanceFeedback != "" {
		feedback = *m.AssignmentInstanceFeedback
	}
	return GradedExportPayload{
		Title:    title,
		Score:    m.AssignmentInstanceScore,
		Feedback: feedback,
	}
}
