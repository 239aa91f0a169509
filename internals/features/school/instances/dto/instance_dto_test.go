package dto

import (
	"testing"

	"github.com/google/uuid"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	imodel "novaeclass_backend/internals/features/school/instances/model"
)

func TestParsedAnswersSkipsBadKeys(t *testing.T) {
	goodID := uuid.New()
	text := "jawaban"
	req := SubmitAssignmentRequest{
		Answers: map[string]AnswerValue{
			goodID.String():  {Text: &text},
			"bukan-uuid":     {Text: &text},
			"":               {Text: &text},
		},
	}

	parsed := req.ParsedAnswers()
	if len(parsed) != 1 {
		t.Fatalf("len = %d, want 1", len(parsed))
	}
	if _, ok := parsed[goodID]; !ok {
		t.Error("key uuid valid harus ikut")
	}
}

func TestGradedExportDefaults(t *testing.T) {
	score := 60.0
	inst := imodel.AssignmentInstanceModel{
		AssignmentInstanceScore: &score,
		Assignment: &assignmentModel.AssignmentModel{
			AssignmentTitle: "Fractions Quiz",
		},
	}

	p := GradedExportFromInstance(&inst)
	if p.Title != "Fractions Quiz" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Score == nil || *p.Score != 60 {
		t.Errorf("score = %v", p.Score)
	}
	if p.Feedback != "No feedback provided." {
		t.Errorf("feedback default = %q", p.Feedback)
	}

	fb := "Pelajari lagi bab 3"
	inst.AssignmentInstanceFeedback = &fb
	if got := GradedExportFromInstance(&inst).Feedback; got != fb {
		t.Errorf("feedback = %q", got)
	}
}

func TestStatusFromInstanceModelRetakeFlag(t *testing.T) {
	low := 50.0
	tests := []struct {
		name      string
		completed bool
		score     *float64
		want      bool
	}{
		{"selesai dengan skor gagal", true, &low, true},
		{"belum selesai", false, &low, false},
		{"selesai tanpa skor", true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := imodel.AssignmentInstanceModel{
				AssignmentInstanceCompleted: tt.completed,
				AssignmentInstanceScore:     tt.score,
			}
			if got := StatusFromInstanceModel(&m).RetakeAllowed; got != tt.want {
				t.Errorf("RetakeAllowed = %v, want %v", got, tt.want)
			}
		})
	}
}
