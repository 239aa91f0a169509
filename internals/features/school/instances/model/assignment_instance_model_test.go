package model

import "testing"

func scorePtr(f float64) *float64 { return &f }

func TestRetakeAllowed(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  bool
	}{
		{"belum dinilai", nil, false},
		{"skor di bawah ambang", scorePtr(50), true},
		{"tepat di ambang", scorePtr(75), false},
		{"di atas ambang", scorePtr(90), false},
		{"skor nol", scorePtr(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := AssignmentInstanceModel{AssignmentInstanceScore: tt.score}
			if got := m.RetakeAllowed(); got != tt.want {
				t.Errorf("RetakeAllowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartRetakeResetsProgress(t *testing.T) {
	// Instance baru mulai dari attempts=0; retake pertama jadi 1.
	feedback := "Perbaiki bagian pecahan campuran"
	m := AssignmentInstanceModel{
		AssignmentInstanceCompleted: true,
		AssignmentInstanceScore:     scorePtr(50),
		AssignmentInstanceFeedback:  &feedback,
		AssignmentInstanceAttempts:  0,
	}

	m.StartRetake()

	if m.AssignmentInstanceCompleted {
		t.Error("completed harus false setelah retake")
	}
	if m.AssignmentInstanceScore != nil {
		t.Error("score harus nil setelah retake")
	}
	if m.AssignmentInstanceFeedback != nil {
		t.Error("feedback harus nil setelah retake")
	}
	if m.AssignmentInstanceAttempts != 1 {
		t.Errorf("attempts = %d, want 1", m.AssignmentInstanceAttempts)
	}

	m.StartRetake()
	if m.AssignmentInstanceAttempts != 2 {
		t.Errorf("attempts = %d setelah retake kedua, want 2", m.AssignmentInstanceAttempts)
	}
}
