package model

import "testing"

func TestGradeValid(t *testing.T) {
	for _, g := range AllGrades {
		if !g.Valid() {
			t.Errorf("Grade %q seharusnya valid", g)
		}
	}

	for _, bad := range []Grade{"", "13th", "kindergarten", "1", "k"} {
		if bad.Valid() {
			t.Errorf("Grade %q seharusnya tidak valid", bad)
		}
	}
}

func TestGradeNumber(t *testing.T) {
	tests := []struct {
		grade Grade
		want  int
	}{
		{GradeK, 0},
		{Grade1st, 1},
		{Grade5th, 5},
		{Grade12th, 12},
		{Grade("unknown"), -1},
	}

	for _, tt := range tests {
		if got := tt.grade.Number(); got != tt.want {
			t.Errorf("%q.Number() = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestGradeScan(t *testing.T) {
	var g Grade
	if err := g.Scan("3rd"); err != nil {
		t.Fatalf("Scan valid: %v", err)
	}
	if g != Grade3rd {
		t.Errorf("g = %q, want 3rd", g)
	}

	if err := g.Scan("13th"); err == nil {
		t.Error("Scan grade tak dikenal harus error")
	}

	if err := g.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if g != "" {
		t.Errorf("g setelah scan nil = %q, want kosong", g)
	}
}
