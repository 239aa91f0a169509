package dto

import (
	"testing"
	"time"

	amodel "novaeclass_backend/internals/features/school/assignments/model"
)

func TestCreateAssignmentRequestToModel(t *testing.T) {
	grade := "3rd"
	req := CreateAssignmentRequest{
		AssignmentTitle:      "Fractions Quiz",
		AssignmentDueDate:    "2026-09-15",
		AssignmentGradeLevel: &grade,
		AssignmentIsDemo:     true,
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.AssignmentTitle != "Fractions Quiz" {
		t.Errorf("title = %q", m.AssignmentTitle)
	}
	if got := m.AssignmentDueDate.Format(time.DateOnly); got != "2026-09-15" {
		t.Errorf("due date = %q", got)
	}
	if m.AssignmentGradeLevel == nil || m.AssignmentGradeLevel.String() != "3rd" {
		t.Errorf("grade = %v", m.AssignmentGradeLevel)
	}
	if !m.AssignmentIsDemo {
		t.Error("is_demo harus true")
	}
}

func TestCreateAssignmentRequestToModelBadDate(t *testing.T) {
	req := CreateAssignmentRequest{
		AssignmentTitle:   "X",
		AssignmentDueDate: "15-09-2026",
	}
	if _, err := req.ToModel(); err == nil {
		t.Error("format tanggal salah harus error")
	}
}

func TestUpdateAssignmentRequestPartial(t *testing.T) {
	orig, _ := (&CreateAssignmentRequest{
		AssignmentTitle:   "Judul lama",
		AssignmentDueDate: "2026-09-15",
	}).ToModel()

	newTitle := "Judul baru"
	req := UpdateAssignmentRequest{AssignmentTitle: &newTitle}
	if err := req.ApplyToModel(orig); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if orig.AssignmentTitle != "Judul baru" {
		t.Errorf("title = %q", orig.AssignmentTitle)
	}
	if got := orig.AssignmentDueDate.Format(time.DateOnly); got != "2026-09-15" {
		t.Errorf("due date tidak boleh berubah, got %q", got)
	}
}

func TestExportPayloadDefaults(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	noDesc := amodel.AssignmentModel{AssignmentTitle: "Quiz", AssignmentDueDate: due}
	p := ExportPayloadFromModel(&noDesc)
	if p.Description != "No description provided." {
		t.Errorf("deskripsi default = %q", p.Description)
	}
	if p.DueDate != "2026-09-15" {
		t.Errorf("due date = %q", p.DueDate)
	}

	desc := "Kerjakan semua soal"
	withDesc := amodel.AssignmentModel{
		AssignmentTitle:       "Quiz",
		AssignmentDueDate:     due,
		AssignmentDescription: &desc,
	}
	if got := ExportPayloadFromModel(&withDesc).Description; got != desc {
		t.Errorf("deskripsi = %q", got)
	}
}
