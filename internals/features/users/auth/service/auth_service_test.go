package service

import (
	"testing"

	studentModel "novaeclass_backend/internals/features/users/students/model"
)

func gradePtr(g studentModel.Grade) *studentModel.Grade { return &g }

// Pendaftaran harus langsung menyiapkan instance untuk tiap anak yang punya
// grade; profil tanpa grade (atau grade rusak) dilewati.
func TestGradedProfiles(t *testing.T) {
	withGrade := &studentModel.StudentProfileModel{StudentProfileGrade: gradePtr(studentModel.Grade3rd)}
	kindergarten := &studentModel.StudentProfileModel{StudentProfileGrade: gradePtr(studentModel.GradeK)}
	noGrade := &studentModel.StudentProfileModel{}
	badGrade := &studentModel.StudentProfileModel{StudentProfileGrade: gradePtr(studentModel.Grade("13th"))}

	tests := []struct {
		name string
		in   []*studentModel.StudentProfileModel
		want int
	}{
		{"semua punya grade", []*studentModel.StudentProfileModel{withGrade, kindergarten}, 2},
		{"tanpa grade dilewati", []*studentModel.StudentProfileModel{withGrade, noGrade}, 1},
		{"grade tidak dikenal dilewati", []*studentModel.StudentProfileModel{badGrade}, 0},
		{"nil dilewati", []*studentModel.StudentProfileModel{nil, withGrade}, 1},
		{"kosong", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradedProfiles(tt.in)
			if len(got) != tt.want {
				t.Errorf("GradedProfiles() = %d profil, want %d", len(got), tt.want)
			}
		})
	}
}

func TestChildEmail(t *testing.T) {
	if got := childEmail("Budi123"); got != "budi123@students.novaeclass.id" {
		t.Errorf("childEmail() = %q", got)
	}
}
