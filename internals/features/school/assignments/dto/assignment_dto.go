// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "novaeclass_backend/internals/features/school/assignments/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
)

/* ==========================================================================================
   REQUEST — CREATE
========================================================================================== */

type CreateAssignmentRequest struct {
	AssignmentTitle       string  `json:"assignment_title" validate:"required,max=255"`
	AssignmentDescription *string `json:"assignment_description" validate:"omitempty"`
	AssignmentDueDate     string  `json:"assignment_due_date" validate:"required,datetime=2006-01-02"`

	// NULL berarti tidak di-auto-assign per kelas
	AssignmentGradeLevel *string `json:"assignment_grade_level" validate:"omitempty,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`

	AssignmentIsDemo   bool `json:"assignment_is_demo"`
	AssignmentIsSample bool `json:"assignment_is_sample"`
}

func (r *CreateAssignmentRequest) ToModel() (*amodel.AssignmentModel, error) {
	due, err := time.Parse(time.DateOnly, r.AssignmentDueDate)
	if err != nil {
		return nil, err
	}
	m := &amodel.AssignmentModel{
		AssignmentTitle:       r.AssignmentTitle,
		AssignmentDescription: r.AssignmentDescription,
		AssignmentDueDate:     due,
		AssignmentIsDemo:      r.AssignmentIsDemo,
		AssignmentIsSample:    r.AssignmentIsSample,
	}
	if r.AssignmentGradeLevel != nil {
		g := studentModel.Grade(*r.AssignmentGradeLevel)
		m.AssignmentGradeLevel = &g
	}
	return m, nil
}

/* ==========================================================================================
   REQUEST — UPDATE/PATCH (PARTIAL)
   Pointer supaya field yang tidak dikirim tidak diubah.
========================================================================================== */

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string `json:"assignment_title" validate:"omitempty,max=255"`
	AssignmentDescription *string `json:"assignment_description" validate:"omitempty"`
	AssignmentDueDate     *string `json:"assignment_due_date" validate:"omitempty,datetime=2006-01-02"`
	AssignmentGradeLevel  *string `json:"assignment_grade_level" validate:"omitempty,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
	AssignmentIsDemo      *bool   `json:"assignment_is_demo" validate:"omitempty"`
	AssignmentIsSample    *bool   `json:"assignment_is_sample" validate:"omitempty"`
}

func (r *UpdateAssignmentRequest) ApplyToModel(m *amodel.AssignmentModel) error {
	if r.AssignmentTitle != nil {
		m.AssignmentTitle = *r.AssignmentTitle
	}
	if r.AssignmentDescription != nil {
		m.AssignmentDescription = r.AssignmentDescription
	}
	if r.AssignmentDueDate != nil {
		due, err := time.Parse(time.DateOnly, *r.AssignmentDueDate)
		if err != nil {
			return err
		}
		m.AssignmentDueDate = due
	}
	if r.AssignmentGradeLevel != nil {
		g := studentModel.Grade(*r.AssignmentGradeLevel)
		m.AssignmentGradeLevel = &g
	}
	if r.AssignmentIsDemo != nil {
		m.AssignmentIsDemo = *r.AssignmentIsDemo
	}
	if r.AssignmentIsSample != nil {
		m.AssignmentIsSample = *r.AssignmentIsSample
	}
	return nil
}

/* ==========================================================================================
   RESPONSE DTO
========================================================================================== */

type AssignmentResponse struct {
	AssignmentID          uuid.UUID `json:"assignment_id"`
	AssignmentTitle       string    `json:"assignment_title"`
	AssignmentDescription *string   `json:"assignment_description,omitempty"`
	AssignmentDueDate     string    `json:"assignment_due_date"`
	AssignmentGradeLevel  *string   `json:"assignment_grade_level,omitempty"`
	AssignmentIsDemo      bool      `json:"assignment_is_demo"`
	AssignmentIsSample    bool      `json:"assignment_is_sample"`
	AssignmentCreatedAt   time.Time `json:"assignment_created_at"`
}

func FromAssignmentModel(m *amodel.AssignmentModel) AssignmentResponse {
	var grade *string
	if m.AssignmentGradeLevel != nil {
		g := m.AssignmentGradeLevel.String()
		grade = &g
	}
	return AssignmentResponse{
		AssignmentID:          m.AssignmentID,
		AssignmentTitle:       m.AssignmentTitle,
		AssignmentDescription: m.AssignmentDescription,
		AssignmentDueDate:     m.AssignmentDueDate.Format(time.DateOnly),
		AssignmentGradeLevel:  grade,
		AssignmentIsDemo:      m.AssignmentIsDemo,
		AssignmentIsSample:    m.AssignmentIsSample,
		AssignmentCreatedAt:   m.AssignmentCreatedAt,
	}
}

func FromAssignmentModels(ms []amodel.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromAssignmentModel(&ms[i]))
	}
	return out
}

/* ==========================================================================================
   EXPORT PAYLOAD
   Field konten untuk document exporter eksternal (judul, due date, deskripsi).
========================================================================================== */

type AssignmentExportPayload struct {
	Title       string `json:"title"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
}

func ExportPayloadFromModel(m *amodel.AssignmentModel) AssignmentExportPayload {
	desc := "No description provided."
	if m.AssignmentDescription != nil && *m.AssignmentDescription != "" {
		desc = *m.AssignmentDescription
	}
	return AssignmentExportPayload{
		Title:       m.AssignmentTitle,
		DueDate:     m.AssignmentDueDate.Format(time.DateOnly),
		Description: desc,
	}
}
