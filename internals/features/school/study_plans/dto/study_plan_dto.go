// file: internals/features/school/study_plans/dto/study_plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"novaeclass_backend/internals/features/school/study_plans/model"
)

const dateLayout = "2006-01-02"

type CreateStudyPlanRequest struct {
	StudyPlanTitle     string  `json:"study_plan_title" validate:"required,min=3,max=100"`
	StudyPlanClassName string  `json:"study_plan_class_name" validate:"max=100"`
	StudyPlanSubject   string  `json:"study_plan_subject" validate:"max=100"`
	StudyPlanDate      *string `json:"study_plan_date" validate:"omitempty,datetime=2006-01-02"`
	StudyPlanContent   string  `json:"study_plan_content"`
	StudyPlanNotes     string  `json:"study_plan_notes"`
}

func (r *CreateStudyPlanRequest) ToModel(userID uuid.UUID) (*model.StudyPlanModel, error) {
	m := &model.StudyPlanModel{
		StudyPlanUserID:    userID,
		StudyPlanTitle:     r.StudyPlanTitle,
		StudyPlanClassName: r.StudyPlanClassName,
		StudyPlanSubject:   r.StudyPlanSubject,
		StudyPlanContent:   r.StudyPlanContent,
		StudyPlanNotes:     r.StudyPlanNotes,
	}
	if r.StudyPlanDate != nil && *r.StudyPlanDate != "" {
		d, err := time.Parse(dateLayout, *r.StudyPlanDate)
		if err != nil {
			return nil, err
		}
		m.StudyPlanDate = &d
	}
	return m, nil
}

type UpdateStudyPlanRequest struct {
	StudyPlanTitle     *string `json:"study_plan_title" validate:"omitempty,min=3,max=100"`
	StudyPlanClassName *string `json:"study_plan_class_name" validate:"omitempty,max=100"`
	StudyPlanSubject   *string `json:"study_plan_subject" validate:"omitempty,max=100"`
	StudyPlanDate      *string `json:"study_plan_date" validate:"omitempty,datetime=2006-01-02"`
	StudyPlanContent   *string `json:"study_plan_content"`
	StudyPlanNotes     *string `json:"study_plan_notes"`
}

func (r *UpdateStudyPlanRequest) ApplyToModel(m *model.StudyPlanModel) error {
	if r.StudyPlanTitle != nil {
		m.StudyPlanTitle = *r.StudyPlanTitle
	}
	if r.StudyPlanClassName != nil {
		m.StudyPlanClassName = *r.StudyPlanClassName
	}
	if r.StudyPlanSubject != nil {
		m.StudyPlanSubject = *r.StudyPlanSubject
	}
	if r.StudyPlanDate != nil {
		if *r.StudyPlanDate == "" {
			m.StudyPlanDate = nil
		} else {
			d, err := time.Parse(dateLayout, *r.StudyPlanDate)
			if err != nil {
				return err
			}
			m.StudyPlanDate = &d
		}
	}
	if r.StudyPlanContent != nil {
		m.StudyPlanContent = *r.StudyPlanContent
	}
	if r.StudyPlanNotes != nil {
		m.StudyPlanNotes = *r.StudyPlanNotes
	}
	return nil
}

type StudyPlanResponse struct {
	StudyPlanID        uuid.UUID `json:"study_plan_id"`
	StudyPlanTitle     string    `json:"study_plan_title"`
	StudyPlanClassName string    `json:"study_plan_class_name"`
	StudyPlanSubject   string    `json:"study_plan_subject"`
	StudyPlanDate      *string   `json:"study_plan_date"`
	StudyPlanContent   string    `json:"study_plan_content"`
	StudyPlanNotes     string    `json:"study_plan_notes"`
	StudyPlanUpdatedAt time.Time `json:"study_plan_updated_at"`
}

func FromStudyPlanModel(m *model.StudyPlanModel) StudyPlanResponse {
	var date *string
	if m.StudyPlanDate != nil {
		s := m.StudyPlanDate.Format(dateLayout)
		date = &s
	}
	return StudyPlanResponse{
		StudyPlanID:        m.StudyPlanID,
		StudyPlanTitle:     m.StudyPlanTitle,
		StudyPlanClassName: m.StudyPlanClassName,
		StudyPlanSubject:   m.StudyPlanSubject,
		StudyPlanDate:      date,
		StudyPlanContent:   m.StudyPlanContent,
		StudyPlanNotes:     m.StudyPlanNotes,
		StudyPlanUpdatedAt: m.StudyPlanUpdatedAt,
	}
}

func FromStudyPlanModels(ms []model.StudyPlanModel) []StudyPlanResponse {
	out := make([]StudyPlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromStudyPlanModel(&ms[i]))
	}
	return out
}
