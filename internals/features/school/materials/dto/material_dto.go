// file: internals/features/school/materials/dto/material_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"novaeclass_backend/internals/constants"
	"novaeclass_backend/internals/features/school/materials/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
)

type CreateMaterialRequest struct {
	MaterialTitle      string `json:"material_title" validate:"required,min=3,max=200"`
	MaterialFileURL    string `json:"material_file_url" validate:"required,url,max=500"`
	MaterialGradeLevel string `json:"material_grade_level" validate:"required,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
	MaterialIsDemo     bool   `json:"material_is_demo"`
}

func (r *CreateMaterialRequest) ToModel() *model.MaterialModel {
	return &model.MaterialModel{
		MaterialTitle:      r.MaterialTitle,
		MaterialFileURL:    r.MaterialFileURL,
		MaterialGradeLevel: studentModel.Grade(r.MaterialGradeLevel),
		MaterialIsDemo:     r.MaterialIsDemo,
	}
}

type UpdateMaterialRequest struct {
	MaterialTitle      *string `json:"material_title" validate:"omitempty,min=3,max=200"`
	MaterialFileURL    *string `json:"material_file_url" validate:"omitempty,url,max=500"`
	MaterialGradeLevel *string `json:"material_grade_level" validate:"omitempty,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
	MaterialIsDemo     *bool   `json:"material_is_demo"`
}

func (r *UpdateMaterialRequest) ApplyToModel(m *model.MaterialModel) {
	if r.MaterialTitle != nil {
		m.MaterialTitle = *r.MaterialTitle
	}
	if r.MaterialFileURL != nil {
		m.MaterialFileURL = *r.MaterialFileURL
	}
	if r.MaterialGradeLevel != nil {
		m.MaterialGradeLevel = studentModel.Grade(*r.MaterialGradeLevel)
	}
	if r.MaterialIsDemo != nil {
		m.MaterialIsDemo = *r.MaterialIsDemo
	}
}

type MaterialResponse struct {
	MaterialID         uuid.UUID `json:"material_id"`
	MaterialTitle      string    `json:"material_title"`
	MaterialFileURL    string    `json:"material_file_url"`
	MaterialFileType   string    `json:"material_file_type"`
	MaterialGradeLevel string    `json:"material_grade_level"`
	MaterialIsDemo     bool      `json:"material_is_demo"`
	MaterialCreatedAt  time.Time `json:"material_created_at"`
}

func FromMaterialModel(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:         m.MaterialID,
		MaterialTitle:      m.MaterialTitle,
		MaterialFileURL:    m.MaterialFileURL,
		MaterialFileType:   constants.DetectFileTypeFromURL(m.MaterialFileURL),
		MaterialGradeLevel: string(m.MaterialGradeLevel),
		MaterialIsDemo:     m.MaterialIsDemo,
		MaterialCreatedAt:  m.MaterialCreatedAt,
	}
}

func FromMaterialModels(ms []model.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromMaterialModel(&ms[i]))
	}
	return out
}
