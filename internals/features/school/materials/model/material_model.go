// file: internals/features/school/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "novaeclass_backend/internals/features/users/students/model"
)

// MaterialModel = materi belajar (link file) per jenjang.
type MaterialModel struct {
	MaterialID uuid.UUID `json:"material_id" gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey"`

	MaterialTitle   string `json:"material_title" gorm:"column:material_title;size:200;not null"`
	MaterialFileURL string `json:"material_file_url" gorm:"column:material_file_url;size:500;not null"`

	MaterialGradeLevel studentModel.Grade `json:"material_grade_level" gorm:"column:material_grade_level;type:varchar(4);not null;default:'K';index:idx_material_grade_level"`
	MaterialIsDemo     bool               `json:"material_is_demo" gorm:"column:material_is_demo;not null;default:false"`

	MaterialCreatedAt time.Time      `json:"material_created_at" gorm:"column:material_created_at;autoCreateTime"`
	MaterialUpdatedAt time.Time      `json:"material_updated_at" gorm:"column:material_updated_at;autoUpdateTime"`
	MaterialDeletedAt gorm.DeletedAt `json:"material_deleted_at,omitempty" gorm:"column:material_deleted_at;index"`
}

func (MaterialModel) TableName() string { return "materials" }
