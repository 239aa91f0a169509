// file: internals/features/school/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "novaeclass_backend/internals/features/users/students/model"
)

/* =============================================================================
   MODEL: assignments
   Catatan:
   - grade_level nullable: NULL berarti tidak di-auto-assign per kelas.
   - is_demo menentukan visibilitas untuk user non-berbayar (gate entitlement).
============================================================================= */
type AssignmentModel struct {
	// PK
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AssignmentTitle       string  `json:"assignment_title" gorm:"column:assignment_title;size:255;not null"`
	AssignmentDescription *string `json:"assignment_description,omitempty" gorm:"column:assignment_description;type:text"`

	AssignmentDueDate time.Time `json:"assignment_due_date" gorm:"column:assignment_due_date;type:date;not null;index:idx_assignment_due_date"`

	// Target kelas (nullable)
	AssignmentGradeLevel *studentModel.Grade `json:"assignment_grade_level,omitempty" gorm:"column:assignment_grade_level;type:varchar(4);index:idx_assignment_grade_level"`

	// Flag visibilitas demo/sample
	AssignmentIsDemo   bool `json:"assignment_is_demo" gorm:"column:assignment_is_demo;not null;default:false;index:idx_assignment_is_demo"`
	AssignmentIsSample bool `json:"assignment_is_sample" gorm:"column:assignment_is_sample;not null;default:false"`

	// Audit
	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;index"`
}

// Nama tabel eksplisit
func (AssignmentModel) TableName() string { return "assignments" }
