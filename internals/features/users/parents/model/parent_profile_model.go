// file: internals/features/users/parents/model/parent_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "novaeclass_backend/internals/features/users/students/model"
)

/* =============================================================================
   MODEL: parent_profiles
   Relasi many-to-many ke student_profiles lewat parent_children:
   satu anak boleh punya lebih dari satu orang tua.
============================================================================= */
type ParentProfileModel struct {
	// PK
	ParentProfileID uuid.UUID `json:"parent_profile_id" gorm:"column:parent_profile_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK 1:1 ke users
	ParentProfileUserID uuid.UUID `json:"parent_profile_user_id" gorm:"column:parent_profile_user_id;type:uuid;not null;uniqueIndex:uq_parent_profile_user"`

	ParentProfilePhoneNumber *string `json:"parent_profile_phone_number,omitempty" gorm:"column:parent_profile_phone_number;size:15"`

	// Anak-anak (m2m)
	Children []studentModel.StudentProfileModel `json:"children,omitempty" gorm:"many2many:parent_children;foreignKey:ParentProfileID;joinForeignKey:parent_profile_id;References:StudentProfileID;joinReferences:student_profile_id"`

	// Audit
	ParentProfileCreatedAt time.Time `json:"parent_profile_created_at" gorm:"column:parent_profile_created_at;autoCreateTime"`
	ParentProfileUpdatedAt time.Time `json:"parent_profile_updated_at" gorm:"column:parent_profile_updated_at;autoUpdateTime"`
}

// Nama tabel eksplisit
func (ParentProfileModel) TableName() string { return "parent_profiles" }
