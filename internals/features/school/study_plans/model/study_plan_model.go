// file: internals/features/school/study_plans/model/study_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyPlanModel = rencana belajar pribadi milik satu user (fitur berbayar).
type StudyPlanModel struct {
	StudyPlanID uuid.UUID `json:"study_plan_id" gorm:"column:study_plan_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudyPlanUserID uuid.UUID `json:"study_plan_user_id" gorm:"column:study_plan_user_id;type:uuid;not null;index:idx_study_plan_user"`

	StudyPlanTitle     string     `json:"study_plan_title" gorm:"column:study_plan_title;size:100;not null"`
	StudyPlanClassName string     `json:"study_plan_class_name" gorm:"column:study_plan_class_name;size:100"`
	StudyPlanSubject   string     `json:"study_plan_subject" gorm:"column:study_plan_subject;size:100"`
	StudyPlanDate      *time.Time `json:"study_plan_date" gorm:"column:study_plan_date;type:date"`
	StudyPlanContent   string     `json:"study_plan_content" gorm:"column:study_plan_content;type:text"`
	StudyPlanNotes     string     `json:"study_plan_notes" gorm:"column:study_plan_notes;type:text"`

	StudyPlanCreatedAt time.Time      `json:"study_plan_created_at" gorm:"column:study_plan_created_at;autoCreateTime"`
	StudyPlanUpdatedAt time.Time      `json:"study_plan_updated_at" gorm:"column:study_plan_updated_at;autoUpdateTime"`
	StudyPlanDeletedAt gorm.DeletedAt `json:"study_plan_deleted_at,omitempty" gorm:"column:study_plan_deleted_at;index"`
}

func (StudyPlanModel) TableName() string { return "study_plans" }
