// file: internals/features/users/students/model/student_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: student_profiles
   Catatan:
   - daily_time_seconds direset saat last_active_date != hari ini (lihat service).
   - grade nullable: siswa tanpa kelas tidak di-auto-assign tugas apa pun.
============================================================================= */
type StudentProfileModel struct {
	// PK
	StudentProfileID uuid.UUID `json:"student_profile_id" gorm:"column:student_profile_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK 1:1 ke users
	StudentProfileUserID uuid.UUID `json:"student_profile_user_id" gorm:"column:student_profile_user_id;type:uuid;not null;uniqueIndex:uq_student_profile_user"`

	// Kelas (nullable)
	StudentProfileGrade *Grade `json:"student_profile_grade,omitempty" gorm:"column:student_profile_grade;type:varchar(4)"`

	// Pencatatan waktu aktif harian
	StudentProfileDailyTimeSeconds int       `json:"student_profile_daily_time_seconds" gorm:"column:student_profile_daily_time_seconds;not null;default:0"`
	StudentProfileLastActiveDate   time.Time `json:"student_profile_last_active_date" gorm:"column:student_profile_last_active_date;type:date;not null;default:now()"`

	// Avatar (hasil konversi WebP)
	StudentProfileAvatar []byte `json:"-" gorm:"column:student_profile_avatar;type:bytea"`

	// Audit
	StudentProfileCreatedAt time.Time `json:"student_profile_created_at" gorm:"column:student_profile_created_at;autoCreateTime"`
	StudentProfileUpdatedAt time.Time `json:"student_profile_updated_at" gorm:"column:student_profile_updated_at;autoUpdateTime"`
}

// Nama tabel eksplisit
func (StudentProfileModel) TableName() string { return "student_profiles" }

func (m *StudentProfileModel) HasGrade() bool {
	return m.StudentProfileGrade != nil && *m.StudentProfileGrade != ""
}
