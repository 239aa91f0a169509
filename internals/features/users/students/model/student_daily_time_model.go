package model

import (
	"time"

	"github.com/google/uuid"
)

// Riwayat waktu aktif per hari (satu baris per siswa per tanggal).
type StudentDailyTimeModel struct {
	StudentDailyTimeID        uint      `gorm:"column:student_daily_time_id;primaryKey" json:"student_daily_time_id"`
	StudentDailyTimeStudentID uuid.UUID `gorm:"column:student_daily_time_student_id;type:uuid;not null;uniqueIndex:uq_student_daily_time_date,priority:1" json:"student_daily_time_student_id"`
	StudentDailyTimeDate      time.Time `gorm:"column:student_daily_time_date;type:date;not null;uniqueIndex:uq_student_daily_time_date,priority:2" json:"student_daily_time_date"`
	StudentDailyTimeSeconds   int       `gorm:"column:student_daily_time_seconds;not null;default:0" json:"student_daily_time_seconds"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (StudentDailyTimeModel) TableName() string {
	return "student_daily_times"
}
