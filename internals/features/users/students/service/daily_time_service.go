// file: internals/features/users/students/service/daily_time_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"novaeclass_backend/internals/features/users/students/model"
)

// Batas wajar satu heartbeat; sisanya dianggap tab ditinggal terbuka.
const maxHeartbeatSeconds = 30 * 60

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

/* =============================================================================
   Logika murni — dipisah supaya gampang dites tanpa DB
============================================================================= */

// ApplyDailyTime tambah elapsed detik ke counter harian profil.
// Counter direset dulu kalau last_active_date bukan hari ini.
func ApplyDailyTime(p *model.StudentProfileModel, now time.Time, elapsedSeconds int) {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds > maxHeartbeatSeconds {
		elapsedSeconds = maxHeartbeatSeconds
	}
	if !sameDate(p.StudentProfileLastActiveDate, now) {
		p.StudentProfileDailyTimeSeconds = 0
	}
	p.StudentProfileDailyTimeSeconds += elapsedSeconds
	p.StudentProfileLastActiveDate = truncateToDate(now)
}

// ActiveSecondsToday detik aktif hari ini; 0 kalau tanggal tersimpan sudah basi.
func ActiveSecondsToday(p model.StudentProfileModel, now time.Time) int {
	if !sameDate(p.StudentProfileLastActiveDate, now) {
		return 0
	}
	return p.StudentProfileDailyTimeSeconds
}

/* =============================================================================
   Persistensi
============================================================================= */

// RecordHeartbeat akumulasi waktu aktif: update profil + upsert baris harian.
// Baris harian di-upsert atomik keyed (student_id, date).
func RecordHeartbeat(db *gorm.DB, profile *model.StudentProfileModel, now time.Time, elapsedSeconds int) error {
	ApplyDailyTime(profile, now, elapsedSeconds)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StudentProfileModel{}).
			Where("student_profile_id = ?", profile.StudentProfileID).
			Updates(map[string]any{
				"student_profile_daily_time_seconds": profile.StudentProfileDailyTimeSeconds,
				"student_profile_last_active_date":   profile.StudentProfileLastActiveDate,
			}).Error; err != nil {
			return err
		}

		row := model.StudentDailyTimeModel{
			StudentDailyTimeStudentID: profile.StudentProfileID,
			StudentDailyTimeDate:      truncateToDate(now),
			StudentDailyTimeSeconds:   profile.StudentProfileDailyTimeSeconds,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_daily_time_student_id"},
				{Name: "student_daily_time_date"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"student_daily_time_seconds": profile.StudentProfileDailyTimeSeconds,
				"updated_at":                 now,
			}),
		}).Create(&row).Error
	})
}

// FindProfileByID helper kecil untuk controller/report.
func FindProfileByID(db *gorm.DB, id uuid.UUID) (*model.StudentProfileModel, error) {
	var p model.StudentProfileModel
	if err := db.Where("student_profile_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
