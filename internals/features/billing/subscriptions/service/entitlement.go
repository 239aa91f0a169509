// file: internals/features/billing/subscriptions/service/entitlement.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"novaeclass_backend/internals/features/billing/subscriptions/model"
)

/* =============================================================================
   Access/Entitlement Gate
   isPaid = user ada billing profile DAN flag paid true.
   Dievaluasi per request dari baris tersimpan, tanpa cache.
============================================================================= */

// ProfileIsPaid predikat murni di atas profil yang sudah di-load.
func ProfileIsPaid(p *model.BillingProfileModel) bool {
	return p != nil && p.BillingProfileIsPaid
}

// IsPaidForStudent: siswa dianggap paid kalau user-nya sendiri paid ATAU salah
// satu orang tuanya paid (orang tua yang membayar langganan anak).
func IsPaidForStudent(db *gorm.DB, studentProfileID uuid.UUID) (bool, error) {
	if studentProfileID == uuid.Nil {
		return false, nil
	}
	var count int64
	err := db.Model(&model.BillingProfileModel{}).
		Where("billing_profile_is_paid = ?", true).
		Where(`billing_profile_user_id IN (
			SELECT student_profile_user_id FROM student_profiles WHERE student_profile_id = @sid
			UNION
			SELECT pp.parent_profile_user_id
			FROM parent_profiles pp
			JOIN parent_children pc ON pc.parent_profile_id = pp.parent_profile_id
			WHERE pc.student_profile_id = @sid
		)`, map[string]any{"sid": studentProfileID}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsPaid baca billing profile user; tanpa profile = demo.
func IsPaid(db *gorm.DB, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	var p model.BillingProfileModel
	err := db.Where("billing_profile_user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return ProfileIsPaid(&p), nil
}
