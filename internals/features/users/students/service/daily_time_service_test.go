package service

import (
	"testing"
	"time"

	"novaeclass_backend/internals/features/users/students/model"
)

func TestApplyDailyTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name        string
		lastActive  time.Time
		startingSec int
		elapsed     int
		wantSec     int
	}{
		{"akumulasi di hari yang sama", now, 600, 120, 720},
		{"reset saat ganti hari", yesterday, 3600, 120, 120},
		{"elapsed negatif diabaikan", now, 600, -50, 600},
		{"elapsed dibatasi maksimum heartbeat", now, 0, 10 * 3600, maxHeartbeatSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.StudentProfileModel{
				StudentProfileDailyTimeSeconds: tt.startingSec,
				StudentProfileLastActiveDate:   tt.lastActive,
			}
			ApplyDailyTime(&p, now, tt.elapsed)

			if p.StudentProfileDailyTimeSeconds != tt.wantSec {
				t.Errorf("daily seconds = %d, want %d", p.StudentProfileDailyTimeSeconds, tt.wantSec)
			}
			if !sameDate(p.StudentProfileLastActiveDate, now) {
				t.Error("last_active_date harus di-set ke hari ini")
			}
		})
	}
}

func TestActiveSecondsToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	fresh := model.StudentProfileModel{
		StudentProfileDailyTimeSeconds: 900,
		StudentProfileLastActiveDate:   now,
	}
	if got := ActiveSecondsToday(fresh, now); got != 900 {
		t.Errorf("hari ini = %d, want 900", got)
	}

	stale := model.StudentProfileModel{
		StudentProfileDailyTimeSeconds: 900,
		StudentProfileLastActiveDate:   now.AddDate(0, 0, -2),
	}
	if got := ActiveSecondsToday(stale, now); got != 0 {
		t.Errorf("tanggal basi = %d, want 0", got)
	}
}
