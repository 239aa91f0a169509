package controller

import (
	"testing"
	"time"
)

// Due date tersimpan sebagai DATE (midnight UTC); pembagian upcoming/past
// harus ikut tanggal lokal server, termasuk menjelang tengah malam.
func TestDueBeforeToday(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		due  time.Time
		now  time.Time
		want bool
	}{
		{
			// 30 Agu 01:00 WIB = 29 Agu 18:00 UTC; truncate per instan UTC
			// masih menganggap due 29 Agu belum lewat.
			"due kemarin, dini hari lokal",
			time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 1, 0, 0, 0, jakarta),
			true,
		},
		{
			"due hari ini belum past",
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 23, 30, 0, 0, jakarta),
			false,
		},
		{
			"dini hari lokal, due hari ini",
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 1, 0, 0, 0, jakarta),
			false,
		},
		{
			"due besok",
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 23, 59, 0, 0, jakarta),
			false,
		},
		{
			"beda tahun",
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 1, 0, 5, 0, 0, jakarta),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dueBeforeToday(tt.due, tt.now); got != tt.want {
				t.Errorf("dueBeforeToday(%v, %v) = %v, want %v", tt.due, tt.now, got, tt.want)
			}
		})
	}
}
