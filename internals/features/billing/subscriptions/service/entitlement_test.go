package service

import (
	"testing"

	"novaeclass_backend/internals/features/billing/subscriptions/model"
)

func TestProfileIsPaid(t *testing.T) {
	tests := []struct {
		name    string
		profile *model.BillingProfileModel
		want    bool
	}{
		{"tanpa profil = demo", nil, false},
		{"profil belum bayar", &model.BillingProfileModel{BillingProfileIsPaid: false}, false},
		{"profil sudah bayar", &model.BillingProfileModel{BillingProfileIsPaid: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfileIsPaid(tt.profile); got != tt.want {
				t.Errorf("ProfileIsPaid() = %v, want %v", got, tt.want)
			}
		})
	}
}
