package service

import "testing"

// Vektor: sha512("NOVAE-1a2b3c4d-1700000000" + "200" + "99000.00" + serverKey).
const (
	sigServerKey = "SB-Mid-server-testkey"
	sigValid     = "11da505f3ef698a6d7546883ee95cc54af25889d8221d2236002b726ece3f8e283b2b1bcf17702578478bb720e518131b84deb0f5d239b856f5c23921f74c4d1"
)

func notificationBody(signature string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           "NOVAE-1a2b3c4d-1700000000",
		"status_code":        "200",
		"gross_amount":       "99000.00",
		"transaction_status": "settlement",
		"signature_key":      signature,
	}
}

func TestValidNotificationSignature(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
		want bool
	}{
		{"signature cocok", notificationBody(sigValid), true},
		{"signature huruf besar tetap cocok", notificationBody("11DA505F3EF698A6D7546883EE95CC54AF25889D8221D2236002B726ECE3F8E283B2B1BCF17702578478BB720E518131B84DEB0F5D239B856F5C23921F74C4D1"), true},
		{"signature salah", notificationBody("deadbeef"), false},
		{"signature kosong", notificationBody(""), false},
		{"payload tanpa signature", map[string]interface{}{
			"order_id":           "NOVAE-1a2b3c4d-1700000000",
			"status_code":        "200",
			"gross_amount":       "99000.00",
			"transaction_status": "settlement",
		}, false},
		{"order_id beda", func() map[string]interface{} {
			b := notificationBody(sigValid)
			b["order_id"] = "NOVAE-lain-1700000000"
			return b
		}(), false},
		{"gross_amount beda", func() map[string]interface{} {
			b := notificationBody(sigValid)
			b["gross_amount"] = "1.00"
			return b
		}(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNotificationSignature(tt.body, sigServerKey); got != tt.want {
				t.Errorf("ValidNotificationSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}
