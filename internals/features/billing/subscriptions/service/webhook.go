// file: internals/features/billing/subscriptions/service/webhook.go
package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"novaeclass_backend/internals/configs"
	"novaeclass_backend/internals/features/billing/subscriptions/model"
)

// ValidNotificationSignature memverifikasi signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + serverKey).
func ValidNotificationSignature(body map[string]interface{}, serverKey string) bool {
	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)
	if orderID == "" || statusCode == "" || grossAmount == "" || signature == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// HandleSubscriptionStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// Endpoint webhook lewat tanpa auth JWT, jadi signature wajib dicek dulu
// sebelum menyentuh billing profile. Hanya status settlement/capture yang
// mengaktifkan paket berbayar.
func HandleSubscriptionStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	if !ValidNotificationSignature(body, configs.MidtransServerKey) {
		log.Println("[ERROR] Signature webhook tidak valid untuk order:", orderID)
		return fmt.Errorf("invalid signature")
	}

	var profile model.BillingProfileModel
	if err := db.Where("billing_profile_order_id = ?", orderID).First(&profile).Error; err != nil {
		log.Println("[ERROR] Billing profile untuk order tidak ditemukan:", err)
		return fmt.Errorf("billing profile with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		profile.BillingProfileIsPaid = true
		profile.BillingProfilePlan = model.PlanPaid
		profile.BillingProfilePaidAt = &now

	case "expire", "cancel", "deny":
		// order gagal: biarkan tetap demo, kosongkan order supaya bisa checkout ulang
		profile.BillingProfileOrderID = nil
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if raw, err := json.Marshal(body); err == nil {
		profile.BillingProfileLastEvent = datatypes.JSON(raw)
	}

	if err := db.Save(&profile).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status billing:", err)
		return err
	}

	return nil
}
