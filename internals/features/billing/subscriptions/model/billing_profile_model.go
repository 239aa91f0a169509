// file: internals/features/billing/subscriptions/model/billing_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   ENUM-like: Plan ('demo','paid')
============================================================================= */
type BillingPlan string

const (
	PlanDemo BillingPlan = "demo"
	PlanPaid BillingPlan = "paid"
)

func (p BillingPlan) String() string { return string(p) }
func (p BillingPlan) Valid() bool {
	return p == PlanDemo || p == PlanPaid
}

/* =============================================================================
   MODEL: billing_profiles
   Satu baris per user; is_paid adalah satu-satunya state yang dibaca gate.
============================================================================= */
type BillingProfileModel struct {
	// PK
	BillingProfileID uuid.UUID `json:"billing_profile_id" gorm:"column:billing_profile_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK 1:1 ke users
	BillingProfileUserID uuid.UUID `json:"billing_profile_user_id" gorm:"column:billing_profile_user_id;type:uuid;not null;uniqueIndex:uq_billing_profile_user"`

	BillingProfileIsPaid bool        `json:"billing_profile_is_paid" gorm:"column:billing_profile_is_paid;not null;default:false"`
	BillingProfilePlan   BillingPlan `json:"billing_profile_plan" gorm:"column:billing_profile_plan;type:varchar(10);not null;default:'demo'"`

	// Order Midtrans yang sedang berjalan (nullable)
	BillingProfileOrderID *string    `json:"billing_profile_order_id,omitempty" gorm:"column:billing_profile_order_id;size:64;index"`
	BillingProfilePaidAt  *time.Time `json:"billing_profile_paid_at,omitempty" gorm:"column:billing_profile_paid_at"`

	// Payload webhook terakhir (audit/debug)
	BillingProfileLastEvent datatypes.JSON `json:"billing_profile_last_event,omitempty" gorm:"column:billing_profile_last_event;type:jsonb"`

	// Audit
	BillingProfileCreatedAt time.Time `json:"billing_profile_created_at" gorm:"column:billing_profile_created_at;autoCreateTime"`
	BillingProfileUpdatedAt time.Time `json:"billing_profile_updated_at" gorm:"column:billing_profile_updated_at;autoUpdateTime"`
}

// Nama tabel eksplisit
func (BillingProfileModel) TableName() string { return "billing_profiles" }
