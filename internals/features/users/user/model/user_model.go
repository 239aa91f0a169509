package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: Role pengguna ('student','parent','admin')
============================================================================= */
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleParent  UserRole = "parent"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique" json:"email" validate:"omitempty,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     UserRole  `gorm:"type:varchar(10);not null" json:"role" validate:"required,oneof=student parent admin"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsStudent() bool { return u.Role == RoleStudent }
func (u *UserModel) IsParent() bool  { return u.Role == RoleParent }
func (u *UserModel) IsAdmin() bool   { return u.Role == RoleAdmin }
