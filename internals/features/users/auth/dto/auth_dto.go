// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =======================================================
   REQUEST
======================================================= */

// ChildSignupRequest: satu anak yang didaftarkan bersama orang tuanya.
type ChildSignupRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Grade    string `json:"grade" validate:"required,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
}

// RegisterParentRequest: pendaftaran orang tua + minimal satu anak,
// semuanya dalam satu transaksi.
type RegisterParentRequest struct {
	UserName string               `json:"user_name" validate:"required,min=3,max=50"`
	Email    string               `json:"email" validate:"required,email,max=255"`
	Password string               `json:"password" validate:"required,min=8"`
	Phone    string               `json:"phone" validate:"omitempty,max=20"`
	Children []ChildSignupRequest `json:"children" validate:"required,min=1,max=10,dive"`
}

type LoginRequest struct {
	// username atau email
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =======================================================
   RESPONSE
======================================================= */

type AuthUserResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserName         string     `json:"user_name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	StudentProfileID *uuid.UUID `json:"student_profile_id,omitempty"`
	ParentProfileID  *uuid.UUID `json:"parent_profile_id,omitempty"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         AuthUserResponse `json:"user"`
}

type RegisterResponse struct {
	Parent   AuthUserResponse   `json:"parent"`
	Children []AuthUserResponse `json:"children"`
}
