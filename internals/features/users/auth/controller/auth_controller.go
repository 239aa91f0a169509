// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	authDto "novaeclass_backend/internals/features/users/auth/dto"
	authService "novaeclass_backend/internals/features/users/auth/service"
	userModel "novaeclass_backend/internals/features/users/user/model"
	helper "novaeclass_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctl *AuthController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

func authUserResponse(u *userModel.UserModel, refs authService.ProfileRefs) authDto.AuthUserResponse {
	return authDto.AuthUserResponse{
		ID:               u.ID,
		UserName:         u.UserName,
		Email:            u.Email,
		Role:             string(u.Role),
		StudentProfileID: refs.StudentProfileID,
		ParentProfileID:  refs.ParentProfileID,
	}
}

// POST /api/auth/register
// Satu keluarga sekali jalan: orang tua + minimal satu anak.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req authDto.RegisterParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	family, err := authService.RegisterParentWithChildren(ctl.DB, &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserNameTaken),
			errors.Is(err, authService.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Pendaftaran gagal")
		}
	}

	parentRefs, err := authService.ResolveProfileRefs(ctl.DB, family.Parent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Pendaftaran gagal")
	}

	resp := authDto.RegisterResponse{
		Parent:   authUserResponse(family.Parent, parentRefs),
		Children: make([]authDto.AuthUserResponse, 0, len(family.Children)),
	}
	for _, child := range family.Children {
		childRefs, err := authService.ResolveProfileRefs(ctl.DB, child)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Pendaftaran gagal")
		}
		resp.Children = append(resp.Children, authUserResponse(child, childRefs))
	}
	return helper.JsonCreated(c, "Pendaftaran berhasil", resp)
}

func (ctl *AuthController) loginResponse(c *fiber.Ctx, u *userModel.UserModel) error {
	refs, err := authService.ResolveProfileRefs(ctl.DB, u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}
	access, refresh, err := authService.GenerateTokenPair(u, refs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}

	helper.SetRawAccessToken(c, access)
	return helper.JsonOK(c, "Login berhasil", authDto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authUserResponse(u, refs),
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	u, err := authService.Login(ctl.DB, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}
	return ctl.loginResponse(c, u)
}

// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req authDto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	u, err := authService.LoginGoogle(ctl.DB, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrGoogleAccountNotRegistered):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, authService.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
		}
	}
	return ctl.loginResponse(c, u)
}

// POST /api/auth/logout
// Token yang sedang dipakai masuk blacklist sampai kedaluwarsa.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada token aktif")
	}
	if err := authService.BlacklistToken(ctl.DB, raw); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout gagal")
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", fiber.Map{"logged_out": true})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	refs, err := authService.ResolveProfileRefs(ctl.DB, &u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}
	return helper.JsonOK(c, "ok", authUserResponse(&u, refs))
}
