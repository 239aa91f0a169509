// file: internals/features/users/auth/service/google_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"novaeclass_backend/internals/configs"
	userModel "novaeclass_backend/internals/features/users/user/model"
)

var ErrGoogleAccountNotRegistered = errors.New("akun Google belum terdaftar, silakan daftar dulu")

// VerifyGoogleIDToken memverifikasi ID token terhadap client id aplikasi dan
// mengembalikan (googleID, email).
func VerifyGoogleIDToken(idToken string) (string, string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return "", "", err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", "", err
	}
	return claimSet.Sub, strings.ToLower(claimSet.Email), nil
}

// LoginGoogle: cari user by google_id, fallback by email (lalu tautkan
// google_id-nya). Tidak membuat akun baru; pendaftaran tetap lewat signup
// keluarga.
func LoginGoogle(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	googleID, email, err := VerifyGoogleIDToken(idToken)
	if err != nil {
		return nil, err
	}

	var u userModel.UserModel
	err = db.Where("google_id = ?", googleID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && email != "" {
		err = db.Where("email = ?", email).First(&u).Error
		if err == nil {
			// tautkan akun google ke user lama
			u.GoogleID = &googleID
			if saveErr := db.Model(&userModel.UserModel{}).
				Where("id = ?", u.ID).
				Update("google_id", googleID).Error; saveErr != nil {
				return nil, saveErr
			}
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoogleAccountNotRegistered
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
