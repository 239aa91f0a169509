// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"novaeclass_backend/internals/configs"
	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	instanceService "novaeclass_backend/internals/features/school/instances/service"
	authDto "novaeclass_backend/internals/features/users/auth/dto"
	parentModel "novaeclass_backend/internals/features/users/parents/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
	userModel "novaeclass_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("username/email atau password salah")
	ErrUserNameTaken      = errors.New("username sudah dipakai")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
)

/* =======================================================
   PASSWORD
======================================================= */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

/* =======================================================
   TOKEN
======================================================= */

// ProfileRefs: id profil yang ikut dibawa di claims supaya endpoint
// tidak perlu query profil tiap request.
type ProfileRefs struct {
	StudentProfileID *uuid.UUID
	ParentProfileID  *uuid.UUID
}

func buildClaims(u *userModel.UserModel, refs ProfileRefs, ttl time.Duration, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        u.ID.String(),
		"role":      string(u.Role),
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	if refs.StudentProfileID != nil {
		claims["student_profile_id"] = refs.StudentProfileID.String()
	}
	if refs.ParentProfileID != nil {
		claims["parent_profile_id"] = refs.ParentProfileID.String()
	}
	return claims
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// GenerateTokenPair membuat access + refresh token untuk user.
func GenerateTokenPair(u *userModel.UserModel, refs ProfileRefs) (access string, refresh string, err error) {
	now := time.Now()
	access, err = signToken(buildClaims(u, refs, AccessTokenTTL, now), configs.JWTSecret)
	if err != nil {
		return "", "", err
	}
	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		refreshSecret = configs.JWTSecret
	}
	refresh, err = signToken(buildClaims(u, refs, RefreshTokenTTL, now), refreshSecret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ResolveProfileRefs memuat id profil student/parent milik user (kalau ada).
func ResolveProfileRefs(db *gorm.DB, u *userModel.UserModel) (ProfileRefs, error) {
	var refs ProfileRefs

	switch u.Role {
	case userModel.RoleStudent:
		var p studentModel.StudentProfileModel
		err := db.Select("student_profile_id").
			Where("student_profile_user_id = ?", u.ID).
			First(&p).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return refs, err
		}
		if err == nil {
			refs.StudentProfileID = &p.StudentProfileID
		}
	case userModel.RoleParent:
		var p parentModel.ParentProfileModel
		err := db.Select("parent_profile_id").
			Where("parent_profile_user_id = ?", u.ID).
			First(&p).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return refs, err
		}
		if err == nil {
			refs.ParentProfileID = &p.ParentProfileID
		}
	}
	return refs, nil
}

/* =======================================================
   REGISTER (orang tua + anak, satu transaksi)
======================================================= */

// childEmail: anak tidak punya email sendiri, dibuatkan alamat internal
// supaya constraint unique tetap terpenuhi.
func childEmail(userName string) string {
	return fmt.Sprintf("%s@students.novaeclass.id", strings.ToLower(userName))
}

type RegisteredFamily struct {
	Parent        *userModel.UserModel
	Children      []*userModel.UserModel
	ChildProfiles []*studentModel.StudentProfileModel
}

// GradedProfiles memilih profil siswa yang gradenya sudah terisi:
// hanya mereka yang bisa langsung dibuatkan assignment instance.
func GradedProfiles(profiles []*studentModel.StudentProfileModel) []*studentModel.StudentProfileModel {
	out := make([]*studentModel.StudentProfileModel, 0, len(profiles))
	for _, p := range profiles {
		if p != nil && p.StudentProfileGrade != nil && p.StudentProfileGrade.Valid() {
			out = append(out, p)
		}
	}
	return out
}

// RegisterParentWithChildren membuat user orang tua + profilnya, lalu semua
// anak (user + profil siswa) dan relasinya. Gagal satu = batal semua.
func RegisterParentWithChildren(db *gorm.DB, req *authDto.RegisterParentRequest) (*RegisteredFamily, error) {
	// cek duplikat dulu biar pesan errornya jelas
	names := []string{req.UserName}
	for _, ch := range req.Children {
		names = append(names, ch.UserName)
	}
	var taken int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_name IN ?", names).
		Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrUserNameTaken
	}
	var emailTaken int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).
		Count(&emailTaken).Error; err != nil {
		return nil, err
	}
	if emailTaken > 0 {
		return nil, ErrEmailTaken
	}

	out := &RegisteredFamily{}
	err := db.Transaction(func(tx *gorm.DB) error {
		parentHash, err := HashPassword(req.Password)
		if err != nil {
			return err
		}
		parentUser := &userModel.UserModel{
			UserName: req.UserName,
			Email:    req.Email,
			Password: parentHash,
			Role:     userModel.RoleParent,
			IsActive: true,
		}
		if err := tx.Create(parentUser).Error; err != nil {
			return err
		}

		parentProfile := &parentModel.ParentProfileModel{
			ParentProfileUserID: parentUser.ID,
		}
		if req.Phone != "" {
			parentProfile.ParentProfilePhoneNumber = &req.Phone
		}
		if err := tx.Create(parentProfile).Error; err != nil {
			return err
		}

		for i := range req.Children {
			ch := &req.Children[i]
			childHash, err := HashPassword(ch.Password)
			if err != nil {
				return err
			}
			childUser := &userModel.UserModel{
				UserName: ch.UserName,
				Email:    childEmail(ch.UserName),
				Password: childHash,
				Role:     userModel.RoleStudent,
				IsActive: true,
			}
			if err := tx.Create(childUser).Error; err != nil {
				return err
			}

			grade := studentModel.Grade(ch.Grade)
			childProfile := &studentModel.StudentProfileModel{
				StudentProfileUserID: childUser.ID,
				StudentProfileGrade:  &grade,
			}
			if err := tx.Create(childProfile).Error; err != nil {
				return err
			}

			// relasi parent_children
			if err := tx.Exec(
				"INSERT INTO parent_children (parent_profile_id, student_profile_id) VALUES (?, ?)",
				parentProfile.ParentProfileID, childProfile.StudentProfileID,
			).Error; err != nil {
				return err
			}

			out.Children = append(out.Children, childUser)
			out.ChildProfiles = append(out.ChildProfiles, childProfile)
		}

		out.Parent = parentUser
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Anak dengan grade langsung dibuatkan instance (sama seperti saat grade
	// diubah lewat profil). Gagal di sini tidak membatalkan pendaftaran;
	// dashboard siswa akan mengulang EnsureInstances.
	for _, p := range GradedProfiles(out.ChildProfiles) {
		isPaid, perr := billingService.IsPaidForStudent(db, p.StudentProfileID)
		if perr != nil {
			log.Printf("[ERROR] Gagal cek langganan siswa %s: %v", p.StudentProfileID, perr)
			continue
		}
		if ierr := instanceService.EnsureInstances(db, p.StudentProfileID, p.StudentProfileGrade, isPaid); ierr != nil {
			log.Printf("[ERROR] Gagal menyiapkan assignment siswa %s: %v", p.StudentProfileID, ierr)
		}
	}

	return out, nil
}

/* =======================================================
   LOGIN
======================================================= */

// FindUserByIdentifier: username dulu, lalu email.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := db.Where("user_name = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &u, nil
}

func Login(db *gorm.DB, identifier, password string) (*userModel.UserModel, error) {
	u, err := FindUserByIdentifier(db, identifier)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
