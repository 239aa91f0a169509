package users

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "novaeclass_backend/internals/features/users/auth/service"
	"novaeclass_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON membuat akun dasar (admin dll). User yang emailnya sudah
// ada dilewati, aman dijalankan berulang.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		role := model.UserRole(data.Role)
		if !role.Valid() {
			log.Printf("❌ Role '%s' tidak dikenal untuk '%s', dilewati.", data.Role, data.Email)
			continue
		}

		hashedPassword, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			ID:       uuid.New(),
			UserName: data.UserName,
			Email:    data.Email,
			Password: hashedPassword,
			Role:     role,
			IsActive: true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal membuat user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) dibuat.", data.UserName, role)
	}
}
