// file: internals/features/users/auth/service/logout_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "novaeclass_backend/internals/features/users/auth/model"
)

// BlacklistToken memasukkan token ke blacklist sampai masa berlakunya habis.
// Token tanpa exp yang bisa dibaca diblacklist 24 jam.
func BlacklistToken(db *gorm.DB, rawToken string) error {
	expiredAt := time.Now().Add(24 * time.Hour)

	parser := jwt.Parser{SkipClaimsValidation: true}
	if token, _, err := parser.ParseUnverified(rawToken, jwt.MapClaims{}); err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     rawToken,
			ExpiredAt: expiredAt,
		}).Error
}
