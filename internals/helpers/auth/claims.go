// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Locals key (diisi middleware auth, dibaca controller)
========================================================= */
const (
	LocUserID           = "user_id"
	LocUserRole         = "userRole"
	LocStudentProfileID = "student_profile_id"
	LocParentProfileID  = "parent_profile_id"
)

const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleAdmin   = "admin"
)

func roleOf(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}

func IsStudent(c *fiber.Ctx) bool { return roleOf(c) == RoleStudent }
func IsParent(c *fiber.Ctx) bool  { return roleOf(c) == RoleParent }
func IsAdmin(c *fiber.Ctx) bool   { return roleOf(c) == RoleAdmin }

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetStudentProfileID — profil siswa milik principal saat ini.
// 401 kalau bukan siswa / claim tidak ada (anti ambient state: selalu dari token request ini).
func GetStudentProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	if !IsStudent(c) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Endpoint khusus siswa")
	}
	id, ok := localUUID(c, LocStudentProfileID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Profil siswa tidak ditemukan pada token")
	}
	return id, nil
}

// GetParentProfileID — profil orang tua milik principal saat ini.
func GetParentProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	if !IsParent(c) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Endpoint khusus orang tua")
	}
	id, ok := localUUID(c, LocParentProfileID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Profil orang tua tidak ditemukan pada token")
	}
	return id, nil
}
