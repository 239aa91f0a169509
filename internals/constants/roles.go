package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyStudentsCanAccess = "❌ Hanya siswa yang boleh mengakses fitur %s."
	ErrOnlyParentsCanAccess  = "❌ Hanya orang tua yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
