package seeds

import (
	"gorm.io/gorm"

	school "novaeclass_backend/internals/seeds/school"
	users "novaeclass_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data dasar. Semua seeder idempotent (baris yang sudah
// ada dilewati), aman dipanggil setiap boot dengan RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	school.SeedAssignmentsFromJSON(db, "internals/seeds/school/data_assignments.json")
	school.SeedGamesFromJSON(db, "internals/seeds/school/data_games.json")
}
