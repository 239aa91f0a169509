// file: internals/databases/migrate.go
package database

import (
	"log"

	billingModel "novaeclass_backend/internals/features/billing/subscriptions/model"
	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	gameModel "novaeclass_backend/internals/features/school/games/model"
	instanceModel "novaeclass_backend/internals/features/school/instances/model"
	materialModel "novaeclass_backend/internals/features/school/materials/model"
	studyPlanModel "novaeclass_backend/internals/features/school/study_plans/model"
	authModel "novaeclass_backend/internals/features/users/auth/model"
	parentModel "novaeclass_backend/internals/features/users/parents/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
	userModel "novaeclass_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema semua model.
// Urutan penting: tabel yang direferensikan dibuat lebih dulu.
func AutoMigrate() {
	if DB == nil {
		log.Fatal("❌ AutoMigrate dipanggil sebelum ConnectDB")
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&studentModel.StudentProfileModel{},
		&studentModel.StudentDailyTimeModel{},
		&parentModel.ParentProfileModel{},
		&billingModel.BillingProfileModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.QuestionModel{},
		&instanceModel.AssignmentInstanceModel{},
		&instanceModel.StudentAnswerModel{},
		&materialModel.MaterialModel{},
		&gameModel.GameModel{},
		&studyPlanModel.StudyPlanModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
