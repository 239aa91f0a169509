// file: internals/features/school/instances/service/instantiation_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	imodel "novaeclass_backend/internals/features/school/instances/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
)

/* ==========================================================================================
   INSTANTIATION
   Siswa tidak mengerjakan Assignment langsung, tapi AssignmentInstance miliknya.
   EnsureInstances dipanggil setiap kali daftar assignment siswa diminta (dan saat
   grade siswa berubah) supaya instance selalu ada untuk semua assignment yang
   berhak diakses. Idempotent: pasangan (assignment, student) unik di DB.
========================================================================================== */

// EntitledAssignmentsQuery membangun query assignment yang boleh diakses siswa:
// grade cocok (atau assignment tanpa grade), dan untuk akun demo hanya
// assignment demo.
func EntitledAssignmentsQuery(db *gorm.DB, grade *studentModel.Grade, isPaid bool) *gorm.DB {
	q := db.Model(&assignmentModel.AssignmentModel{})
	if grade != nil {
		q = q.Where("assignment_grade_level IS NULL OR assignment_grade_level = ?", *grade)
	} else {
		q = q.Where("assignment_grade_level IS NULL")
	}
	if !isPaid {
		q = q.Where("assignment_is_demo = ?", true)
	}
	return q
}

// EnsureInstances membuat instance yang belum ada untuk semua assignment
// yang berhak diakses siswa. Instance yang sudah ada tidak disentuh.
func EnsureInstances(db *gorm.DB, studentID uuid.UUID, grade *studentModel.Grade, isPaid bool) error {
	var assignments []assignmentModel.AssignmentModel
	if err := EntitledAssignmentsQuery(db, grade, isPaid).
		Select("assignment_id").
		Find(&assignments).Error; err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	rows := make([]imodel.AssignmentInstanceModel, 0, len(assignments))
	for i := range assignments {
		rows = append(rows, imodel.AssignmentInstanceModel{
			AssignmentInstanceAssignmentID: assignments[i].AssignmentID,
			AssignmentInstanceStudentID:    studentID,
		})
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "assignment_instance_assignment_id"},
			{Name: "assignment_instance_student_id"},
		},
		DoNothing: true,
	}).CreateInBatches(rows, 200).Error
}

// FindInstanceForStudent mengambil instance milik siswa beserta assignment-nya.
// Instance milik siswa lain diperlakukan sebagai tidak ditemukan.
func FindInstanceForStudent(db *gorm.DB, instanceID, studentID uuid.UUID) (*imodel.AssignmentInstanceModel, error) {
	var m imodel.AssignmentInstanceModel
	err := db.Preload("Assignment").
		Where("assignment_instance_id = ? AND assignment_instance_student_id = ?", instanceID, studentID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListInstancesForStudent mengambil semua instance siswa urut due date assignment.
func ListInstancesForStudent(db *gorm.DB, studentID uuid.UUID) ([]imodel.AssignmentInstanceModel, error) {
	var rows []imodel.AssignmentInstanceModel
	err := db.Preload("Assignment").
		Joins("JOIN assignments ON assignments.assignment_id = assignment_instances.assignment_instance_assignment_id").
		Where("assignment_instance_student_id = ?", studentID).
		Where("assignments.assignment_deleted_at IS NULL").
		Order("assignments.assignment_due_date ASC, assignments.assignment_created_at ASC").
		Find(&rows).Error
	return rows, err
}
