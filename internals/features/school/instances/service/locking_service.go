// file: internals/features/school/instances/service/locking_service.go
package service

import (
	imodel "novaeclass_backend/internals/features/school/instances/model"
)

/* ==========================================================================================
   PROGRESSIVE LOCKING (mode alternatif, lihat ASSIGNMENT_ACCESS_POLICY)
   Assignment diurutkan by due date; assignment berikutnya terkunci selama skor
   assignment sebelumnya di bawah ambang lulus. Assignment pertama selalu
   terbuka. Instance yang sudah completed tidak pernah dikunci (hasilnya tetap
   bisa dilihat).
========================================================================================== */

// ComputeLocks menerima instance yang SUDAH terurut (due date naik) dan
// mengembalikan flag locked per-instance, posisi-ke-posisi.
func ComputeLocks(instances []imodel.AssignmentInstanceModel) []bool {
	locks := make([]bool, len(instances))
	prevScore := 100.0 // assignment pertama selalu terbuka

	for i := range instances {
		inst := &instances[i]
		locks[i] = prevScore < imodel.PassingScore && !inst.AssignmentInstanceCompleted

		if inst.AssignmentInstanceCompleted && inst.AssignmentInstanceScore != nil {
			prevScore = *inst.AssignmentInstanceScore
		}
	}
	return locks
}
