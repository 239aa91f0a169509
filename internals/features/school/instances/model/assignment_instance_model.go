// file: internals/features/school/instances/model/assignment_instance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
)

// Ambang skor minimal untuk lulus; di bawah ini siswa boleh mengulang.
const PassingScore = 100.0 * 3 / 4 // 75

// AssignmentInstanceModel = pengerjaan satu assignment oleh satu siswa.
// Satu baris per pasangan (assignment, student).
type AssignmentInstanceModel struct {
	AssignmentInstanceID uuid.UUID `json:"assignment_instance_id" gorm:"column:assignment_instance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AssignmentInstanceAssignmentID uuid.UUID `json:"assignment_instance_assignment_id" gorm:"column:assignment_instance_assignment_id;type:uuid;not null;uniqueIndex:uq_assignment_instance_pair,priority:1"`
	AssignmentInstanceStudentID    uuid.UUID `json:"assignment_instance_student_id" gorm:"column:assignment_instance_student_id;type:uuid;not null;uniqueIndex:uq_assignment_instance_pair,priority:2;index:idx_assignment_instance_student"`

	AssignmentInstanceCompleted bool     `json:"assignment_instance_completed" gorm:"column:assignment_instance_completed;not null;default:false"`
	AssignmentInstanceScore     *float64 `json:"assignment_instance_score" gorm:"column:assignment_instance_score;type:numeric(5,2)"`
	AssignmentInstanceFeedback  *string  `json:"assignment_instance_feedback" gorm:"column:assignment_instance_feedback;type:text"`
	AssignmentInstanceAttempts  int      `json:"assignment_instance_attempts" gorm:"column:assignment_instance_attempts;not null;default:0"`

	AssignmentInstanceCreatedAt time.Time `json:"assignment_instance_created_at" gorm:"column:assignment_instance_created_at;autoCreateTime"`
	AssignmentInstanceUpdatedAt time.Time `json:"assignment_instance_updated_at" gorm:"column:assignment_instance_updated_at;autoUpdateTime"`

	Assignment *assignmentModel.AssignmentModel `json:"assignment,omitempty" gorm:"foreignKey:AssignmentInstanceAssignmentID;references:AssignmentID"`
}

func (AssignmentInstanceModel) TableName() string { return "assignment_instances" }

// RetakeAllowed: hanya boleh mengulang kalau sudah pernah dinilai dan skornya
// di bawah ambang lulus.
func (m *AssignmentInstanceModel) RetakeAllowed() bool {
	return m.AssignmentInstanceScore != nil && *m.AssignmentInstanceScore < PassingScore
}

// StartRetake mereset progres pengerjaan untuk percobaan berikutnya.
// Jawaban lama tetap tersimpan dan akan ditimpa saat submit berikutnya.
func (m *AssignmentInstanceModel) StartRetake() {
	m.AssignmentInstanceCompleted = false
	m.AssignmentInstanceScore = nil
	m.AssignmentInstanceFeedback = nil
	m.AssignmentInstanceAttempts++
}
