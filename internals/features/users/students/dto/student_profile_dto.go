// file: internals/features/users/students/dto/student_profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"novaeclass_backend/internals/features/users/students/model"
)

/* ==========================================================================================
   REQUEST
========================================================================================== */

type UpdateStudentGradeRequest struct {
	StudentProfileGrade string `json:"student_profile_grade" validate:"required,oneof=K 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
}

// HeartbeatRequest dikirim periodik oleh frontend selama siswa aktif.
type HeartbeatRequest struct {
	ElapsedSeconds int `json:"elapsed_seconds" validate:"gte=0"`
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type StudentProfileResponse struct {
	StudentProfileID    uuid.UUID `json:"student_profile_id"`
	StudentProfileGrade *string   `json:"student_profile_grade,omitempty"`
	ActiveSecondsToday  int       `json:"active_seconds_today"`
	LastActiveDate      string    `json:"last_active_date"`
	HasAvatar           bool      `json:"has_avatar"`
}

func FromStudentProfileModel(m *model.StudentProfileModel, activeSecondsToday int) StudentProfileResponse {
	var grade *string
	if m.StudentProfileGrade != nil {
		g := m.StudentProfileGrade.String()
		grade = &g
	}
	return StudentProfileResponse{
		StudentProfileID:    m.StudentProfileID,
		StudentProfileGrade: grade,
		ActiveSecondsToday:  activeSecondsToday,
		LastActiveDate:      m.StudentProfileLastActiveDate.Format(time.DateOnly),
		HasAvatar:           len(m.StudentProfileAvatar) > 0,
	}
}
