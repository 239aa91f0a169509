// file: internals/features/school/games/model/game_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GameModel = game edukasi eksternal, difilter rentang jenjang numerik
// (K=0 .. 12th=12).
type GameModel struct {
	GameID uuid.UUID `json:"game_id" gorm:"column:game_id;type:uuid;default:gen_random_uuid();primaryKey"`

	GameTitle       string `json:"game_title" gorm:"column:game_title;size:100;not null"`
	GameDescription string `json:"game_description" gorm:"column:game_description;type:text;not null"`
	GameURL         string `json:"game_url" gorm:"column:game_url;size:500;not null"`

	GameMinGrade int `json:"game_min_grade" gorm:"column:game_min_grade;not null"`
	GameMaxGrade int `json:"game_max_grade" gorm:"column:game_max_grade;not null"`

	GameSubjects pq.StringArray `json:"game_subjects" gorm:"column:game_subjects;type:text[]"`
	GameIsDemo   bool           `json:"game_is_demo" gorm:"column:game_is_demo;not null;default:false"`

	GameCreatedAt time.Time      `json:"game_created_at" gorm:"column:game_created_at;autoCreateTime"`
	GameUpdatedAt time.Time      `json:"game_updated_at" gorm:"column:game_updated_at;autoUpdateTime"`
	GameDeletedAt gorm.DeletedAt `json:"game_deleted_at,omitempty" gorm:"column:game_deleted_at;index"`
}

func (GameModel) TableName() string { return "games" }

// InGradeRange: true kalau nomor jenjang masuk rentang game.
func (m *GameModel) InGradeRange(gradeNumber int) bool {
	return gradeNumber >= m.GameMinGrade && gradeNumber <= m.GameMaxGrade
}
