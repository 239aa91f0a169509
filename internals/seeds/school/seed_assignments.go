package school

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	studentModel "novaeclass_backend/internals/features/users/students/model"
)

type QuestionSeed struct {
	Text          string  `json:"text"`
	Type          string  `json:"type"`
	OptionA       *string `json:"option_a"`
	OptionB       *string `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	CorrectOption *string `json:"correct_option"`
	CorrectAnswer *string `json:"correct_answer"`
}

type AssignmentSeed struct {
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	DueDate     string         `json:"due_date"`
	GradeLevel  *string        `json:"grade_level"`
	IsDemo      bool           `json:"is_demo"`
	IsSample    bool           `json:"is_sample"`
	Questions   []QuestionSeed `json:"questions"`
}

// SeedAssignmentsFromJSON membuat assignment contoh beserta soalnya.
// Assignment dengan judul yang sudah ada dilewati.
func SeedAssignmentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file assignment:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []AssignmentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing assignmentModel.AssignmentModel
		if err := db.Where("assignment_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Assignment '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		due, err := time.Parse(time.DateOnly, data.DueDate)
		if err != nil {
			log.Printf("❌ Due date '%s' tidak valid untuk '%s', dilewati.", data.DueDate, data.Title)
			continue
		}

		a := assignmentModel.AssignmentModel{
			AssignmentTitle:       data.Title,
			AssignmentDescription: data.Description,
			AssignmentDueDate:     due,
			AssignmentIsDemo:      data.IsDemo,
			AssignmentIsSample:    data.IsSample,
		}
		if data.GradeLevel != nil {
			g := studentModel.Grade(*data.GradeLevel)
			if !g.Valid() {
				log.Printf("❌ Grade '%s' tidak dikenal untuk '%s', dilewati.", *data.GradeLevel, data.Title)
				continue
			}
			a.AssignmentGradeLevel = &g
		}

		if err := db.Create(&a).Error; err != nil {
			log.Printf("❌ Gagal membuat assignment '%s': %v", data.Title, err)
			continue
		}

		for _, qs := range data.Questions {
			q := assignmentModel.QuestionModel{
				QuestionAssignmentID:  a.AssignmentID,
				QuestionText:          qs.Text,
				QuestionType:          assignmentModel.QuestionType(qs.Type),
				QuestionOptionA:       qs.OptionA,
				QuestionOptionB:       qs.OptionB,
				QuestionOptionC:       qs.OptionC,
				QuestionOptionD:       qs.OptionD,
				QuestionCorrectOption: qs.CorrectOption,
				QuestionCorrectAnswer: qs.CorrectAnswer,
			}
			if err := q.ValidateShape(); err != nil {
				log.Printf("❌ Soal '%s' tidak valid: %v", qs.Text, err)
				continue
			}
			if err := db.Create(&q).Error; err != nil {
				log.Printf("❌ Gagal membuat soal untuk '%s': %v", data.Title, err)
			}
		}
		log.Printf("✅ Assignment '%s' dibuat (%d soal).", data.Title, len(data.Questions))
	}
}
