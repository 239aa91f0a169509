package school

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	gameModel "novaeclass_backend/internals/features/school/games/model"
)

type GameSeed struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	MinGrade    int      `json:"min_grade"`
	MaxGrade    int      `json:"max_grade"`
	Subjects    []string `json:"subjects"`
	IsDemo      bool     `json:"is_demo"`
}

// SeedGamesFromJSON membuat daftar game edukasi contoh.
func SeedGamesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file game:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []GameSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing gameModel.GameModel
		if err := db.Where("game_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Game '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		g := gameModel.GameModel{
			GameTitle:       data.Title,
			GameDescription: data.Description,
			GameURL:         data.URL,
			GameMinGrade:    data.MinGrade,
			GameMaxGrade:    data.MaxGrade,
			GameSubjects:    pq.StringArray(data.Subjects),
			GameIsDemo:      data.IsDemo,
		}
		if err := db.Create(&g).Error; err != nil {
			log.Printf("❌ Gagal membuat game '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Game '%s' dibuat.", data.Title)
	}
}
