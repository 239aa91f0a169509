// file: internals/features/school/games/controller/game_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	billingService "novaeclass_backend/internals/features/billing/subscriptions/service"
	gmodel "novaeclass_backend/internals/features/school/games/model"
	studentService "novaeclass_backend/internals/features/users/students/service"
	helper "novaeclass_backend/internals/helpers"
	helperAuth "novaeclass_backend/internals/helpers/auth"
)

type GameController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewGameController(db *gorm.DB) *GameController {
	return &GameController{DB: db}
}

type CreateGameRequest struct {
	GameTitle       string   `json:"game_title" validate:"required,min=3,max=100"`
	GameDescription string   `json:"game_description" validate:"required"`
	GameURL         string   `json:"game_url" validate:"required,url,max=500"`
	GameMinGrade    int      `json:"game_min_grade" validate:"gte=0,lte=12"`
	GameMaxGrade    int      `json:"game_max_grade" validate:"gte=0,lte=12,gtefield=GameMinGrade"`
	GameSubjects    []string `json:"game_subjects" validate:"omitempty,dive,min=2,max=50"`
	GameIsDemo      bool     `json:"game_is_demo"`
}

// POST /api/a/games
func (ctl *GameController) Create(c *fiber.Ctx) error {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}

	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m := gmodel.GameModel{
		GameTitle:       req.GameTitle,
		GameDescription: req.GameDescription,
		GameURL:         req.GameURL,
		GameMinGrade:    req.GameMinGrade,
		GameMaxGrade:    req.GameMaxGrade,
		GameSubjects:    pq.StringArray(req.GameSubjects),
		GameIsDemo:      req.GameIsDemo,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat game")
	}
	return helper.JsonCreated(c, "Game dibuat", m)
}

// GET /api/a/games
func (ctl *GameController) ListAll(c *fiber.Ctx) error {
	var rows []gmodel.GameModel
	if err := ctl.DB.Order("game_min_grade ASC, game_title ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil game")
	}
	return helper.JsonOK(c, "ok", rows)
}

// DELETE /api/a/games/:id
func (ctl *GameController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	if err := ctl.DB.Delete(&gmodel.GameModel{}, "game_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus game")
	}
	return helper.JsonDeleted(c, "Game dihapus", fiber.Map{"game_id": id})
}

// GET /api/s/games?subject=
// Game yang rentang jenjangnya mencakup jenjang siswa. Akun demo hanya
// melihat game demo. Filter subject opsional (match elemen array).
func (ctl *GameController) ListForStudent(c *fiber.Ctx) error {
	profileID, err := helperAuth.GetStudentProfileID(c)
	if err != nil {
		return err
	}
	profile, err := studentService.FindProfileByID(ctl.DB, profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil siswa tidak ditemukan")
	}

	gradeNumber := 0
	if profile.HasGrade() {
		gradeNumber = profile.StudentProfileGrade.Number()
		if gradeNumber < 0 {
			gradeNumber = 0
		}
	}

	isPaid, err := billingService.IsPaidForStudent(ctl.DB, profileID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa status langganan")
	}

	q := ctl.DB.Model(&gmodel.GameModel{}).
		Where("game_min_grade <= ? AND game_max_grade >= ?", gradeNumber, gradeNumber)
	if !isPaid {
		q = q.Where("game_is_demo = ?", true)
	}
	if subject := c.Query("subject"); subject != "" {
		q = q.Where("? = ANY(game_subjects)", subject)
	}

	var rows []gmodel.GameModel
	if err := q.Order("game_title ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil game")
	}
	return helper.JsonOK(c, "ok", rows)
}
