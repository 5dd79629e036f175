// file: internals/features/scoring/controller/showcase_controller.go
package controller

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "kelasku_backend/internals/features/classroom/students/model"
	scoringService "kelasku_backend/internals/features/scoring/service"
	"kelasku_backend/internals/features/scoring/score"
	helper "kelasku_backend/internals/helpers"
)

type ShowcaseController struct {
	DB *gorm.DB
}

type leaderboardRow struct {
	StudentID   uuid.UUID     `json:"student_id"`
	StudentName string        `json:"student_name"`
	Total       score.Summary `json:"total"`
}

// ===================== LEADERBOARD =====================
// GET /api/public/showcase/:user_id/leaderboard
// Endpoint anonim (dibatasi rate limiter) untuk layar leaderboard kelas.
// Hanya nama + skor total yang diekspos, tanpa data lain milik user.
func (h *ShowcaseController) Leaderboard(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var students []studentModel.StudentModel
	if err := h.DB.
		Where("student_user_id = ?", userID).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}
	summaries, err := scoringService.SummariesByStudent(h.DB, userID, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung skor")
	}

	rows := make([]leaderboardRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, leaderboardRow{
			StudentID:   s.StudentID,
			StudentName: s.StudentFullName,
			Total:       summaries[s.StudentID].Total,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total.Efficiency != rows[j].Total.Efficiency {
			return rows[i].Total.Efficiency > rows[j].Total.Efficiency
		}
		return rows[i].Total.Score > rows[j].Total.Score
	})

	return helper.JsonOK(c, "Leaderboard", rows)
}
