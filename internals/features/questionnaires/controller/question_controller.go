// file: internals/features/questionnaires/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qDTO "kelasku_backend/internals/features/questionnaires/dto"
	qModel "kelasku_backend/internals/features/questionnaires/model"
	helper "kelasku_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

var validateQuestion = validator.New()

// ===================== CREATE =====================
// POST /api/u/questions
func (h *QuestionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req qDTO.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateQuestion.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	// questionnaire harus ada dan milik user (404 kalau punya user lain)
	var owner qModel.QuestionnaireModel
	if err := h.DB.
		Where("questionnaire_id = ? AND questionnaire_user_id = ?", req.QuestionQuestionnaireID, userID).
		First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek questionnaire")
	}

	mm := req.ToModel(userID)
	if err := h.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pertanyaan")
	}

	return helper.JsonCreated(c, "Pertanyaan berhasil dibuat", qDTO.FromQuestionModel(mm))
}

// ===================== LIST =====================
// GET /api/u/questions?questionnaire_id=&page=&per_page=
func (h *QuestionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 500)

	tx := h.DB.Model(&qModel.QuestionModel{}).
		Where("question_user_id = ?", userID)

	if qid := strings.TrimSpace(c.Query("questionnaire_id")); qid != "" {
		id, err := uuid.Parse(qid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "questionnaire_id tidak valid")
		}
		tx = tx.Where("question_questionnaire_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []qModel.QuestionModel
	if err := tx.
		Order("question_order ASC, question_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar pertanyaan",
		qDTO.FromQuestionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== GET BY ID =====================
// GET /api/u/questions/:id
func (h *QuestionController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm qModel.QuestionModel
	if err := h.DB.
		Where("question_id = ? AND question_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail pertanyaan ditemukan", qDTO.FromQuestionModel(mm))
}

// ===================== UPDATE =====================
// PUT /api/u/questions/:id
func (h *QuestionController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req qDTO.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateQuestion.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var mm qModel.QuestionModel
	if err := h.DB.
		Where("question_id = ? AND question_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.QuestionName != nil && *req.QuestionName != "" {
		mm.QuestionName = *req.QuestionName
	}
	if req.QuestionAnswer != nil {
		mm.QuestionAnswer = *req.QuestionAnswer
	}
	if req.QuestionOrder != nil {
		mm.QuestionOrder = *req.QuestionOrder
	}

	if err := h.DB.Model(&qModel.QuestionModel{}).
		Where("question_id = ?", mm.QuestionID).
		Updates(map[string]interface{}{
			"question_name":   mm.QuestionName,
			"question_answer": mm.QuestionAnswer,
			"question_order":  mm.QuestionOrder,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pertanyaan")
	}

	return helper.JsonUpdated(c, "Pertanyaan berhasil diperbarui", qDTO.FromQuestionModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/questions/:id (soft delete)
func (h *QuestionController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm qModel.QuestionModel
	if err := h.DB.
		Where("question_id = ? AND question_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := h.DB.Delete(&qModel.QuestionModel{}, "question_id = ?", mm.QuestionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
	}

	return helper.JsonDeleted(c, "Pertanyaan berhasil dihapus", qDTO.FromQuestionModel(mm))
}
