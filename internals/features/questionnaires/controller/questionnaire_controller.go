// file: internals/features/questionnaires/controller/questionnaire_controller.go
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

type QuestionnaireController struct {
	DB *gorm.DB
}

var validateQuestionnaire = validator.New()

// ===================== CREATE =====================
// POST /api/u/questionnaires
// Questionnaire + pertanyaan inline disimpan dalam SATU transaksi.
func (h *QuestionnaireController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req qDTO.CreateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateQuestionnaire.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var questions []qModel.QuestionModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat questionnaire")
		}

		for i, inline := range req.Questions {
			q := qModel.QuestionModel{
				QuestionUserID:          userID,
				QuestionQuestionnaireID: mm.QuestionnaireID,
				QuestionName:            inline.QuestionName,
				QuestionAnswer:          inline.QuestionAnswer,
				QuestionOrder:           i,
			}
			if err := tx.Create(&q).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pertanyaan")
			}
			questions = append(questions, q)
		}

		c.Locals("created_questionnaire", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_questionnaire").(qModel.QuestionnaireModel)
	return helper.JsonCreated(c, "Questionnaire berhasil dibuat",
		qDTO.FromQuestionnaireModel(mm, questions))
}

// ===================== GET BY ID =====================
// GET /api/u/questionnaires/:id (termasuk pertanyaan, urut question_order)
func (h *QuestionnaireController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm qModel.QuestionnaireModel
	if err := h.DB.
		Where("questionnaire_id = ? AND questionnaire_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var questions []qModel.QuestionModel
	if err := h.DB.
		Where("question_questionnaire_id = ?", mm.QuestionnaireID).
		Order("question_order ASC, question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	return helper.JsonOK(c, "Detail questionnaire ditemukan",
		qDTO.FromQuestionnaireModel(mm, questions))
}

// ===================== LIST =====================
// GET /api/u/questionnaires?q=&page=&per_page=
func (h *QuestionnaireController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&qModel.QuestionnaireModel{}).
		Where("questionnaire_user_id = ?", userID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(questionnaire_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []qModel.QuestionnaireModel
	if err := tx.
		Order("questionnaire_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar questionnaire",
		qDTO.FromQuestionnaireModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/questionnaires/:id
func (h *QuestionnaireController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req qDTO.UpdateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateQuestionnaire.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var mm qModel.QuestionnaireModel
	if err := h.DB.
		Where("questionnaire_id = ? AND questionnaire_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.QuestionnaireName != nil && *req.QuestionnaireName != "" {
		mm.QuestionnaireName = *req.QuestionnaireName
	}

	if err := h.DB.Model(&qModel.QuestionnaireModel{}).
		Where("questionnaire_id = ?", mm.QuestionnaireID).
		Updates(map[string]interface{}{
			"questionnaire_name": mm.QuestionnaireName,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui questionnaire")
	}

	return helper.JsonUpdated(c, "Questionnaire berhasil diperbarui",
		qDTO.FromQuestionnaireModel(mm, nil))
}

// ===================== DELETE =====================
// DELETE /api/u/questionnaires/:id
// Soft delete; pertanyaan ikut di-soft-delete pada transaksi yang sama.
func (h *QuestionnaireController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm qModel.QuestionnaireModel
		if err := tx.
			Where("questionnaire_id = ? AND questionnaire_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Questionnaire tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if err := tx.Delete(&qModel.QuestionModel{},
			"question_questionnaire_id = ?", mm.QuestionnaireID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
		}
		if err := tx.Delete(&qModel.QuestionnaireModel{},
			"questionnaire_id = ?", mm.QuestionnaireID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus questionnaire")
		}

		c.Locals("deleted_questionnaire", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_questionnaire").(qModel.QuestionnaireModel)
	return helper.JsonDeleted(c, "Questionnaire berhasil dihapus",
		qDTO.FromQuestionnaireModel(mm, nil))
}
