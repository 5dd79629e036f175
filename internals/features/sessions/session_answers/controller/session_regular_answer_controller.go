// file: internals/features/sessions/session_answers/controller/session_regular_answer_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	saDTO "kelasku_backend/internals/features/sessions/session_answers/dto"
	saModel "kelasku_backend/internals/features/sessions/session_answers/model"
	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
	helper "kelasku_backend/internals/helpers"
)

type SessionRegularAnswerController struct {
	DB *gorm.DB
}

var validateSessionAnswer = validator.New()

// ===================== UPSERT =====================
// PUT /api/u/session-regular-answers
// Pasangan (session_regular_student, question_number) unik: tap berulang
// pada nomor yang sama menimpa state sebelumnya, bukan menambah baris.
func (h *SessionRegularAnswerController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req saDTO.UpsertRegularAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSessionAnswer.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}
	if !req.AnswerState().Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "State jawaban tidak dikenal")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&ssModel.SessionRegularStudentModel{}).
			Where("session_regular_student_id = ? AND session_regular_student_user_id = ?",
				req.SessionRegularStudentID, userID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session student")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Session student tidak ditemukan")
		}

		mm := saModel.SessionRegularAnswerModel{
			SessionRegularAnswerUserID:                  userID,
			SessionRegularAnswerSessionRegularStudentID: req.SessionRegularStudentID,
			SessionRegularAnswerQuestionNumber:          req.QuestionNumber,
			SessionRegularAnswerState:                   req.AnswerState(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "session_regular_answer_session_regular_student_id"},
				{Name: "session_regular_answer_question_number"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"session_regular_answer_state":      mm.SessionRegularAnswerState,
				"session_regular_answer_updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
		}

		// baca ulang supaya response memuat baris final (id lama saat update)
		var saved saModel.SessionRegularAnswerModel
		if err := tx.
			Where("session_regular_answer_session_regular_student_id = ? AND session_regular_answer_question_number = ?",
				req.SessionRegularStudentID, req.QuestionNumber).
			First(&saved).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca jawaban")
		}

		c.Locals("saved_answer", saved)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("saved_answer").(saModel.SessionRegularAnswerModel)
	return helper.JsonOK(c, "Jawaban tersimpan", saDTO.FromSessionRegularAnswerModel(mm))
}

// ===================== LIST BY SESSION STUDENT =====================
// GET /api/u/session-regular-answers?session_regular_student_id=
func (h *SessionRegularAnswerController) ListBySessionStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ssID, err := uuid.Parse(strings.TrimSpace(c.Query("session_regular_student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_regular_student_id wajib diisi dan valid")
	}

	var cnt int64
	if err := h.DB.Model(&ssModel.SessionRegularStudentModel{}).
		Where("session_regular_student_id = ? AND session_regular_student_user_id = ?", ssID, userID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek session student")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session student tidak ditemukan")
	}

	var rows []saModel.SessionRegularAnswerModel
	if err := h.DB.
		Where("session_regular_answer_session_regular_student_id = ?", ssID).
		Order("session_regular_answer_question_number ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar jawaban", saDTO.FromSessionRegularAnswerModels(rows))
}

// ===================== DELETE =====================
// DELETE /api/u/session-regular-answers/:id (membatalkan jawaban yang salah input)
func (h *SessionRegularAnswerController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&saModel.SessionRegularAnswerModel{},
		"session_regular_answer_id = ? AND session_regular_answer_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jawaban")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jawaban dihapus", fiber.Map{"session_regular_answer_id": id})
}
