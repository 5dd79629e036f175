// file: internals/features/sessions/session_answers/controller/session_homework_answer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qModel "kelasku_backend/internals/features/questionnaires/model"
	saDTO "kelasku_backend/internals/features/sessions/session_answers/dto"
	saModel "kelasku_backend/internals/features/sessions/session_answers/model"
	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
	sessionModel "kelasku_backend/internals/features/sessions/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type SessionHomeworkAnswerController struct {
	DB *gorm.DB
}

// ===================== UPSERT =====================
// PUT /api/u/session-homework-answers
// Pasangan (session_homework_student, question) unik. Question harus
// milik questionnaire dari session yang bersangkutan.
func (h *SessionHomeworkAnswerController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req saDTO.UpsertHomeworkAnswerRequest
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
		var ss ssModel.SessionHomeworkStudentModel
		if err := tx.
			Where("session_homework_student_id = ? AND session_homework_student_user_id = ?",
				req.SessionHomeworkStudentID, userID).
			First(&ss).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Session student tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session student")
		}

		var sess sessionModel.SessionModel
		if err := tx.
			Where("session_id = ?", ss.SessionHomeworkStudentSessionID).
			First(&sess).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session")
		}
		if sess.SessionQuestionnaireID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Session tidak punya questionnaire")
		}

		var cnt int64
		if err := tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ? AND question_questionnaire_id = ?",
				req.QuestionID, *sess.SessionQuestionnaireID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pertanyaan")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan di questionnaire session")
		}

		mm := saModel.SessionHomeworkAnswerModel{
			SessionHomeworkAnswerUserID: userID,
			SessionHomeworkAnswerSessionHomeworkStudentID: req.SessionHomeworkStudentID,
			SessionHomeworkAnswerQuestionID:               req.QuestionID,
			SessionHomeworkAnswerState:                    req.AnswerState(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "session_homework_answer_session_homework_student_id"},
				{Name: "session_homework_answer_question_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"session_homework_answer_state":      mm.SessionHomeworkAnswerState,
				"session_homework_answer_updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
		}

		var saved saModel.SessionHomeworkAnswerModel
		if err := tx.
			Where("session_homework_answer_session_homework_student_id = ? AND session_homework_answer_question_id = ?",
				req.SessionHomeworkStudentID, req.QuestionID).
			First(&saved).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca jawaban")
		}

		c.Locals("saved_answer", saved)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("saved_answer").(saModel.SessionHomeworkAnswerModel)
	return helper.JsonOK(c, "Jawaban tersimpan", saDTO.FromSessionHomeworkAnswerModel(mm))
}

// ===================== LIST BY SESSION STUDENT =====================
// GET /api/u/session-homework-answers?session_homework_student_id=
func (h *SessionHomeworkAnswerController) ListBySessionStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ssID, err := uuid.Parse(strings.TrimSpace(c.Query("session_homework_student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_homework_student_id wajib diisi dan valid")
	}

	var cnt int64
	if err := h.DB.Model(&ssModel.SessionHomeworkStudentModel{}).
		Where("session_homework_student_id = ? AND session_homework_student_user_id = ?", ssID, userID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek session student")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session student tidak ditemukan")
	}

	var rows []saModel.SessionHomeworkAnswerModel
	if err := h.DB.
		Where("session_homework_answer_session_homework_student_id = ?", ssID).
		Order("session_homework_answer_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar jawaban", saDTO.FromSessionHomeworkAnswerModels(rows))
}

// ===================== DELETE =====================
// DELETE /api/u/session-homework-answers/:id
func (h *SessionHomeworkAnswerController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&saModel.SessionHomeworkAnswerModel{},
		"session_homework_answer_id = ? AND session_homework_answer_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jawaban")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jawaban dihapus", fiber.Map{"session_homework_answer_id": id})
}
