// file: internals/features/sessions/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	layoutModel "kelasku_backend/internals/features/classroom/table_layouts/model"
	qModel "kelasku_backend/internals/features/questionnaires/model"
	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
	sessionDTO "kelasku_backend/internals/features/sessions/sessions/dto"
	sessionModel "kelasku_backend/internals/features/sessions/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

var validateSession = validator.New()

/* =========================================================
   Helpers: FK ownership check (404 kalau bukan milik user)
   ========================================================= */

func (h *SessionController) layoutOwned(tx *gorm.DB, userID, layoutID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&layoutModel.TableLayoutModel{}).
		Where("table_layout_id = ? AND table_layout_user_id = ?", layoutID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek table layout")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Table layout tidak ditemukan")
	}
	return nil
}

func (h *SessionController) questionnaireOwned(tx *gorm.DB, userID, qnID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&qModel.QuestionnaireModel{}).
		Where("questionnaire_id = ? AND questionnaire_user_id = ?", qnID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek questionnaire")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Questionnaire tidak ditemukan")
	}
	return nil
}

// ===================== CREATE =====================
// POST /api/u/sessions
func (h *SessionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req sessionDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateSession.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	// Homework wajib punya questionnaire
	if sessionModel.SessionState(req.SessionState) == sessionModel.SessionStateHomework &&
		req.SessionQuestionnaireID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Sesi homework harus punya questionnaire")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.layoutOwned(tx, userID, req.SessionTableLayoutID); err != nil {
			return err
		}
		if req.SessionQuestionnaireID != nil {
			if err := h.questionnaireOwned(tx, userID, *req.SessionQuestionnaireID); err != nil {
				return err
			}
		}

		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat session")
		}

		c.Locals("created_session", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_session").(sessionModel.SessionModel)
	return helper.JsonCreated(c, "Session berhasil dibuat", sessionDTO.FromSessionModel(mm))
}

// ===================== GET BY ID =====================
// GET /api/u/sessions/:id
func (h *SessionController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm sessionModel.SessionModel
	if err := h.DB.
		Where("session_id = ? AND session_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail session ditemukan", sessionDTO.FromSessionModel(mm))
}

// ===================== LIST =====================
// GET /api/u/sessions?state=&page=&per_page=
func (h *SessionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&sessionModel.SessionModel{}).
		Where("session_user_id = ?", userID)

	if st := strings.TrimSpace(c.Query("state")); st != "" {
		switch st {
		case "1", "homework":
			tx = tx.Where("session_state = ?", sessionModel.SessionStateHomework)
		case "2", "regular":
			tx = tx.Where("session_state = ?", sessionModel.SessionStateRegular)
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "state tidak valid")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []sessionModel.SessionModel
	if err := tx.
		Order("session_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar session",
		sessionDTO.FromSessionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/sessions/:id (FK yang berubah divalidasi ulang)
func (h *SessionController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sessionDTO.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateSession.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm sessionModel.SessionModel
		if err := tx.
			Where("session_id = ? AND session_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Session tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if req.SessionName != nil && *req.SessionName != "" {
			mm.SessionName = *req.SessionName
		}
		if req.SessionTableLayoutID != nil {
			if err := h.layoutOwned(tx, userID, *req.SessionTableLayoutID); err != nil {
				return err
			}
			mm.SessionTableLayoutID = *req.SessionTableLayoutID
		}
		if req.SessionQuestionnaireClear {
			mm.SessionQuestionnaireID = nil
			mm.SessionCurrentQuestionID = nil
		} else if req.SessionQuestionnaireID != nil {
			if err := h.questionnaireOwned(tx, userID, *req.SessionQuestionnaireID); err != nil {
				return err
			}
			mm.SessionQuestionnaireID = req.SessionQuestionnaireID
		}
		if req.SessionCommentary != nil {
			mm.SessionCommentary = req.SessionCommentary
		}
		if req.SessionState != nil {
			mm.SessionState = sessionModel.SessionState(*req.SessionState)
		}
		if mm.SessionState == sessionModel.SessionStateHomework && mm.SessionQuestionnaireID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sesi homework harus punya questionnaire")
		}

		if err := tx.Model(&sessionModel.SessionModel{}).
			Where("session_id = ?", mm.SessionID).
			Updates(map[string]interface{}{
				"session_name":                mm.SessionName,
				"session_table_layout_id":     mm.SessionTableLayoutID,
				"session_questionnaire_id":    mm.SessionQuestionnaireID,
				"session_current_question_id": mm.SessionCurrentQuestionID,
				"session_commentary":          mm.SessionCommentary,
				"session_state":               mm.SessionState,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui session")
		}

		c.Locals("updated_session", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("updated_session").(sessionModel.SessionModel)
	return helper.JsonUpdated(c, "Session berhasil diperbarui", sessionDTO.FromSessionModel(mm))
}

// ===================== POINTER =====================
// PATCH /api/u/sessions/:id/pointer
// Update pointer live-run saja. Kirim null untuk mengosongkan.
func (h *SessionController) UpdatePointer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sessionDTO.UpdateSessionPointerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm sessionModel.SessionModel
		if err := tx.
			Where("session_id = ? AND session_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Session tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		// pointer pertanyaan harus milik questionnaire sesi
		if req.SessionCurrentQuestionID != nil {
			if mm.SessionQuestionnaireID == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Session tidak punya questionnaire")
			}
			var cnt int64
			if err := tx.Model(&qModel.QuestionModel{}).
				Where("question_id = ? AND question_questionnaire_id = ?",
					*req.SessionCurrentQuestionID, *mm.SessionQuestionnaireID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pertanyaan")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan di questionnaire session")
			}
		}

		// pointer student harus assignment di session ini (regular atau homework)
		if req.SessionCurrentSessionStudentID != nil {
			var cnt int64
			if err := tx.Model(&ssModel.SessionRegularStudentModel{}).
				Where("session_regular_student_id = ? AND session_regular_student_session_id = ?",
					*req.SessionCurrentSessionStudentID, mm.SessionID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session student")
			}
			if cnt == 0 {
				if err := tx.Model(&ssModel.SessionHomeworkStudentModel{}).
					Where("session_homework_student_id = ? AND session_homework_student_session_id = ?",
						*req.SessionCurrentSessionStudentID, mm.SessionID).
					Count(&cnt).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session student")
				}
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Session student tidak ditemukan di session ini")
			}
		}

		mm.SessionCurrentQuestionID = req.SessionCurrentQuestionID
		mm.SessionCurrentSessionStudentID = req.SessionCurrentSessionStudentID

		if err := tx.Model(&sessionModel.SessionModel{}).
			Where("session_id = ?", mm.SessionID).
			Updates(map[string]interface{}{
				"session_current_question_id":        mm.SessionCurrentQuestionID,
				"session_current_session_student_id": mm.SessionCurrentSessionStudentID,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pointer")
		}

		c.Locals("updated_session", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("updated_session").(sessionModel.SessionModel)
	return helper.JsonUpdated(c, "Pointer session diperbarui", sessionDTO.FromSessionModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/sessions/:id (soft delete — hasil jawaban tetap utuh untuk laporan)
func (h *SessionController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm sessionModel.SessionModel
	if err := h.DB.
		Where("session_id = ? AND session_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := h.DB.Delete(&sessionModel.SessionModel{}, "session_id = ?", mm.SessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus session")
	}

	return helper.JsonDeleted(c, "Session berhasil dihapus", sessionDTO.FromSessionModel(mm))
}
