// file: internals/features/sessions/session_students/controller/session_homework_student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ssDTO "kelasku_backend/internals/features/sessions/session_students/dto"
	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
	helper "kelasku_backend/internals/helpers"
)

type SessionHomeworkStudentController struct {
	DB *gorm.DB
}

// ===================== CREATE =====================
// POST /api/u/session-homework-students
func (h *SessionHomeworkStudentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req ssDTO.CreateSessionStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSessionStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := sessionOwned(tx, userID, req.SessionID); err != nil {
			return err
		}
		if err := studentOwned(tx, userID, req.StudentID); err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&ssModel.SessionHomeworkStudentModel{}).
			Where("session_homework_student_session_id = ? AND session_homework_student_student_id = ?",
				req.SessionID, req.StudentID).
			Count(&dup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi")
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Student sudah terdaftar di session ini")
		}

		mm := ssModel.SessionHomeworkStudentModel{
			SessionHomeworkStudentUserID:      userID,
			SessionHomeworkStudentSessionID:   req.SessionID,
			SessionHomeworkStudentStudentID:   req.StudentID,
			SessionHomeworkStudentTableNumber: req.TableNumber,
		}
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan student ke session")
		}

		c.Locals("created_row", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_row").(ssModel.SessionHomeworkStudentModel)
	return helper.JsonCreated(c, "Student ditambahkan ke session", ssDTO.FromSessionHomeworkStudentModel(mm))
}

// ===================== LIST BY SESSION =====================
// GET /api/u/session-homework-students?session_id=
func (h *SessionHomeworkStudentController) ListBySession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(strings.TrimSpace(c.Query("session_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id wajib diisi dan valid")
	}
	if err := sessionOwned(h.DB, userID, sessionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []ssModel.SessionHomeworkStudentModel
	if err := h.DB.
		Where("session_homework_student_session_id = ?", sessionID).
		Order("session_homework_student_table_number ASC, session_homework_student_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.SessionHomeworkStudentStudentID)
	}
	names, err := studentNameMap(h.DB, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nama student")
	}

	return helper.JsonOK(c, "Daftar student session", ssDTO.FromSessionHomeworkStudentModels(rows, names))
}

// ===================== UPDATE =====================
// PUT /api/u/session-homework-students/:id
func (h *SessionHomeworkStudentController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req ssDTO.UpdateSessionStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSessionStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var mm ssModel.SessionHomeworkStudentModel
	if err := h.DB.
		Where("session_homework_student_id = ? AND session_homework_student_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.TableNumber != nil {
		mm.SessionHomeworkStudentTableNumber = *req.TableNumber
	}
	if err := h.DB.Model(&ssModel.SessionHomeworkStudentModel{}).
		Where("session_homework_student_id = ?", mm.SessionHomeworkStudentID).
		Update("session_homework_student_table_number", mm.SessionHomeworkStudentTableNumber).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}

	return helper.JsonUpdated(c, "Session student diperbarui", ssDTO.FromSessionHomeworkStudentModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/session-homework-students/:id (jawaban ikut terhapus)
func (h *SessionHomeworkStudentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm ssModel.SessionHomeworkStudentModel
		if err := tx.
			Where("session_homework_student_id = ? AND session_homework_student_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Session student tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if err := tx.Exec(
			"DELETE FROM session_homework_answers WHERE session_homework_answer_session_homework_student_id = ?",
			mm.SessionHomeworkStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jawaban")
		}
		if err := tx.Delete(&ssModel.SessionHomeworkStudentModel{},
			"session_homework_student_id = ?", mm.SessionHomeworkStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus session student")
		}

		c.Locals("deleted_row", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_row").(ssModel.SessionHomeworkStudentModel)
	return helper.JsonDeleted(c, "Student dikeluarkan dari session", ssDTO.FromSessionHomeworkStudentModel(mm))
}
