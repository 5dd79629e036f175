// file: internals/features/sessions/session_students/controller/session_regular_student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "kelasku_backend/internals/features/classroom/students/model"
	ssDTO "kelasku_backend/internals/features/sessions/session_students/dto"
	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
	sessionModel "kelasku_backend/internals/features/sessions/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type SessionRegularStudentController struct {
	DB *gorm.DB
}

var validateSessionStudent = validator.New()

/* =========================================================
   Shared checks: session & student harus milik user (404)
   ========================================================= */

func sessionOwned(tx *gorm.DB, userID, sessionID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&sessionModel.SessionModel{}).
		Where("session_id = ? AND session_user_id = ?", sessionID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Session tidak ditemukan")
	}
	return nil
}

func studentOwned(tx *gorm.DB, userID, studentID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_user_id = ?", studentID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek student")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return nil
}

// studentNameMap batch ambil nama student untuk response list.
func studentNameMap(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var rows []studentModel.StudentModel
	if err := tx.Unscoped().
		Select("student_id", "student_full_name").
		Where("student_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		names[s.StudentID] = s.StudentFullName
	}
	return names, nil
}

// ===================== CREATE =====================
// POST /api/u/session-regular-students
func (h *SessionRegularStudentController) Create(c *fiber.Ctx) error {
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
		if err := tx.Model(&ssModel.SessionRegularStudentModel{}).
			Where("session_regular_student_session_id = ? AND session_regular_student_student_id = ?",
				req.SessionID, req.StudentID).
			Count(&dup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi")
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Student sudah terdaftar di session ini")
		}

		mm := ssModel.SessionRegularStudentModel{
			SessionRegularStudentUserID:      userID,
			SessionRegularStudentSessionID:   req.SessionID,
			SessionRegularStudentStudentID:   req.StudentID,
			SessionRegularStudentTableNumber: req.TableNumber,
		}
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan student ke session")
		}

		c.Locals("created_row", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_row").(ssModel.SessionRegularStudentModel)
	return helper.JsonCreated(c, "Student ditambahkan ke session", ssDTO.FromSessionRegularStudentModel(mm))
}

// ===================== LIST BY SESSION =====================
// GET /api/u/session-regular-students?session_id= (urut nomor meja)
func (h *SessionRegularStudentController) ListBySession(c *fiber.Ctx) error {
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

	var rows []ssModel.SessionRegularStudentModel
	if err := h.DB.
		Where("session_regular_student_session_id = ?", sessionID).
		Order("session_regular_student_table_number ASC, session_regular_student_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.SessionRegularStudentStudentID)
	}
	names, err := studentNameMap(h.DB, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nama student")
	}

	return helper.JsonOK(c, "Daftar student session", ssDTO.FromSessionRegularStudentModels(rows, names))
}

// ===================== UPDATE =====================
// PUT /api/u/session-regular-students/:id (pindah meja)
func (h *SessionRegularStudentController) Update(c *fiber.Ctx) error {
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

	var mm ssModel.SessionRegularStudentModel
	if err := h.DB.
		Where("session_regular_student_id = ? AND session_regular_student_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.TableNumber != nil {
		mm.SessionRegularStudentTableNumber = *req.TableNumber
	}
	if err := h.DB.Model(&ssModel.SessionRegularStudentModel{}).
		Where("session_regular_student_id = ?", mm.SessionRegularStudentID).
		Update("session_regular_student_table_number", mm.SessionRegularStudentTableNumber).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}

	return helper.JsonUpdated(c, "Session student diperbarui", ssDTO.FromSessionRegularStudentModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/session-regular-students/:id (jawaban ikut terhapus)
func (h *SessionRegularStudentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm ssModel.SessionRegularStudentModel
		if err := tx.
			Where("session_regular_student_id = ? AND session_regular_student_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Session student tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if err := tx.Exec(
			"DELETE FROM session_regular_answers WHERE session_regular_answer_session_regular_student_id = ?",
			mm.SessionRegularStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jawaban")
		}
		if err := tx.Delete(&ssModel.SessionRegularStudentModel{},
			"session_regular_student_id = ?", mm.SessionRegularStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus session student")
		}

		c.Locals("deleted_row", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_row").(ssModel.SessionRegularStudentModel)
	return helper.JsonDeleted(c, "Student dikeluarkan dari session", ssDTO.FromSessionRegularStudentModel(mm))
}
