// file: internals/features/attendance/student_visits/controller/student_visit_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	visitDTO "kelasku_backend/internals/features/attendance/student_visits/dto"
	visitModel "kelasku_backend/internals/features/attendance/student_visits/model"
	groupModel "kelasku_backend/internals/features/classroom/groups/model"
	studentModel "kelasku_backend/internals/features/classroom/students/model"
	helper "kelasku_backend/internals/helpers"
)

type StudentVisitController struct {
	DB *gorm.DB
}

var validateVisit = validator.New()

func (h *StudentVisitController) studentOwned(tx *gorm.DB, userID, studentID uuid.UUID) error {
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

func (h *StudentVisitController) nameMap(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
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
// POST /api/u/student-visits (duplikat (student, tanggal) → 409)
func (h *StudentVisitController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req visitDTO.CreateStudentVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateVisit.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.studentOwned(tx, userID, req.StudentID); err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&visitModel.StudentVisitModel{}).
			Where("student_visit_user_id = ? AND student_visit_student_id = ? AND student_visit_date = ?",
				userID, req.StudentID, req.Date()).
			Count(&dup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi")
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Visit untuk student di tanggal ini sudah ada")
		}

		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat visit")
		}

		c.Locals("created_visit", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_visit").(visitModel.StudentVisitModel)
	return helper.JsonCreated(c, "Visit berhasil dibuat", visitDTO.FromStudentVisitModel(mm))
}

// ===================== LIST =====================
// GET /api/u/student-visits?student_id=&from=&to=&page=&per_page=
// Urut tanggal terbaru dulu, lalu nama student.
func (h *StudentVisitController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&visitModel.StudentVisitModel{}).
		Select("student_visits.*").
		Joins("JOIN students ON students.student_id = student_visits.student_visit_student_id").
		Where("student_visit_user_id = ?", userID)

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("student_visit_student_id = ?", id)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		tx = tx.Where("student_visit_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		tx = tx.Where("student_visit_date <= ?", to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []visitModel.StudentVisitModel
	if err := tx.
		Order("student_visit_date DESC, students.student_full_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.StudentVisitStudentID)
	}
	names, err := h.nameMap(h.DB, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nama student")
	}

	return helper.JsonList(c, "Daftar visit",
		visitDTO.FromStudentVisitModels(rows, names),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/student-visits/:id
func (h *StudentVisitController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req visitDTO.UpdateStudentVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateVisit.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var mm visitModel.StudentVisitModel
	if err := h.DB.
		Where("student_visit_id = ? AND student_visit_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := map[string]interface{}{}
	if req.IsPresent != nil {
		mm.StudentVisitIsPresent = *req.IsPresent
		updates["student_visit_is_present"] = mm.StudentVisitIsPresent
	}
	if req.Notes != nil {
		if *req.Notes == "" {
			mm.StudentVisitNotes = nil
		} else {
			mm.StudentVisitNotes = req.Notes
		}
		updates["student_visit_notes"] = mm.StudentVisitNotes
	}
	if len(updates) > 0 {
		if err := h.DB.Model(&visitModel.StudentVisitModel{}).
			Where("student_visit_id = ?", mm.StudentVisitID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui visit")
		}
	}

	return helper.JsonUpdated(c, "Visit berhasil diperbarui", visitDTO.FromStudentVisitModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/student-visits/:id
func (h *StudentVisitController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&visitModel.StudentVisitModel{},
		"student_visit_id = ? AND student_visit_user_id = ?", id, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus visit")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visit tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Visit berhasil dihapus", fiber.Map{"student_visit_id": id})
}

// ===================== BULK UPSERT =====================
// POST /api/u/student-visits/bulk
// Target = semua student di group ATAU daftar eksplisit, dikurangi excluded.
// Satu transaksi: gagal di tengah berarti tidak ada baris yang tertulis.
// Idempotent terhadap (student, tanggal): panggilan kedua meng-update in place.
func (h *StudentVisitController) BulkUpsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req visitDTO.BulkUpsertVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateVisit.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}
	if req.GroupID == nil && len(req.StudentIDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id atau student_ids wajib diisi")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var candidates []uuid.UUID
		if req.GroupID != nil {
			var cnt int64
			if err := tx.Model(&groupModel.GroupModel{}).
				Where("group_id = ? AND group_user_id = ?", *req.GroupID, userID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek group")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Group tidak ditemukan")
			}
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("student_group_id = ? AND student_user_id = ?", *req.GroupID, userID).
				Order("student_full_name ASC").
				Pluck("student_id", &candidates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil student group")
			}
		} else {
			var owned int64
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("student_id IN ? AND student_user_id = ?", req.StudentIDs, userID).
				Count(&owned).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek student")
			}
			if owned != int64(len(req.StudentIDs)) {
				return fiber.NewError(fiber.StatusNotFound, "Sebagian student tidak ditemukan")
			}
			candidates = req.StudentIDs
		}

		targets := visitDTO.ResolveTargets(candidates, req.ExcludedStudentIDs)
		if len(targets) == 0 {
			c.Locals("bulk_visits", []visitModel.StudentVisitModel{})
			return nil
		}

		rows := make([]visitModel.StudentVisitModel, 0, len(targets))
		for _, sid := range targets {
			rows = append(rows, visitModel.StudentVisitModel{
				StudentVisitUserID:    userID,
				StudentVisitStudentID: sid,
				StudentVisitDate:      req.Date(),
				StudentVisitIsPresent: req.IsPresent,
				StudentVisitNotes:     req.Notes,
			})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_visit_user_id"},
				{Name: "student_visit_student_id"},
				{Name: "student_visit_date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"student_visit_is_present": req.IsPresent,
				"student_visit_notes":      req.Notes,
				"student_visit_updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan visit")
		}

		var saved []visitModel.StudentVisitModel
		if err := tx.
			Where("student_visit_user_id = ? AND student_visit_date = ? AND student_visit_student_id IN ?",
				userID, req.Date(), targets).
			Find(&saved).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca visit")
		}

		c.Locals("bulk_visits", saved)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	saved := c.Locals("bulk_visits").([]visitModel.StudentVisitModel)
	ids := make([]uuid.UUID, 0, len(saved))
	for _, m := range saved {
		ids = append(ids, m.StudentVisitStudentID)
	}
	names, err := h.nameMap(h.DB, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nama student")
	}

	return helper.JsonOK(c, "Visit tersimpan", visitDTO.FromStudentVisitModels(saved, names))
}
