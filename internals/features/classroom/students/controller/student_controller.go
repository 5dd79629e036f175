// file: internals/features/classroom/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	brandModel "kelasku_backend/internals/features/classroom/brands/model"
	groupModel "kelasku_backend/internals/features/classroom/groups/model"
	studentDTO "kelasku_backend/internals/features/classroom/students/dto"
	studentModel "kelasku_backend/internals/features/classroom/students/model"
	scoringService "kelasku_backend/internals/features/scoring/service"
	helper "kelasku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

var validateStudent = validator.New()

/* =========================================================
   Helpers: FK ownership check (404 kalau bukan milik user)
   ========================================================= */

func (h *StudentController) groupOwned(tx *gorm.DB, userID, groupID uuid.UUID) (*groupModel.GroupModel, error) {
	var g groupModel.GroupModel
	if err := tx.
		Where("group_id = ? AND group_user_id = ?", groupID, userID).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek group")
	}
	return &g, nil
}

func (h *StudentController) brandOwned(tx *gorm.DB, userID, brandID uuid.UUID) (*brandModel.BrandModel, error) {
	var b brandModel.BrandModel
	if err := tx.
		Where("brand_id = ? AND brand_user_id = ?", brandID, userID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Brand tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek brand")
	}
	return &b, nil
}

// ===================== CREATE =====================
// POST /api/u/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var groupName, brandName string
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		g, err := h.groupOwned(tx, userID, req.StudentGroupID)
		if err != nil {
			return err
		}
		b, err := h.brandOwned(tx, userID, req.StudentBrandID)
		if err != nil {
			return err
		}
		groupName, brandName = g.GroupName, b.BrandName

		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat student")
		}

		c.Locals("created_student", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_student").(studentModel.StudentModel)
	return helper.JsonCreated(c, "Student berhasil dibuat",
		studentDTO.FromStudentModel(mm, groupName, brandName, nil))
}

// ===================== GET BY ID =====================
// GET /api/u/students/:id (termasuk skor homework/regular/total)
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	groupNames, brandNames, err := h.nameMaps(userID, []studentModel.StudentModel{mm})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil relasi")
	}

	scores, err := scoringService.SummariesByStudent(h.DB, userID, []uuid.UUID{mm.StudentID})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung skor")
	}
	sc := scores[mm.StudentID]

	return helper.JsonOK(c, "Detail student ditemukan",
		studentDTO.FromStudentModel(mm, groupNames[mm.StudentGroupID], brandNames[mm.StudentBrandID], &sc))
}

// ===================== LIST =====================
// GET /api/u/students?q=&group_id=&brand_id=&page=&per_page=
// Skor dihitung server-side per halaman (client tinggal pakai).
func (h *StudentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_user_id = ?", userID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(student_full_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if gid := strings.TrimSpace(c.Query("group_id")); gid != "" {
		id, err := uuid.Parse(gid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		tx = tx.Where("student_group_id = ?", id)
	}
	if bid := strings.TrimSpace(c.Query("brand_id")); bid != "" {
		id, err := uuid.Parse(bid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "brand_id tidak valid")
		}
		tx = tx.Where("student_brand_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []studentModel.StudentModel
	if err := tx.
		Order("student_full_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	groupNames, brandNames, err := h.nameMaps(userID, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil relasi")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.StudentID)
	}
	scores, err := scoringService.SummariesByStudent(h.DB, userID, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung skor")
	}

	out := make([]studentDTO.StudentResponse, 0, len(rows))
	for _, r := range rows {
		sc := scores[r.StudentID]
		out = append(out, studentDTO.FromStudentModel(r,
			groupNames[r.StudentGroupID], brandNames[r.StudentBrandID], &sc))
	}

	return helper.JsonList(c, "Daftar student", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var groupName, brandName string
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm studentModel.StudentModel
		if err := tx.
			Where("student_id = ? AND student_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if req.StudentFullName != nil && *req.StudentFullName != "" {
			mm.StudentFullName = *req.StudentFullName
		}
		// FK yang berubah divalidasi ulang kepemilikannya
		if req.StudentGroupID != nil {
			mm.StudentGroupID = *req.StudentGroupID
		}
		if req.StudentBrandID != nil {
			mm.StudentBrandID = *req.StudentBrandID
		}
		g, err := h.groupOwned(tx, userID, mm.StudentGroupID)
		if err != nil {
			return err
		}
		b, err := h.brandOwned(tx, userID, mm.StudentBrandID)
		if err != nil {
			return err
		}
		groupName, brandName = g.GroupName, b.BrandName

		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", mm.StudentID).
			Updates(map[string]interface{}{
				"student_full_name": mm.StudentFullName,
				"student_group_id":  mm.StudentGroupID,
				"student_brand_id":  mm.StudentBrandID,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui student")
		}

		c.Locals("updated_student", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("updated_student").(studentModel.StudentModel)
	return helper.JsonUpdated(c, "Student berhasil diperbarui",
		studentDTO.FromStudentModel(mm, groupName, brandName, nil))
}

// ===================== DELETE =====================
// DELETE /api/u/students/:id (soft delete — jawaban & visit historis tetap utuh)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := h.DB.Delete(&studentModel.StudentModel{}, "student_id = ?", mm.StudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus student")
	}

	return helper.JsonDeleted(c, "Student berhasil dihapus",
		studentDTO.FromStudentModel(mm, "", "", nil))
}

/* =========================================================
   Utils
   ========================================================= */

// nameMaps ambil nama group & brand untuk sekumpulan student (batch, bukan N+1).
func (h *StudentController) nameMaps(userID uuid.UUID, rows []studentModel.StudentModel) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	groupIDs := make([]uuid.UUID, 0, len(rows))
	brandIDs := make([]uuid.UUID, 0, len(rows))
	seenG := map[uuid.UUID]bool{}
	seenB := map[uuid.UUID]bool{}
	for _, r := range rows {
		if !seenG[r.StudentGroupID] {
			seenG[r.StudentGroupID] = true
			groupIDs = append(groupIDs, r.StudentGroupID)
		}
		if !seenB[r.StudentBrandID] {
			seenB[r.StudentBrandID] = true
			brandIDs = append(brandIDs, r.StudentBrandID)
		}
	}

	groupNames := map[uuid.UUID]string{}
	if len(groupIDs) > 0 {
		var groups []groupModel.GroupModel
		if err := h.DB.
			Where("group_user_id = ? AND group_id IN ?", userID, groupIDs).
			Find(&groups).Error; err != nil {
			return nil, nil, err
		}
		for _, g := range groups {
			groupNames[g.GroupID] = g.GroupName
		}
	}

	brandNames := map[uuid.UUID]string{}
	if len(brandIDs) > 0 {
		var brands []brandModel.BrandModel
		if err := h.DB.
			Where("brand_user_id = ? AND brand_id IN ?", userID, brandIDs).
			Find(&brands).Error; err != nil {
			return nil, nil, err
		}
		for _, b := range brands {
			brandNames[b.BrandID] = b.BrandName
		}
	}

	return groupNames, brandNames, nil
}
