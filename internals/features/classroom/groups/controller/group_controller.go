// file: internals/features/classroom/groups/controller/group_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "kelasku_backend/internals/features/classroom/groups/dto"
	groupModel "kelasku_backend/internals/features/classroom/groups/model"
	studentModel "kelasku_backend/internals/features/classroom/students/model"
	helper "kelasku_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

var validateGroup = validator.New()

// ===================== CREATE =====================
// POST /api/u/groups
func (h *GroupController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req groupDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateGroup.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&groupModel.GroupModel{}).
			Where("group_user_id = ? AND lower(group_name) = lower(?)", userID, req.GroupName).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi nama")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Nama group sudah digunakan")
		}

		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Nama group sudah digunakan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat group")
		}

		c.Locals("created_group", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_group").(groupModel.GroupModel)
	return helper.JsonCreated(c, "Group berhasil dibuat", groupDTO.FromGroupModel(mm))
}

// ===================== GET BY ID =====================
// GET /api/u/groups/:id
func (h *GroupController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm groupModel.GroupModel
	if err := h.DB.
		Where("group_id = ? AND group_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail group ditemukan", groupDTO.FromGroupModel(mm))
}

// ===================== LIST =====================
// GET /api/u/groups?q=&page=&per_page=
func (h *GroupController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&groupModel.GroupModel{}).
		Where("group_user_id = ?", userID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(group_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []groupModel.GroupModel
	if err := tx.
		Order("group_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar group",
		groupDTO.FromGroupModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/groups/:id
func (h *GroupController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req groupDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateGroup.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm groupModel.GroupModel
		if err := tx.
			Where("group_id = ? AND group_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Group tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if req.GroupName != nil && !strings.EqualFold(*req.GroupName, mm.GroupName) {
			var cnt int64
			if err := tx.Model(&groupModel.GroupModel{}).
				Where("group_user_id = ? AND lower(group_name) = lower(?) AND group_id <> ?",
					userID, *req.GroupName, mm.GroupID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi nama")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Nama group sudah digunakan")
			}
			mm.GroupName = *req.GroupName
		}

		if err := tx.Model(&groupModel.GroupModel{}).
			Where("group_id = ?", mm.GroupID).
			Updates(map[string]interface{}{
				"group_name": mm.GroupName,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui group")
		}

		c.Locals("updated_group", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("updated_group").(groupModel.GroupModel)
	return helper.JsonUpdated(c, "Group berhasil diperbarui", groupDTO.FromGroupModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/groups/:id
// Ditolak (409) selama group masih punya student.
func (h *GroupController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm groupModel.GroupModel
		if err := tx.
			Where("group_id = ? AND group_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Group tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		var cnt int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_group_id = ?", mm.GroupID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek data student")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Group masih punya student, tidak bisa dihapus")
		}

		if err := tx.Delete(&groupModel.GroupModel{}, "group_id = ?", mm.GroupID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus group")
		}

		c.Locals("deleted_group", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_group").(groupModel.GroupModel)
	return helper.JsonDeleted(c, "Group berhasil dihapus", groupDTO.FromGroupModel(mm))
}
