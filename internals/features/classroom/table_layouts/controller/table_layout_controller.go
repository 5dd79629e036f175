// file: internals/features/classroom/table_layouts/controller/table_layout_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	layoutDTO "kelasku_backend/internals/features/classroom/table_layouts/dto"
	layoutModel "kelasku_backend/internals/features/classroom/table_layouts/model"
	sessionModel "kelasku_backend/internals/features/sessions/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type TableLayoutController struct {
	DB *gorm.DB
}

var validateTableLayout = validator.New()

// ===================== CREATE =====================
// POST /api/u/table-layouts
func (h *TableLayoutController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req layoutDTO.CreateTableLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateTableLayout.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	mm := req.ToModel(userID)
	if err := h.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat table layout")
	}

	return helper.JsonCreated(c, "Table layout berhasil dibuat", layoutDTO.FromTableLayoutModel(mm))
}

// ===================== GET BY ID =====================
// GET /api/u/table-layouts/:id
func (h *TableLayoutController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm layoutModel.TableLayoutModel
	if err := h.DB.
		Where("table_layout_id = ? AND table_layout_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Table layout tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail table layout ditemukan", layoutDTO.FromTableLayoutModel(mm))
}

// ===================== LIST =====================
// GET /api/u/table-layouts?page=&per_page=
func (h *TableLayoutController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&layoutModel.TableLayoutModel{}).
		Where("table_layout_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []layoutModel.TableLayoutModel
	if err := tx.
		Order("table_layout_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar table layout",
		layoutDTO.FromTableLayoutModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/table-layouts/:id
func (h *TableLayoutController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req layoutDTO.UpdateTableLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateTableLayout.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var mm layoutModel.TableLayoutModel
	if err := h.DB.
		Where("table_layout_id = ? AND table_layout_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Table layout tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.TableLayoutName != nil && *req.TableLayoutName != "" {
		mm.TableLayoutName = *req.TableLayoutName
	}
	if len(req.TableLayoutRows) > 0 {
		mm.TableLayoutRows = pq.Int64Array(req.TableLayoutRows)
	}

	if err := h.DB.Model(&layoutModel.TableLayoutModel{}).
		Where("table_layout_id = ?", mm.TableLayoutID).
		Updates(map[string]interface{}{
			"table_layout_name": mm.TableLayoutName,
			"table_layout_rows": mm.TableLayoutRows,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui table layout")
	}

	return helper.JsonUpdated(c, "Table layout berhasil diperbarui", layoutDTO.FromTableLayoutModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/table-layouts/:id
// Ditolak (409) selama masih ada session (belum dihapus) yang memakainya.
func (h *TableLayoutController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm layoutModel.TableLayoutModel
		if err := tx.
			Where("table_layout_id = ? AND table_layout_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Table layout tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		var cnt int64
		if err := tx.Model(&sessionModel.SessionModel{}).
			Where("session_table_layout_id = ?", mm.TableLayoutID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek session")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Table layout masih dipakai session, tidak bisa dihapus")
		}

		if err := tx.Delete(&layoutModel.TableLayoutModel{}, "table_layout_id = ?", mm.TableLayoutID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus table layout")
		}

		c.Locals("deleted_layout", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_layout").(layoutModel.TableLayoutModel)
	return helper.JsonDeleted(c, "Table layout berhasil dihapus", layoutDTO.FromTableLayoutModel(mm))
}
