// file: internals/features/classroom/brands/controller/brand_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	brandDTO "kelasku_backend/internals/features/classroom/brands/dto"
	brandModel "kelasku_backend/internals/features/classroom/brands/model"
	studentModel "kelasku_backend/internals/features/classroom/students/model"
	helper "kelasku_backend/internals/helpers"
)

type BrandController struct {
	DB *gorm.DB
}

var validateBrand = validator.New()

// ===================== CREATE =====================
// POST /api/u/brands
func (h *BrandController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req brandDTO.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateBrand.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// cek duplikat nama (per user)
		var cnt int64
		if err := tx.Model(&brandModel.BrandModel{}).
			Where("brand_user_id = ? AND lower(brand_name) = lower(?)", userID, req.BrandName).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi nama")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Nama brand sudah digunakan")
		}

		mm := req.ToModel(userID)
		if err := tx.Create(&mm).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Nama brand sudah digunakan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat brand")
		}

		c.Locals("created_brand", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("created_brand").(brandModel.BrandModel)
	return helper.JsonCreated(c, "Brand berhasil dibuat", brandDTO.FromBrandModel(mm))
}

// ===================== GET BY ID =====================
// GET /api/u/brands/:id
func (h *BrandController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mm brandModel.BrandModel
	// 🚧 filter tenant di query (bukan setelah fetch)
	if err := h.DB.
		Where("brand_id = ? AND brand_user_id = ?", id, userID).
		First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail brand ditemukan", brandDTO.FromBrandModel(mm))
}

// ===================== LIST =====================
// GET /api/u/brands?q=&page=&per_page=
func (h *BrandController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&brandModel.BrandModel{}).
		Where("brand_user_id = ?", userID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(brand_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []brandModel.BrandModel
	if err := tx.
		Order("brand_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar brand",
		brandDTO.FromBrandModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/u/brands/:id
func (h *BrandController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req brandDTO.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateBrand.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm brandModel.BrandModel
		if err := tx.
			Where("brand_id = ? AND brand_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Brand tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		// cek duplikat nama (jika berubah)
		if req.BrandName != nil && !strings.EqualFold(*req.BrandName, mm.BrandName) {
			var cnt int64
			if err := tx.Model(&brandModel.BrandModel{}).
				Where("brand_user_id = ? AND lower(brand_name) = lower(?) AND brand_id <> ?",
					userID, *req.BrandName, mm.BrandID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi nama")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Nama brand sudah digunakan")
			}
			mm.BrandName = *req.BrandName
		}

		if err := tx.Model(&brandModel.BrandModel{}).
			Where("brand_id = ?", mm.BrandID).
			Updates(map[string]interface{}{
				"brand_name": mm.BrandName,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui brand")
		}

		c.Locals("updated_brand", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("updated_brand").(brandModel.BrandModel)
	return helper.JsonUpdated(c, "Brand berhasil diperbarui", brandDTO.FromBrandModel(mm))
}

// ===================== DELETE =====================
// DELETE /api/u/brands/:id
// Ditolak (409) selama masih ada student yang memakai brand ini.
func (h *BrandController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mm brandModel.BrandModel
		if err := tx.
			Where("brand_id = ? AND brand_user_id = ?", id, userID).
			First(&mm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Brand tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		var cnt int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_brand_id = ?", mm.BrandID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek data student")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Brand masih dipakai student, tidak bisa dihapus")
		}

		if err := tx.Delete(&brandModel.BrandModel{}, "brand_id = ?", mm.BrandID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus brand")
		}

		c.Locals("deleted_brand", mm)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mm := c.Locals("deleted_brand").(brandModel.BrandModel)
	return helper.JsonDeleted(c, "Brand berhasil dihapus", brandDTO.FromBrandModel(mm))
}
