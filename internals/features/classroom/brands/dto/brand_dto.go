// file: internals/features/classroom/brands/dto/brand_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/classroom/brands/model"
)

/* ==============================
   CREATE (POST /brands)
============================== */

type CreateBrandRequest struct {
	BrandName string `json:"brand_name" validate:"required,min=1,max=120"`
}

func (r *CreateBrandRequest) Normalize() {
	r.BrandName = strings.TrimSpace(r.BrandName)
}

func (r CreateBrandRequest) ToModel(userID uuid.UUID) m.BrandModel {
	return m.BrandModel{
		BrandUserID: userID,
		BrandName:   r.BrandName,
	}
}

/* ==============================
   UPDATE (PUT /brands/:id)
============================== */

type UpdateBrandRequest struct {
	BrandName *string `json:"brand_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateBrandRequest) Normalize() {
	if r.BrandName != nil {
		s := strings.TrimSpace(*r.BrandName)
		r.BrandName = &s
	}
}

/* ==============================
   RESPONSE
============================== */

type BrandResponse struct {
	BrandID        uuid.UUID `json:"brand_id"`
	BrandName      string    `json:"brand_name"`
	BrandCreatedAt time.Time `json:"brand_created_at"`
	BrandUpdatedAt time.Time `json:"brand_updated_at"`
}

func FromBrandModel(mm m.BrandModel) BrandResponse {
	return BrandResponse{
		BrandID:        mm.BrandID,
		BrandName:      mm.BrandName,
		BrandCreatedAt: mm.BrandCreatedAt,
		BrandUpdatedAt: mm.BrandUpdatedAt,
	}
}

func FromBrandModels(rows []m.BrandModel) []BrandResponse {
	out := make([]BrandResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromBrandModel(r))
	}
	return out
}
