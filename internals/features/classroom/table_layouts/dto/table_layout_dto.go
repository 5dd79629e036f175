// file: internals/features/classroom/table_layouts/dto/table_layout_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "kelasku_backend/internals/features/classroom/table_layouts/model"
)

/* ==============================
   CREATE (POST /table-layouts)
============================== */

type CreateTableLayoutRequest struct {
	TableLayoutName string  `json:"table_layout_name" validate:"required,min=1,max=120"`
	TableLayoutRows []int64 `json:"table_layout_rows" validate:"required,min=1,dive,gte=1,lte=50"`
}

func (r *CreateTableLayoutRequest) Normalize() {
	r.TableLayoutName = strings.TrimSpace(r.TableLayoutName)
}

func (r CreateTableLayoutRequest) ToModel(userID uuid.UUID) m.TableLayoutModel {
	return m.TableLayoutModel{
		TableLayoutUserID: userID,
		TableLayoutName:   r.TableLayoutName,
		TableLayoutRows:   pq.Int64Array(r.TableLayoutRows),
	}
}

/* ==============================
   UPDATE (PUT /table-layouts/:id)
============================== */

type UpdateTableLayoutRequest struct {
	TableLayoutName *string  `json:"table_layout_name" validate:"omitempty,min=1,max=120"`
	TableLayoutRows []int64  `json:"table_layout_rows" validate:"omitempty,min=1,dive,gte=1,lte=50"`
}

func (r *UpdateTableLayoutRequest) Normalize() {
	if r.TableLayoutName != nil {
		s := strings.TrimSpace(*r.TableLayoutName)
		r.TableLayoutName = &s
	}
}

/* ==============================
   RESPONSE
============================== */

type TableLayoutResponse struct {
	TableLayoutID        uuid.UUID `json:"table_layout_id"`
	TableLayoutName      string    `json:"table_layout_name"`
	TableLayoutRows      []int64   `json:"table_layout_rows"`
	TableLayoutCreatedAt time.Time `json:"table_layout_created_at"`
	TableLayoutUpdatedAt time.Time `json:"table_layout_updated_at"`
}

func FromTableLayoutModel(mm m.TableLayoutModel) TableLayoutResponse {
	return TableLayoutResponse{
		TableLayoutID:        mm.TableLayoutID,
		TableLayoutName:      mm.TableLayoutName,
		TableLayoutRows:      []int64(mm.TableLayoutRows),
		TableLayoutCreatedAt: mm.TableLayoutCreatedAt,
		TableLayoutUpdatedAt: mm.TableLayoutUpdatedAt,
	}
}

func FromTableLayoutModels(rows []m.TableLayoutModel) []TableLayoutResponse {
	out := make([]TableLayoutResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTableLayoutModel(r))
	}
	return out
}
