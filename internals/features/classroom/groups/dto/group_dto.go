// file: internals/features/classroom/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/classroom/groups/model"
)

/* ==============================
   CREATE (POST /groups)
============================== */

type CreateGroupRequest struct {
	GroupName string `json:"group_name" validate:"required,min=1,max=120"`
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
}

func (r CreateGroupRequest) ToModel(userID uuid.UUID) m.GroupModel {
	return m.GroupModel{
		GroupUserID: userID,
		GroupName:   r.GroupName,
	}
}

/* ==============================
   UPDATE (PUT /groups/:id)
============================== */

type UpdateGroupRequest struct {
	GroupName *string `json:"group_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateGroupRequest) Normalize() {
	if r.GroupName != nil {
		s := strings.TrimSpace(*r.GroupName)
		r.GroupName = &s
	}
}

/* ==============================
   RESPONSE
============================== */

type GroupResponse struct {
	GroupID        uuid.UUID `json:"group_id"`
	GroupName      string    `json:"group_name"`
	GroupCreatedAt time.Time `json:"group_created_at"`
	GroupUpdatedAt time.Time `json:"group_updated_at"`
}

func FromGroupModel(mm m.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:        mm.GroupID,
		GroupName:      mm.GroupName,
		GroupCreatedAt: mm.GroupCreatedAt,
		GroupUpdatedAt: mm.GroupUpdatedAt,
	}
}

func FromGroupModels(rows []m.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromGroupModel(r))
	}
	return out
}
