// file: internals/features/classroom/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/classroom/students/model"
	scoringService "kelasku_backend/internals/features/scoring/service"
)

/* ==============================
   CREATE (POST /students)
============================== */

type CreateStudentRequest struct {
	StudentFullName string    `json:"student_full_name" validate:"required,min=1,max=200"`
	StudentGroupID  uuid.UUID `json:"student_group_id" validate:"required"`
	StudentBrandID  uuid.UUID `json:"student_brand_id" validate:"required"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFullName = strings.TrimSpace(r.StudentFullName)
}

func (r CreateStudentRequest) ToModel(userID uuid.UUID) m.StudentModel {
	return m.StudentModel{
		StudentUserID:   userID,
		StudentGroupID:  r.StudentGroupID,
		StudentBrandID:  r.StudentBrandID,
		StudentFullName: r.StudentFullName,
	}
}

/* ==============================
   UPDATE (PUT /students/:id)
============================== */

type UpdateStudentRequest struct {
	StudentFullName *string    `json:"student_full_name" validate:"omitempty,min=1,max=200"`
	StudentGroupID  *uuid.UUID `json:"student_group_id" validate:"omitempty"`
	StudentBrandID  *uuid.UUID `json:"student_brand_id" validate:"omitempty"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.StudentFullName != nil {
		s := strings.TrimSpace(*r.StudentFullName)
		r.StudentFullName = &s
	}
}

/* ==============================
   RESPONSE
   Group/brand name selalu terdenormalisasi di sini supaya client
   tidak perlu resolve relasi sendiri.
============================== */

type StudentResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentFullName string    `json:"student_full_name"`

	StudentGroupID   uuid.UUID `json:"student_group_id"`
	StudentGroupName string    `json:"student_group_name"`
	StudentBrandID   uuid.UUID `json:"student_brand_id"`
	StudentBrandName string    `json:"student_brand_name"`

	StudentScores *scoringService.StudentScores `json:"student_scores,omitempty"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func FromStudentModel(mm m.StudentModel, groupName, brandName string, scores *scoringService.StudentScores) StudentResponse {
	return StudentResponse{
		StudentID:        mm.StudentID,
		StudentFullName:  mm.StudentFullName,
		StudentGroupID:   mm.StudentGroupID,
		StudentGroupName: groupName,
		StudentBrandID:   mm.StudentBrandID,
		StudentBrandName: brandName,
		StudentScores:    scores,
		StudentCreatedAt: mm.StudentCreatedAt,
		StudentUpdatedAt: mm.StudentUpdatedAt,
	}
}
