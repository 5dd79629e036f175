// file: internals/features/attendance/student_visits/dto/student_visit_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	visitModel "kelasku_backend/internals/features/attendance/student_visits/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type CreateStudentVisitRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	VisitDate string    `json:"visit_date" validate:"required,datetime=2006-01-02"`
	IsPresent bool      `json:"is_present"`
	Notes     *string   `json:"notes" validate:"omitempty,max=1000"`
}

func (r *CreateStudentVisitRequest) Normalize() {
	r.VisitDate = strings.TrimSpace(r.VisitDate)
	if r.Notes != nil {
		t := strings.TrimSpace(*r.Notes)
		if t == "" {
			r.Notes = nil
		} else {
			r.Notes = &t
		}
	}
}

func (r CreateStudentVisitRequest) Date() datatypes.Date {
	t, _ := time.Parse("2006-01-02", r.VisitDate)
	return datatypes.Date(t)
}

func (r CreateStudentVisitRequest) ToModel(userID uuid.UUID) visitModel.StudentVisitModel {
	return visitModel.StudentVisitModel{
		StudentVisitUserID:    userID,
		StudentVisitStudentID: r.StudentID,
		StudentVisitDate:      r.Date(),
		StudentVisitIsPresent: r.IsPresent,
		StudentVisitNotes:     r.Notes,
	}
}

type UpdateStudentVisitRequest struct {
	IsPresent *bool   `json:"is_present"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *UpdateStudentVisitRequest) Normalize() {
	if r.Notes != nil {
		t := strings.TrimSpace(*r.Notes)
		r.Notes = &t
	}
}

// BulkUpsertVisitRequest menarget satu group ATAU daftar student eksplisit,
// dikurangi excluded_student_ids.
type BulkUpsertVisitRequest struct {
	GroupID            *uuid.UUID  `json:"group_id"`
	StudentIDs         []uuid.UUID `json:"student_ids"`
	ExcludedStudentIDs []uuid.UUID `json:"excluded_student_ids"`
	VisitDate          string      `json:"visit_date" validate:"required,datetime=2006-01-02"`
	IsPresent          bool        `json:"is_present"`
	Notes              *string     `json:"notes" validate:"omitempty,max=1000"`
}

func (r *BulkUpsertVisitRequest) Normalize() {
	r.VisitDate = strings.TrimSpace(r.VisitDate)
	if r.Notes != nil {
		t := strings.TrimSpace(*r.Notes)
		if t == "" {
			r.Notes = nil
		} else {
			r.Notes = &t
		}
	}
}

func (r BulkUpsertVisitRequest) Date() datatypes.Date {
	t, _ := time.Parse("2006-01-02", r.VisitDate)
	return datatypes.Date(t)
}

// ResolveTargets mengembalikan candidate dikurangi excluded (urutan dipertahankan,
// duplikat dibuang).
func ResolveTargets(candidates, excluded []uuid.UUID) []uuid.UUID {
	skip := make(map[uuid.UUID]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	out := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := skip[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentVisitResponse struct {
	StudentVisitID          uuid.UUID `json:"student_visit_id"`
	StudentVisitStudentID   uuid.UUID `json:"student_visit_student_id"`
	StudentVisitStudentName string    `json:"student_visit_student_name,omitempty"`
	StudentVisitDate        string    `json:"student_visit_date"`
	StudentVisitIsPresent   bool      `json:"student_visit_is_present"`
	StudentVisitNotes       *string   `json:"student_visit_notes,omitempty"`
	StudentVisitCreatedAt   time.Time `json:"student_visit_created_at"`
	StudentVisitUpdatedAt   time.Time `json:"student_visit_updated_at"`
}

func FromStudentVisitModel(m visitModel.StudentVisitModel) StudentVisitResponse {
	return StudentVisitResponse{
		StudentVisitID:        m.StudentVisitID,
		StudentVisitStudentID: m.StudentVisitStudentID,
		StudentVisitDate:      time.Time(m.StudentVisitDate).Format("2006-01-02"),
		StudentVisitIsPresent: m.StudentVisitIsPresent,
		StudentVisitNotes:     m.StudentVisitNotes,
		StudentVisitCreatedAt: m.StudentVisitCreatedAt,
		StudentVisitUpdatedAt: m.StudentVisitUpdatedAt,
	}
}

func FromStudentVisitModels(rows []visitModel.StudentVisitModel, names map[uuid.UUID]string) []StudentVisitResponse {
	out := make([]StudentVisitResponse, 0, len(rows))
	for _, m := range rows {
		resp := FromStudentVisitModel(m)
		if names != nil {
			resp.StudentVisitStudentName = names[m.StudentVisitStudentID]
		}
		out = append(out, resp)
	}
	return out
}
