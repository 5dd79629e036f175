// file: internals/features/sessions/session_students/dto/session_student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	ssModel "kelasku_backend/internals/features/sessions/session_students/model"
)

/* =========================================================
   REQUEST (dipakai regular dan homework, bentuknya sama)
   ========================================================= */

type CreateSessionStudentRequest struct {
	SessionID   uuid.UUID `json:"session_id" validate:"required"`
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	TableNumber int       `json:"table_number" validate:"min=0"`
}

type UpdateSessionStudentRequest struct {
	TableNumber *int `json:"table_number" validate:"omitempty,min=0"`
}

/* =========================================================
   RESPONSE — REGULAR
   ========================================================= */

type SessionRegularStudentResponse struct {
	SessionRegularStudentID          uuid.UUID `json:"session_regular_student_id"`
	SessionRegularStudentSessionID   uuid.UUID `json:"session_regular_student_session_id"`
	SessionRegularStudentStudentID   uuid.UUID `json:"session_regular_student_student_id"`
	SessionRegularStudentStudentName string    `json:"session_regular_student_student_name,omitempty"`
	SessionRegularStudentTableNumber int       `json:"session_regular_student_table_number"`
	SessionRegularStudentCreatedAt   time.Time `json:"session_regular_student_created_at"`
	SessionRegularStudentUpdatedAt   time.Time `json:"session_regular_student_updated_at"`
}

func FromSessionRegularStudentModel(m ssModel.SessionRegularStudentModel) SessionRegularStudentResponse {
	return SessionRegularStudentResponse{
		SessionRegularStudentID:          m.SessionRegularStudentID,
		SessionRegularStudentSessionID:   m.SessionRegularStudentSessionID,
		SessionRegularStudentStudentID:   m.SessionRegularStudentStudentID,
		SessionRegularStudentTableNumber: m.SessionRegularStudentTableNumber,
		SessionRegularStudentCreatedAt:   m.SessionRegularStudentCreatedAt,
		SessionRegularStudentUpdatedAt:   m.SessionRegularStudentUpdatedAt,
	}
}

func FromSessionRegularStudentModels(rows []ssModel.SessionRegularStudentModel, names map[uuid.UUID]string) []SessionRegularStudentResponse {
	out := make([]SessionRegularStudentResponse, 0, len(rows))
	for _, m := range rows {
		resp := FromSessionRegularStudentModel(m)
		if names != nil {
			resp.SessionRegularStudentStudentName = names[m.SessionRegularStudentStudentID]
		}
		out = append(out, resp)
	}
	return out
}

/* =========================================================
   RESPONSE — HOMEWORK
   ========================================================= */

type SessionHomeworkStudentResponse struct {
	SessionHomeworkStudentID          uuid.UUID `json:"session_homework_student_id"`
	SessionHomeworkStudentSessionID   uuid.UUID `json:"session_homework_student_session_id"`
	SessionHomeworkStudentStudentID   uuid.UUID `json:"session_homework_student_student_id"`
	SessionHomeworkStudentStudentName string    `json:"session_homework_student_student_name,omitempty"`
	SessionHomeworkStudentTableNumber int       `json:"session_homework_student_table_number"`
	SessionHomeworkStudentCreatedAt   time.Time `json:"session_homework_student_created_at"`
	SessionHomeworkStudentUpdatedAt   time.Time `json:"session_homework_student_updated_at"`
}

func FromSessionHomeworkStudentModel(m ssModel.SessionHomeworkStudentModel) SessionHomeworkStudentResponse {
	return SessionHomeworkStudentResponse{
		SessionHomeworkStudentID:          m.SessionHomeworkStudentID,
		SessionHomeworkStudentSessionID:   m.SessionHomeworkStudentSessionID,
		SessionHomeworkStudentStudentID:   m.SessionHomeworkStudentStudentID,
		SessionHomeworkStudentTableNumber: m.SessionHomeworkStudentTableNumber,
		SessionHomeworkStudentCreatedAt:   m.SessionHomeworkStudentCreatedAt,
		SessionHomeworkStudentUpdatedAt:   m.SessionHomeworkStudentUpdatedAt,
	}
}

func FromSessionHomeworkStudentModels(rows []ssModel.SessionHomeworkStudentModel, names map[uuid.UUID]string) []SessionHomeworkStudentResponse {
	out := make([]SessionHomeworkStudentResponse, 0, len(rows))
	for _, m := range rows {
		resp := FromSessionHomeworkStudentModel(m)
		if names != nil {
			resp.SessionHomeworkStudentStudentName = names[m.SessionHomeworkStudentStudentID]
		}
		out = append(out, resp)
	}
	return out
}
