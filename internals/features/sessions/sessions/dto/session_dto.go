// file: internals/features/sessions/sessions/dto/session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/sessions/sessions/model"
)

/* ==============================
   CREATE (POST /sessions)
============================== */

type CreateSessionRequest struct {
	SessionName            string     `json:"session_name" validate:"required,min=1,max=180"`
	SessionTableLayoutID   uuid.UUID  `json:"session_table_layout_id" validate:"required"`
	SessionQuestionnaireID *uuid.UUID `json:"session_questionnaire_id" validate:"omitempty"`
	SessionCommentary      *string    `json:"session_commentary" validate:"omitempty"`
	SessionState           int16      `json:"session_state" validate:"required,oneof=1 2"`
}

func (r *CreateSessionRequest) Normalize() {
	r.SessionName = strings.TrimSpace(r.SessionName)
	if r.SessionCommentary != nil {
		s := strings.TrimSpace(*r.SessionCommentary)
		if s == "" {
			r.SessionCommentary = nil
		} else {
			r.SessionCommentary = &s
		}
	}
}

func (r CreateSessionRequest) ToModel(userID uuid.UUID) m.SessionModel {
	return m.SessionModel{
		SessionUserID:          userID,
		SessionName:            r.SessionName,
		SessionTableLayoutID:   r.SessionTableLayoutID,
		SessionQuestionnaireID: r.SessionQuestionnaireID,
		SessionCommentary:      r.SessionCommentary,
		SessionState:           m.SessionState(r.SessionState),
	}
}

/* ==============================
   UPDATE (PUT /sessions/:id)
============================== */

type UpdateSessionRequest struct {
	SessionName            *string    `json:"session_name" validate:"omitempty,min=1,max=180"`
	SessionTableLayoutID   *uuid.UUID `json:"session_table_layout_id" validate:"omitempty"`
	SessionQuestionnaireID *uuid.UUID `json:"session_questionnaire_id" validate:"omitempty"`
	SessionCommentary      *string    `json:"session_commentary" validate:"omitempty"`
	SessionState           *int16     `json:"session_state" validate:"omitempty,oneof=1 2"`

	// nil pada SessionQuestionnaireID berarti "tidak diubah"; set flag ini
	// untuk melepas questionnaire dari session (hanya sah di sesi regular)
	SessionQuestionnaireClear bool `json:"session_questionnaire_clear"`
}

func (r *UpdateSessionRequest) Normalize() {
	if r.SessionName != nil {
		s := strings.TrimSpace(*r.SessionName)
		r.SessionName = &s
	}
	if r.SessionCommentary != nil {
		s := strings.TrimSpace(*r.SessionCommentary)
		r.SessionCommentary = &s
	}
}

/* ==============================
   POINTER (PATCH /sessions/:id/pointer)
   State "run" live: pertanyaan & student yang sedang disorot.
============================== */

type UpdateSessionPointerRequest struct {
	SessionCurrentQuestionID       *uuid.UUID `json:"session_current_question_id"`
	SessionCurrentSessionStudentID *uuid.UUID `json:"session_current_session_student_id"`
}

/* ==============================
   RESPONSE
============================== */

type SessionResponse struct {
	SessionID              uuid.UUID  `json:"session_id"`
	SessionName            string     `json:"session_name"`
	SessionTableLayoutID   uuid.UUID  `json:"session_table_layout_id"`
	SessionQuestionnaireID *uuid.UUID `json:"session_questionnaire_id,omitempty"`
	SessionCommentary      *string    `json:"session_commentary,omitempty"`
	SessionState           int16      `json:"session_state"`

	SessionCurrentQuestionID       *uuid.UUID `json:"session_current_question_id,omitempty"`
	SessionCurrentSessionStudentID *uuid.UUID `json:"session_current_session_student_id,omitempty"`

	SessionCreatedAt time.Time `json:"session_created_at"`
	SessionUpdatedAt time.Time `json:"session_updated_at"`
}

func FromSessionModel(mm m.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:                      mm.SessionID,
		SessionName:                    mm.SessionName,
		SessionTableLayoutID:           mm.SessionTableLayoutID,
		SessionQuestionnaireID:         mm.SessionQuestionnaireID,
		SessionCommentary:              mm.SessionCommentary,
		SessionState:                   int16(mm.SessionState),
		SessionCurrentQuestionID:       mm.SessionCurrentQuestionID,
		SessionCurrentSessionStudentID: mm.SessionCurrentSessionStudentID,
		SessionCreatedAt:               mm.SessionCreatedAt,
		SessionUpdatedAt:               mm.SessionUpdatedAt,
	}
}

func FromSessionModels(rows []m.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSessionModel(r))
	}
	return out
}
