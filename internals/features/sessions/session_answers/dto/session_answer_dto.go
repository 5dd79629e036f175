// file: internals/features/sessions/session_answers/dto/session_answer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	saModel "kelasku_backend/internals/features/sessions/session_answers/model"
	"kelasku_backend/internals/features/scoring/score"
)

/* =========================================================
   REQUEST — upsert (pair unik menentukan baris)
   ========================================================= */

type UpsertRegularAnswerRequest struct {
	SessionRegularStudentID uuid.UUID `json:"session_regular_student_id" validate:"required"`
	QuestionNumber          int       `json:"question_number" validate:"required,min=1"`
	State                   int16     `json:"state" validate:"min=0,max=3"`
}

type UpsertHomeworkAnswerRequest struct {
	SessionHomeworkStudentID uuid.UUID `json:"session_homework_student_id" validate:"required"`
	QuestionID               uuid.UUID `json:"question_id" validate:"required"`
	State                    int16     `json:"state" validate:"min=0,max=3"`
}

func (r UpsertRegularAnswerRequest) AnswerState() score.AnswerState {
	return score.AnswerState(r.State)
}

func (r UpsertHomeworkAnswerRequest) AnswerState() score.AnswerState {
	return score.AnswerState(r.State)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SessionRegularAnswerResponse struct {
	SessionRegularAnswerID                      uuid.UUID         `json:"session_regular_answer_id"`
	SessionRegularAnswerSessionRegularStudentID uuid.UUID         `json:"session_regular_answer_session_regular_student_id"`
	SessionRegularAnswerQuestionNumber          int               `json:"session_regular_answer_question_number"`
	SessionRegularAnswerState                   score.AnswerState `json:"session_regular_answer_state"`
	SessionRegularAnswerCreatedAt               time.Time         `json:"session_regular_answer_created_at"`
	SessionRegularAnswerUpdatedAt               time.Time         `json:"session_regular_answer_updated_at"`
}

func FromSessionRegularAnswerModel(m saModel.SessionRegularAnswerModel) SessionRegularAnswerResponse {
	return SessionRegularAnswerResponse{
		SessionRegularAnswerID:                      m.SessionRegularAnswerID,
		SessionRegularAnswerSessionRegularStudentID: m.SessionRegularAnswerSessionRegularStudentID,
		SessionRegularAnswerQuestionNumber:          m.SessionRegularAnswerQuestionNumber,
		SessionRegularAnswerState:                   m.SessionRegularAnswerState,
		SessionRegularAnswerCreatedAt:               m.SessionRegularAnswerCreatedAt,
		SessionRegularAnswerUpdatedAt:               m.SessionRegularAnswerUpdatedAt,
	}
}

func FromSessionRegularAnswerModels(rows []saModel.SessionRegularAnswerModel) []SessionRegularAnswerResponse {
	out := make([]SessionRegularAnswerResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromSessionRegularAnswerModel(m))
	}
	return out
}

type SessionHomeworkAnswerResponse struct {
	SessionHomeworkAnswerID                       uuid.UUID         `json:"session_homework_answer_id"`
	SessionHomeworkAnswerSessionHomeworkStudentID uuid.UUID         `json:"session_homework_answer_session_homework_student_id"`
	SessionHomeworkAnswerQuestionID               uuid.UUID         `json:"session_homework_answer_question_id"`
	SessionHomeworkAnswerState                    score.AnswerState `json:"session_homework_answer_state"`
	SessionHomeworkAnswerCreatedAt                time.Time         `json:"session_homework_answer_created_at"`
	SessionHomeworkAnswerUpdatedAt                time.Time         `json:"session_homework_answer_updated_at"`
}

func FromSessionHomeworkAnswerModel(m saModel.SessionHomeworkAnswerModel) SessionHomeworkAnswerResponse {
	return SessionHomeworkAnswerResponse{
		SessionHomeworkAnswerID:                       m.SessionHomeworkAnswerID,
		SessionHomeworkAnswerSessionHomeworkStudentID: m.SessionHomeworkAnswerSessionHomeworkStudentID,
		SessionHomeworkAnswerQuestionID:               m.SessionHomeworkAnswerQuestionID,
		SessionHomeworkAnswerState:                    m.SessionHomeworkAnswerState,
		SessionHomeworkAnswerCreatedAt:                m.SessionHomeworkAnswerCreatedAt,
		SessionHomeworkAnswerUpdatedAt:                m.SessionHomeworkAnswerUpdatedAt,
	}
}

func FromSessionHomeworkAnswerModels(rows []saModel.SessionHomeworkAnswerModel) []SessionHomeworkAnswerResponse {
	out := make([]SessionHomeworkAnswerResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromSessionHomeworkAnswerModel(m))
	}
	return out
}
