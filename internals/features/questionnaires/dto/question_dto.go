// file: internals/features/questionnaires/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/questionnaires/model"
)

/* ==============================
   CREATE (POST /questions)
============================== */

type CreateQuestionRequest struct {
	QuestionQuestionnaireID uuid.UUID `json:"question_questionnaire_id" validate:"required"`
	QuestionName            string    `json:"question_name" validate:"required,min=1"`
	QuestionAnswer          string    `json:"question_answer" validate:"omitempty"`
	QuestionOrder           *int      `json:"question_order" validate:"omitempty,gte=0"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionName = strings.TrimSpace(r.QuestionName)
	r.QuestionAnswer = strings.TrimSpace(r.QuestionAnswer)
}

func (r CreateQuestionRequest) ToModel(userID uuid.UUID) m.QuestionModel {
	order := 0
	if r.QuestionOrder != nil {
		order = *r.QuestionOrder
	}
	return m.QuestionModel{
		QuestionUserID:          userID,
		QuestionQuestionnaireID: r.QuestionQuestionnaireID,
		QuestionName:            r.QuestionName,
		QuestionAnswer:          r.QuestionAnswer,
		QuestionOrder:           order,
	}
}

/* ==============================
   UPDATE (PUT /questions/:id)
============================== */

type UpdateQuestionRequest struct {
	QuestionName   *string `json:"question_name" validate:"omitempty,min=1"`
	QuestionAnswer *string `json:"question_answer" validate:"omitempty"`
	QuestionOrder  *int    `json:"question_order" validate:"omitempty,gte=0"`
}

func (r *UpdateQuestionRequest) Normalize() {
	if r.QuestionName != nil {
		s := strings.TrimSpace(*r.QuestionName)
		r.QuestionName = &s
	}
	if r.QuestionAnswer != nil {
		s := strings.TrimSpace(*r.QuestionAnswer)
		r.QuestionAnswer = &s
	}
}

/* ==============================
   RESPONSE
============================== */

type QuestionResponse struct {
	QuestionID              uuid.UUID `json:"question_id"`
	QuestionQuestionnaireID uuid.UUID `json:"question_questionnaire_id"`
	QuestionName            string    `json:"question_name"`
	QuestionAnswer          string    `json:"question_answer"`
	QuestionOrder           int       `json:"question_order"`
	QuestionCreatedAt       time.Time `json:"question_created_at"`
	QuestionUpdatedAt       time.Time `json:"question_updated_at"`
}

func FromQuestionModel(mm m.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:              mm.QuestionID,
		QuestionQuestionnaireID: mm.QuestionQuestionnaireID,
		QuestionName:            mm.QuestionName,
		QuestionAnswer:          mm.QuestionAnswer,
		QuestionOrder:           mm.QuestionOrder,
		QuestionCreatedAt:       mm.QuestionCreatedAt,
		QuestionUpdatedAt:       mm.QuestionUpdatedAt,
	}
}

func FromQuestionModels(rows []m.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromQuestionModel(r))
	}
	return out
}
