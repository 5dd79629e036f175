// file: internals/features/questionnaires/dto/questionnaire_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kelasku_backend/internals/features/questionnaires/model"
)

/* ==============================
   CREATE (POST /questionnaires)
   Pertanyaan boleh dikirim inline; disimpan satu transaksi
   dengan questionnaire-nya (tidak ada partial commit).
============================== */

type CreateQuestionnaireRequest struct {
	QuestionnaireName string                  `json:"questionnaire_name" validate:"required,min=1,max=180"`
	Questions         []CreateQuestionInline  `json:"questions" validate:"omitempty,dive"`
}

type CreateQuestionInline struct {
	QuestionName   string `json:"question_name" validate:"required,min=1"`
	QuestionAnswer string `json:"question_answer" validate:"omitempty"`
}

func (r *CreateQuestionnaireRequest) Normalize() {
	r.QuestionnaireName = strings.TrimSpace(r.QuestionnaireName)
	for i := range r.Questions {
		r.Questions[i].QuestionName = strings.TrimSpace(r.Questions[i].QuestionName)
		r.Questions[i].QuestionAnswer = strings.TrimSpace(r.Questions[i].QuestionAnswer)
	}
}

func (r CreateQuestionnaireRequest) ToModel(userID uuid.UUID) m.QuestionnaireModel {
	return m.QuestionnaireModel{
		QuestionnaireUserID: userID,
		QuestionnaireName:   r.QuestionnaireName,
	}
}

/* ==============================
   UPDATE (PUT /questionnaires/:id)
============================== */

type UpdateQuestionnaireRequest struct {
	QuestionnaireName *string `json:"questionnaire_name" validate:"omitempty,min=1,max=180"`
}

func (r *UpdateQuestionnaireRequest) Normalize() {
	if r.QuestionnaireName != nil {
		s := strings.TrimSpace(*r.QuestionnaireName)
		r.QuestionnaireName = &s
	}
}

/* ==============================
   RESPONSE
============================== */

type QuestionnaireResponse struct {
	QuestionnaireID        uuid.UUID          `json:"questionnaire_id"`
	QuestionnaireName      string             `json:"questionnaire_name"`
	Questions              []QuestionResponse `json:"questions,omitempty"`
	QuestionnaireCreatedAt time.Time          `json:"questionnaire_created_at"`
	QuestionnaireUpdatedAt time.Time          `json:"questionnaire_updated_at"`
}

func FromQuestionnaireModel(mm m.QuestionnaireModel, questions []m.QuestionModel) QuestionnaireResponse {
	return QuestionnaireResponse{
		QuestionnaireID:        mm.QuestionnaireID,
		QuestionnaireName:      mm.QuestionnaireName,
		Questions:              FromQuestionModels(questions),
		QuestionnaireCreatedAt: mm.QuestionnaireCreatedAt,
		QuestionnaireUpdatedAt: mm.QuestionnaireUpdatedAt,
	}
}

func FromQuestionnaireModels(rows []m.QuestionnaireModel) []QuestionnaireResponse {
	out := make([]QuestionnaireResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromQuestionnaireModel(r, nil))
	}
	return out
}
