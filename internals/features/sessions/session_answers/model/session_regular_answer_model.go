package model

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/scoring/score"
)

type SessionRegularAnswerModel struct {
	SessionRegularAnswerID     uuid.UUID `gorm:"column:session_regular_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_regular_answer_id"`
	SessionRegularAnswerUserID uuid.UUID `gorm:"column:session_regular_answer_user_id;type:uuid;not null;index" json:"session_regular_answer_user_id"`

	SessionRegularAnswerSessionRegularStudentID uuid.UUID `gorm:"column:session_regular_answer_session_regular_student_id;type:uuid;not null;uniqueIndex:uq_session_regular_answers_question" json:"session_regular_answer_session_regular_student_id"`

	// Nomor urut pertanyaan (sesi regular tidak terikat questionnaire, cukup counter dari client)
	SessionRegularAnswerQuestionNumber int `gorm:"column:session_regular_answer_question_number;not null;uniqueIndex:uq_session_regular_answers_question" json:"session_regular_answer_question_number"`

	SessionRegularAnswerState score.AnswerState `gorm:"column:session_regular_answer_state;type:smallint;not null;default:0" json:"session_regular_answer_state"`

	SessionRegularAnswerCreatedAt time.Time `gorm:"column:session_regular_answer_created_at;not null;autoCreateTime" json:"session_regular_answer_created_at"`
	SessionRegularAnswerUpdatedAt time.Time `gorm:"column:session_regular_answer_updated_at;not null;autoUpdateTime" json:"session_regular_answer_updated_at"`
}

// TableName overrides the table name used by GORM.
func (SessionRegularAnswerModel) TableName() string {
	return "session_regular_answers"
}
