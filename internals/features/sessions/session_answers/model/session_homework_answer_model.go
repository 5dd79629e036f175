package model

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/scoring/score"
)

type SessionHomeworkAnswerModel struct {
	SessionHomeworkAnswerID     uuid.UUID `gorm:"column:session_homework_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_homework_answer_id"`
	SessionHomeworkAnswerUserID uuid.UUID `gorm:"column:session_homework_answer_user_id;type:uuid;not null;index" json:"session_homework_answer_user_id"`

	SessionHomeworkAnswerSessionHomeworkStudentID uuid.UUID `gorm:"column:session_homework_answer_session_homework_student_id;type:uuid;not null;uniqueIndex:uq_session_homework_answers_question" json:"session_homework_answer_session_homework_student_id"`

	// FK ke questions milik questionnaire sesi (sesi homework terikat questionnaire)
	SessionHomeworkAnswerQuestionID uuid.UUID `gorm:"column:session_homework_answer_question_id;type:uuid;not null;uniqueIndex:uq_session_homework_answers_question" json:"session_homework_answer_question_id"`

	SessionHomeworkAnswerState score.AnswerState `gorm:"column:session_homework_answer_state;type:smallint;not null;default:0" json:"session_homework_answer_state"`

	SessionHomeworkAnswerCreatedAt time.Time `gorm:"column:session_homework_answer_created_at;not null;autoCreateTime" json:"session_homework_answer_created_at"`
	SessionHomeworkAnswerUpdatedAt time.Time `gorm:"column:session_homework_answer_updated_at;not null;autoUpdateTime" json:"session_homework_answer_updated_at"`
}

// TableName overrides the table name used by GORM.
func (SessionHomeworkAnswerModel) TableName() string {
	return "session_homework_answers"
}
