package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionUserID uuid.UUID `gorm:"column:question_user_id;type:uuid;not null;index" json:"question_user_id"`

	QuestionQuestionnaireID uuid.UUID `gorm:"column:question_questionnaire_id;type:uuid;not null;index" json:"question_questionnaire_id"`

	QuestionName   string `gorm:"column:question_name;type:text;not null" json:"question_name"`
	QuestionAnswer string `gorm:"column:question_answer;type:text;not null;default:''" json:"question_answer"`

	// Urutan tampil di dalam questionnaire
	QuestionOrder int `gorm:"column:question_order;not null;default:0" json:"question_order"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuestionModel) TableName() string {
	return "questions"
}
