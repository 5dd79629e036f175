package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionnaireModel struct {
	QuestionnaireID     uuid.UUID `gorm:"column:questionnaire_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"questionnaire_id"`
	QuestionnaireUserID uuid.UUID `gorm:"column:questionnaire_user_id;type:uuid;not null;index" json:"questionnaire_user_id"`

	QuestionnaireName string `gorm:"column:questionnaire_name;type:varchar(180);not null" json:"questionnaire_name"`

	QuestionnaireCreatedAt time.Time      `gorm:"column:questionnaire_created_at;not null;autoCreateTime" json:"questionnaire_created_at"`
	QuestionnaireUpdatedAt time.Time      `gorm:"column:questionnaire_updated_at;not null;autoUpdateTime" json:"questionnaire_updated_at"`
	QuestionnaireDeletedAt gorm.DeletedAt `gorm:"column:questionnaire_deleted_at;index" json:"questionnaire_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}
