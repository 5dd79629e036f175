package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionState: jenis sesi. Homework terikat questionnaire, Regular bebas.
type SessionState int16

const (
	SessionStateHomework SessionState = 1
	SessionStateRegular  SessionState = 2
)

func (s SessionState) Valid() bool {
	return s == SessionStateHomework || s == SessionStateRegular
}

type SessionModel struct {
	SessionID     uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	SessionUserID uuid.UUID `gorm:"column:session_user_id;type:uuid;not null;index" json:"session_user_id"`

	SessionName string `gorm:"column:session_name;type:varchar(180);not null" json:"session_name"`

	SessionTableLayoutID   uuid.UUID  `gorm:"column:session_table_layout_id;type:uuid;not null" json:"session_table_layout_id"`
	SessionQuestionnaireID *uuid.UUID `gorm:"column:session_questionnaire_id;type:uuid" json:"session_questionnaire_id,omitempty"`
	SessionCommentary      *string    `gorm:"column:session_commentary;type:text" json:"session_commentary,omitempty"`

	SessionState SessionState `gorm:"column:session_state;type:smallint;not null;default:2" json:"session_state"`

	// Pointer state untuk halaman "run" (dipoll client, bukan state machine backend)
	SessionCurrentQuestionID       *uuid.UUID `gorm:"column:session_current_question_id;type:uuid" json:"session_current_question_id,omitempty"`
	SessionCurrentSessionStudentID *uuid.UUID `gorm:"column:session_current_session_student_id;type:uuid" json:"session_current_session_student_id,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;not null;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
