package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionRegularStudentModel struct {
	SessionRegularStudentID     uuid.UUID `gorm:"column:session_regular_student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_regular_student_id"`
	SessionRegularStudentUserID uuid.UUID `gorm:"column:session_regular_student_user_id;type:uuid;not null;index" json:"session_regular_student_user_id"`

	SessionRegularStudentSessionID uuid.UUID `gorm:"column:session_regular_student_session_id;type:uuid;not null;uniqueIndex:uq_session_regular_students_pair" json:"session_regular_student_session_id"`
	SessionRegularStudentStudentID uuid.UUID `gorm:"column:session_regular_student_student_id;type:uuid;not null;uniqueIndex:uq_session_regular_students_pair" json:"session_regular_student_student_id"`

	SessionRegularStudentTableNumber int `gorm:"column:session_regular_student_table_number;not null;default:0" json:"session_regular_student_table_number"`

	SessionRegularStudentCreatedAt time.Time `gorm:"column:session_regular_student_created_at;not null;autoCreateTime" json:"session_regular_student_created_at"`
	SessionRegularStudentUpdatedAt time.Time `gorm:"column:session_regular_student_updated_at;not null;autoUpdateTime" json:"session_regular_student_updated_at"`
}

// TableName overrides the table name used by GORM.
func (SessionRegularStudentModel) TableName() string {
	return "session_regular_students"
}
