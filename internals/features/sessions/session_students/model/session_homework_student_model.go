package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionHomeworkStudentModel struct {
	SessionHomeworkStudentID     uuid.UUID `gorm:"column:session_homework_student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_homework_student_id"`
	SessionHomeworkStudentUserID uuid.UUID `gorm:"column:session_homework_student_user_id;type:uuid;not null;index" json:"session_homework_student_user_id"`

	SessionHomeworkStudentSessionID uuid.UUID `gorm:"column:session_homework_student_session_id;type:uuid;not null;uniqueIndex:uq_session_homework_students_pair" json:"session_homework_student_session_id"`
	SessionHomeworkStudentStudentID uuid.UUID `gorm:"column:session_homework_student_student_id;type:uuid;not null;uniqueIndex:uq_session_homework_students_pair" json:"session_homework_student_student_id"`

	SessionHomeworkStudentTableNumber int `gorm:"column:session_homework_student_table_number;not null;default:0" json:"session_homework_student_table_number"`

	SessionHomeworkStudentCreatedAt time.Time `gorm:"column:session_homework_student_created_at;not null;autoCreateTime" json:"session_homework_student_created_at"`
	SessionHomeworkStudentUpdatedAt time.Time `gorm:"column:session_homework_student_updated_at;not null;autoUpdateTime" json:"session_homework_student_updated_at"`
}

// TableName overrides the table name used by GORM.
func (SessionHomeworkStudentModel) TableName() string {
	return "session_homework_students"
}
