package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;index" json:"student_user_id"`

	// Group & Brand wajib, dua-duanya milik user yang sama dengan student
	StudentGroupID uuid.UUID `gorm:"column:student_group_id;type:uuid;not null;index" json:"student_group_id"`
	StudentBrandID uuid.UUID `gorm:"column:student_brand_id;type:uuid;not null;index" json:"student_brand_id"`

	StudentFullName string `gorm:"column:student_full_name;type:varchar(200);not null" json:"student_full_name"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (StudentModel) TableName() string {
	return "students"
}
