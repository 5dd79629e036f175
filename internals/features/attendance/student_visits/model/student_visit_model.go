// file: internals/features/attendance/student_visits/model/student_visit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudentVisitModel struct {
	StudentVisitID     uuid.UUID `gorm:"column:student_visit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_visit_id"`
	StudentVisitUserID uuid.UUID `gorm:"column:student_visit_user_id;type:uuid;not null;uniqueIndex:uq_student_visits_day" json:"student_visit_user_id"`

	StudentVisitStudentID uuid.UUID      `gorm:"column:student_visit_student_id;type:uuid;not null;uniqueIndex:uq_student_visits_day" json:"student_visit_student_id"`
	StudentVisitDate      datatypes.Date `gorm:"column:student_visit_date;type:date;not null;uniqueIndex:uq_student_visits_day" json:"student_visit_date"`

	StudentVisitIsPresent bool    `gorm:"column:student_visit_is_present;not null;default:true" json:"student_visit_is_present"`
	StudentVisitNotes     *string `gorm:"column:student_visit_notes;type:text" json:"student_visit_notes,omitempty"`

	StudentVisitCreatedAt time.Time `gorm:"column:student_visit_created_at;not null;autoCreateTime" json:"student_visit_created_at"`
	StudentVisitUpdatedAt time.Time `gorm:"column:student_visit_updated_at;not null;autoUpdateTime" json:"student_visit_updated_at"`
}

// TableName overrides the table name used by GORM.
func (StudentVisitModel) TableName() string {
	return "student_visits"
}
