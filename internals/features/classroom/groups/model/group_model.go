package model

import (
	"time"

	"github.com/google/uuid"
)

type GroupModel struct {
	GroupID     uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	GroupUserID uuid.UUID `gorm:"column:group_user_id;type:uuid;not null;uniqueIndex:uq_groups_name_per_user" json:"group_user_id"`

	GroupName string `gorm:"column:group_name;type:varchar(120);not null;uniqueIndex:uq_groups_name_per_user" json:"group_name"`

	GroupCreatedAt time.Time `gorm:"column:group_created_at;not null;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time `gorm:"column:group_updated_at;not null;autoUpdateTime" json:"group_updated_at"`
}

// TableName overrides the table name used by GORM.
func (GroupModel) TableName() string {
	return "groups"
}
