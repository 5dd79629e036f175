package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TableLayoutModel struct {
	TableLayoutID     uuid.UUID `gorm:"column:table_layout_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"table_layout_id"`
	TableLayoutUserID uuid.UUID `gorm:"column:table_layout_user_id;type:uuid;not null;index" json:"table_layout_user_id"`

	TableLayoutName string `gorm:"column:table_layout_name;type:varchar(120);not null" json:"table_layout_name"`

	// Jumlah meja per baris, urut dari depan. Hanya dipakai UI untuk menggambar grid tempat duduk.
	TableLayoutRows pq.Int64Array `gorm:"column:table_layout_rows;type:integer[];not null" json:"table_layout_rows"`

	TableLayoutCreatedAt time.Time `gorm:"column:table_layout_created_at;not null;autoCreateTime" json:"table_layout_created_at"`
	TableLayoutUpdatedAt time.Time `gorm:"column:table_layout_updated_at;not null;autoUpdateTime" json:"table_layout_updated_at"`
}

// TableName overrides the table name used by GORM.
func (TableLayoutModel) TableName() string {
	return "table_layouts"
}
