package model

import (
	"time"

	"github.com/google/uuid"
)

type BrandModel struct {
	BrandID     uuid.UUID `gorm:"column:brand_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"brand_id"`
	BrandUserID uuid.UUID `gorm:"column:brand_user_id;type:uuid;not null;uniqueIndex:uq_brands_name_per_user" json:"brand_user_id"`

	BrandName string `gorm:"column:brand_name;type:varchar(120);not null;uniqueIndex:uq_brands_name_per_user" json:"brand_name"`

	BrandCreatedAt time.Time `gorm:"column:brand_created_at;not null;autoCreateTime" json:"brand_created_at"`
	BrandUpdatedAt time.Time `gorm:"column:brand_updated_at;not null;autoUpdateTime" json:"brand_updated_at"`
}

// TableName overrides the table name used by GORM.
func (BrandModel) TableName() string {
	return "brands"
}
