// file: internals/features/users/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel menyimpan sha256 dari refresh token, bukan token mentah.
type RefreshTokenModel struct {
	RefreshTokenID     uuid.UUID `gorm:"column:refresh_token_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"refresh_token_id"`
	RefreshTokenUserID uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`

	RefreshTokenHash      string     `gorm:"column:refresh_token_hash;type:char(64);not null;uniqueIndex:uq_refresh_tokens_hash" json:"-"`
	RefreshTokenExpiresAt time.Time  `gorm:"column:refresh_token_expires_at;not null" json:"refresh_token_expires_at"`
	RefreshTokenRevokedAt *time.Time `gorm:"column:refresh_token_revoked_at" json:"refresh_token_revoked_at,omitempty"`

	// jejak perangkat untuk audit login
	RefreshTokenUserAgent string `gorm:"column:refresh_token_user_agent;type:varchar(255);not null;default:''" json:"-"`
	RefreshTokenIP        string `gorm:"column:refresh_token_ip;type:varchar(64);not null;default:''" json:"-"`

	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;not null;autoCreateTime" json:"refresh_token_created_at"`
}

// TableName overrides the table name used by GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
