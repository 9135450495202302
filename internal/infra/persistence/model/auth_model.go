package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthAuthorizationModel mirrors the 'oauth_authorizations' table.
// ProviderUserID carries the UNIQUE constraint the upsert conflicts on.
type OAuthAuthorizationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID     int       `gorm:"not null"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	AccessToken    string    `gorm:"type:text;not null"`
	RefreshToken   string    `gorm:"type:text"`
	ExpiresAt      *time.Time
	Scope          string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthAuthorizationModel) TableName() string {
	return "oauth_authorizations"
}
