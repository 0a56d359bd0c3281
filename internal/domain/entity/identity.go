package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity holds credentials owned by the identity provider
type Identity struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"type:text;not null" json:"-"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	DisplayName   string    `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	AvatarURL     string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Identity) TableName() string {
	return "identities"
}
