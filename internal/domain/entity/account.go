package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the platform-wide user record. Its ID is the identity provider's user ID.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName      string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone         string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Region        string    `gorm:"type:varchar(64)" json:"region,omitempty"`
	SubRegion     string    `gorm:"type:varchar(64)" json:"sub_region,omitempty"`
	RoleLabel     string    `gorm:"type:varchar(32);not null;index" json:"role"`
	IsActive      bool      `gorm:"not null;default:false;index" json:"is_active"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	AvatarURL     string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountProfile carries cross-cutting fields mirrored from role metadata
type AccountProfile struct {
	AccountID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"account_id"`
	Biography          string      `gorm:"type:text" json:"biography,omitempty"`
	Specialization     string      `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	LicenseNumber      string      `gorm:"type:varchar(64)" json:"license_number,omitempty"`
	Address            string      `gorm:"type:text" json:"address,omitempty"`
	Website            string      `gorm:"type:text" json:"website,omitempty"`
	WorkingHours       JSON        `gorm:"type:jsonb" json:"working_hours,omitempty"`
	Services           JSON        `gorm:"type:jsonb" json:"services,omitempty"`
	Metadata           JSON        `gorm:"type:jsonb" json:"metadata,omitempty"`
	VerificationStatus EntryStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"verification_status"`
	VerifiedAt         *time.Time  `json:"verified_at,omitempty"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (AccountProfile) TableName() string {
	return "account_profiles"
}
