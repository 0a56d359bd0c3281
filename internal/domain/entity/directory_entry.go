package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryStatus represents the approval state of a directory entry
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

// ParseEntryStatus returns the status matching s, case-insensitively.
func ParseEntryStatus(s string) (EntryStatus, bool) {
	switch EntryStatus(strings.ToLower(strings.TrimSpace(s))) {
	case EntryStatusPending:
		return EntryStatusPending, true
	case EntryStatusApproved:
		return EntryStatusApproved, true
	case EntryStatusRejected:
		return EntryStatusRejected, true
	}
	return "", false
}

// OrPending maps absent or unknown values to pending.
func (s EntryStatus) OrPending() EntryStatus {
	if status, ok := ParseEntryStatus(string(s)); ok {
		return status
	}
	return EntryStatusPending
}

// DirectoryEntry is the role-agnostic record of a listed professional or organization.
// Role-specific attributes live in the satellite table selected by Role.
type DirectoryEntry struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AccountID *uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:uq_directory_entries_account_role" json:"account_id"`
	Role      Role        `gorm:"type:varchar(32);not null;index;uniqueIndex:uq_directory_entries_account_role" json:"role"`
	Name      string      `gorm:"type:varchar(255);not null" json:"name"`
	Email     string      `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string      `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Region    string      `gorm:"type:varchar(64);index" json:"region,omitempty"`
	SubRegion string      `gorm:"type:varchar(64)" json:"sub_region,omitempty"`
	AvatarURL string      `gorm:"type:text" json:"avatar_url,omitempty"`
	Bio       string      `gorm:"type:text" json:"bio,omitempty"`
	Status    EntryStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	Metadata  JSON        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DirectoryEntry) TableName() string {
	return "directory_entries"
}

// IsApproved checks if the entry is in approved status
func (e *DirectoryEntry) IsApproved() bool {
	return e.Status == EntryStatusApproved
}

// EntryFilter narrows directory entry listings
type EntryFilter struct {
	Role   Role
	Status EntryStatus
	Region string
	Search string
	Page   int
	Limit  int
}

// Offset returns the row offset for the filter's page.
func (f EntryFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
