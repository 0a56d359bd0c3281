package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AvatarPayload struct {
	FileName    string `json:"file_name" validate:"omitempty,max=255"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
	Content     string `json:"content" validate:"required"`
}

type CreateDirectoryEntryRequest struct {
	Role      string         `json:"role" validate:"required,oneof=doctor paramedic clinic laboratory pharmacy association"`
	Name      string         `json:"name" validate:"required,min=2,max=255"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone" validate:"omitempty,max=32"`
	Region    string         `json:"region" validate:"omitempty,max=64"`
	SubRegion string         `json:"sub_region" validate:"omitempty,max=64"`
	Bio       string         `json:"bio" validate:"omitempty"`
	Avatar    *AvatarPayload `json:"avatar" validate:"omitempty"`
	Password  string         `json:"password" validate:"omitempty,min=6"`
	Metadata  map[string]any `json:"metadata"`
}

// UpdateDirectoryEntryRequest carries the fields to change. Nil fields keep their stored value.
type UpdateDirectoryEntryRequest struct {
	Role      *string        `json:"role" validate:"omitempty,oneof=doctor paramedic clinic laboratory pharmacy association"`
	Name      *string        `json:"name" validate:"omitempty,min=2,max=255"`
	Email     *string        `json:"email" validate:"omitempty,email"`
	Phone     *string        `json:"phone" validate:"omitempty,max=32"`
	Region    *string        `json:"region" validate:"omitempty,max=64"`
	SubRegion *string        `json:"sub_region" validate:"omitempty,max=64"`
	Bio       *string        `json:"bio" validate:"omitempty"`
	Avatar    *AvatarPayload `json:"avatar" validate:"omitempty"`
	Metadata  map[string]any `json:"metadata"`
}

type UpdateDirectoryEntryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ListDirectoryEntriesRequest struct {
	Role   string
	Status string
	Region string
	Search string
	Page   int
	Limit  int
}

// Response DTOs

type DirectoryEntryResponse struct {
	ID        uuid.UUID      `json:"id"`
	AccountID *uuid.UUID     `json:"account_id"`
	Role      string         `json:"role"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Region    string         `json:"region"`
	SubRegion string         `json:"sub_region"`
	AvatarURL string         `json:"avatar_url"`
	Bio       string         `json:"bio"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DirectoryEntryWriteResponse is returned by create and update. TemporaryPassword is set
// only when the write created a new account without a caller-supplied password.
type DirectoryEntryWriteResponse struct {
	Entry             DirectoryEntryResponse `json:"entry"`
	TemporaryPassword string                 `json:"temporary_password,omitempty"`
}

type DirectoryEntryListResponse struct {
	Entries []DirectoryEntryResponse `json:"entries"`
	Total   int64                    `json:"total"`
	Page    int                      `json:"-"`
	Limit   int                      `json:"-"`
}
