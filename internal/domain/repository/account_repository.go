package repository

import (
	"context"
	"time"

	"medical-directory-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *entity.Account) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error)
	Update(ctx context.Context, db *gorm.DB, account *entity.Account) error
	SetActive(ctx context.Context, db *gorm.DB, id uuid.UUID, active bool) (int64, error)
	UpdateAvatar(ctx context.Context, db *gorm.DB, id uuid.UUID, avatarURL string) error
}

type AccountProfileRepository interface {
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.AccountProfile, error)
	// Upsert writes the profile fields and merges Metadata into the stored blob.
	Upsert(ctx context.Context, db *gorm.DB, profile *entity.AccountProfile) error
	UpsertVerification(ctx context.Context, db *gorm.DB, accountID uuid.UUID, status entity.EntryStatus, verifiedAt *time.Time) error
}
