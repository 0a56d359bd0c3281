package repository

import (
	"context"

	"medical-directory-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DirectoryEntryRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DirectoryEntry, error)
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.DirectoryEntry, error)
	FindByAccountAndRole(ctx context.Context, db *gorm.DB, accountID uuid.UUID, role entity.Role) (*entity.DirectoryEntry, error)
	FindAll(ctx context.Context, db *gorm.DB, filter entity.EntryFilter) ([]entity.DirectoryEntry, int64, error)
	Update(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.EntryStatus) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}

// RoleMetadataRepository reads and writes the satellite table selected by the role.
type RoleMetadataRepository interface {
	FindByEntryIDs(ctx context.Context, db *gorm.DB, role entity.Role, entryIDs []uuid.UUID) ([]entity.RoleMetadata, error)
	FindByEntryID(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (entity.RoleMetadata, error)
	Create(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error
	Update(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error
	Delete(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (int64, error)
}
