package repository

import (
	"context"
	"errors"

	"medical-directory-admin/internal/domain/entity"
	domainRepo "medical-directory-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type directoryEntryRepository struct{}

func NewDirectoryEntryRepository() domainRepo.DirectoryEntryRepository {
	return &directoryEntryRepository{}
}

func (r *directoryEntryRepository) Create(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *directoryEntryRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DirectoryEntry, error) {
	var entry entity.DirectoryEntry
	err := db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	return entryOrNil(&entry, err)
}

func (r *directoryEntryRepository) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.DirectoryEntry, error) {
	var entry entity.DirectoryEntry
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		First(&entry).Error
	return entryOrNil(&entry, err)
}

func (r *directoryEntryRepository) FindByAccountAndRole(ctx context.Context, db *gorm.DB, accountID uuid.UUID, role entity.Role) (*entity.DirectoryEntry, error) {
	var entry entity.DirectoryEntry
	err := db.WithContext(ctx).Where("account_id = ? AND role = ?", accountID, role).First(&entry).Error
	return entryOrNil(&entry, err)
}

func (r *directoryEntryRepository) FindAll(ctx context.Context, db *gorm.DB, filter entity.EntryFilter) ([]entity.DirectoryEntry, int64, error) {
	query := db.WithContext(ctx).Model(&entity.DirectoryEntry{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []entity.DirectoryEntry
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset())
	}
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *directoryEntryRepository) Update(ctx context.Context, db *gorm.DB, entry *entity.DirectoryEntry) error {
	return db.WithContext(ctx).Omit("created_at").Save(entry).Error
}

// UpdateStatus touches only status and updated_at.
// Returns affected rows: 0 means the entry no longer exists.
func (r *directoryEntryRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.EntryStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.DirectoryEntry{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *directoryEntryRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DirectoryEntry{})
	return result.RowsAffected, result.Error
}

func entryOrNil(entry *entity.DirectoryEntry, err error) (*entity.DirectoryEntry, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}
