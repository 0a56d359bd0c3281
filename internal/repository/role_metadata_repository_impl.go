package repository

import (
	"context"
	"errors"
	"fmt"

	"medical-directory-admin/internal/domain/entity"
	domainRepo "medical-directory-admin/internal/domain/repository"
	"medical-directory-admin/internal/rolemeta"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownRole = errors.New("unknown role")

type roleMetadataRepository struct{}

func NewRoleMetadataRepository() domainRepo.RoleMetadataRepository {
	return &roleMetadataRepository{}
}

// FindByEntryIDs loads every satellite row of role whose entry is in entryIDs with a single query.
func (r *roleMetadataRepository) FindByEntryIDs(ctx context.Context, db *gorm.DB, role entity.Role, entryIDs []uuid.UUID) ([]entity.RoleMetadata, error) {
	if len(entryIDs) == 0 {
		return []entity.RoleMetadata{}, nil
	}
	db = db.WithContext(ctx)
	switch role {
	case entity.RoleDoctor:
		return findDetails[entity.DoctorDetails](db, entryIDs)
	case entity.RoleParamedic:
		return findDetails[entity.ParamedicDetails](db, entryIDs)
	case entity.RoleClinic:
		return findDetails[entity.ClinicDetails](db, entryIDs)
	case entity.RoleLaboratory:
		return findDetails[entity.LaboratoryDetails](db, entryIDs)
	case entity.RolePharmacy:
		return findDetails[entity.PharmacyDetails](db, entryIDs)
	case entity.RoleAssociation:
		return findDetails[entity.AssociationDetails](db, entryIDs)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
}

func findDetails[T any, P interface {
	*T
	entity.RoleMetadata
}](db *gorm.DB, entryIDs []uuid.UUID) ([]entity.RoleMetadata, error) {
	var rows []T
	if err := db.Where("entry_id IN ?", entryIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.RoleMetadata, 0, len(rows))
	for i := range rows {
		out = append(out, P(&rows[i]))
	}
	return out, nil
}

func (r *roleMetadataRepository) FindByEntryID(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (entity.RoleMetadata, error) {
	schema, ok := rolemeta.Lookup(role)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	md := schema.New()
	err := db.WithContext(ctx).Where("entry_id = ?", entryID).First(md).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return md, nil
}

func (r *roleMetadataRepository) Create(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error {
	return db.WithContext(ctx).Create(md).Error
}

// Update overwrites every column of the row keyed by md's entry ID, zero values included.
func (r *roleMetadataRepository) Update(ctx context.Context, db *gorm.DB, md entity.RoleMetadata) error {
	return db.WithContext(ctx).Model(md).
		Select("*").
		Omit("entry_id", "created_at").
		Updates(md).Error
}

// Delete is idempotent: a missing row yields zero affected rows and no error.
func (r *roleMetadataRepository) Delete(ctx context.Context, db *gorm.DB, role entity.Role, entryID uuid.UUID) (int64, error) {
	schema, ok := rolemeta.Lookup(role)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	result := db.WithContext(ctx).Where("entry_id = ?", entryID).Delete(schema.New())
	return result.RowsAffected, result.Error
}
