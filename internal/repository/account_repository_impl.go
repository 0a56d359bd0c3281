package repository

import (
	"context"
	"errors"
	"time"

	"medical-directory-admin/internal/domain/entity"
	domainRepo "medical-directory-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Account Repository

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Omit("created_at").Save(account).Error
}

func (r *accountRepository) SetActive(ctx context.Context, db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}

func (r *accountRepository) UpdateAvatar(ctx context.Context, db *gorm.DB, id uuid.UUID, avatarURL string) error {
	return db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL).Error
}

// Account Profile Repository

type accountProfileRepository struct{}

func NewAccountProfileRepository() domainRepo.AccountProfileRepository {
	return &accountProfileRepository{}
}

func (r *accountProfileRepository) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uuid.UUID) (*entity.AccountProfile, error) {
	var profile entity.AccountProfile
	err := db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *accountProfileRepository) Upsert(ctx context.Context, db *gorm.DB, profile *entity.AccountProfile) error {
	if profile.VerificationStatus == "" {
		profile.VerificationStatus = entity.EntryStatusPending
	}
	return db.WithContext(ctx).Omit("Account").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"biography":      gorm.Expr("EXCLUDED.biography"),
			"specialization": gorm.Expr("EXCLUDED.specialization"),
			"license_number": gorm.Expr("EXCLUDED.license_number"),
			"address":        gorm.Expr("EXCLUDED.address"),
			"website":        gorm.Expr("EXCLUDED.website"),
			"working_hours":  gorm.Expr("EXCLUDED.working_hours"),
			"services":       gorm.Expr("EXCLUDED.services"),
			"metadata":       gorm.Expr("COALESCE(account_profiles.metadata, '{}'::jsonb) || COALESCE(EXCLUDED.metadata, '{}'::jsonb)"),
			"updated_at":     gorm.Expr("NOW()"),
		}),
	}).Create(profile).Error
}

func (r *accountProfileRepository) UpsertVerification(ctx context.Context, db *gorm.DB, accountID uuid.UUID, status entity.EntryStatus, verifiedAt *time.Time) error {
	profile := &entity.AccountProfile{
		AccountID:          accountID,
		VerificationStatus: status,
		VerifiedAt:         verifiedAt,
	}
	return db.WithContext(ctx).Omit("Account").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"verification_status", "verified_at", "updated_at"}),
	}).Create(profile).Error
}
