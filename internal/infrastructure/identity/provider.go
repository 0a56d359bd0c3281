package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/repository"
	"medical-directory-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type provider struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewProvider returns the built-in identity provider backed by the identities table.
func NewProvider(db *gorm.DB, log *logrus.Logger) service.IdentityProvider {
	return &provider{db: db, log: log}
}

func (p *provider) CreateUser(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	identity := &entity.Identity{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
		DisplayName:  displayName,
	}
	if err := p.db.WithContext(ctx).Create(identity).Error; err != nil {
		if repository.IsDuplicateKeyError(err, "email") {
			return nil, service.ErrIdentityExists
		}
		return nil, fmt.Errorf("create identity: %w", err)
	}
	return identity, nil
}

func (p *provider) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result := p.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Identity{})
	if result.Error != nil {
		return fmt.Errorf("delete identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return service.ErrIdentityNotFound
	}
	return nil
}

func (p *provider) UpdateUser(ctx context.Context, id uuid.UUID, update service.IdentityUpdate) error {
	changes := map[string]interface{}{}
	if update.DisplayName != nil {
		changes["display_name"] = *update.DisplayName
	}
	if update.AvatarURL != nil {
		changes["avatar_url"] = *update.AvatarURL
	}
	if update.EmailVerified != nil {
		changes["email_verified"] = *update.EmailVerified
	}
	if len(changes) == 0 {
		return nil
	}

	result := p.db.WithContext(ctx).Model(&entity.Identity{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("update identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return service.ErrIdentityNotFound
	}
	return nil
}

func (p *provider) Authenticate(ctx context.Context, email, password string) (*entity.Identity, error) {
	var identity entity.Identity
	err := p.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}
	return &identity, nil
}
