package service

import (
	"context"
	"fmt"
	"strings"

	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedAdmin makes sure an active admin account exists for email.
// An existing account is promoted and activated, its credentials are left alone.
func SeedAdmin(
	ctx context.Context,
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	identity IdentityProvider,
	email, password, name string,
) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	account, err := accountRepo.FindByEmail(ctx, db, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAccountWrite, err)
	}

	if account != nil {
		if account.RoleLabel == entity.RoleLabelAdmin && account.IsActive {
			return nil
		}
		account.RoleLabel = entity.RoleLabelAdmin
		account.IsActive = true
		if err := accountRepo.Update(ctx, db, account); err != nil {
			return fmt.Errorf("%w: %w", ErrAccountWrite, err)
		}
		log.WithField("account_id", account.ID).Info("Promoted existing account to admin")
		return nil
	}

	if password == "" {
		return fmt.Errorf("%w: admin password is required to create %s", ErrIdentityProvider, email)
	}

	created, err := identity.CreateUser(ctx, email, password, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIdentityProvider, err)
	}

	account = &entity.Account{
		ID:            created.ID,
		Email:         email,
		FullName:      strings.TrimSpace(name),
		RoleLabel:     entity.RoleLabelAdmin,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := accountRepo.Create(ctx, db, account); err != nil {
		if delErr := identity.DeleteUser(context.WithoutCancel(ctx), created.ID); delErr != nil {
			log.Errorf("Failed to delete orphaned identity: %+v", delErr)
		}
		return fmt.Errorf("%w: %w", ErrAccountWrite, err)
	}

	log.WithField("account_id", account.ID).Info("Seeded admin account")
	return nil
}
