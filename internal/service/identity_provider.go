package service

//go:generate mockgen -source=identity_provider.go -destination=mocks/identity_provider_mock.go -package=mocks

import (
	"context"
	"errors"

	"medical-directory-admin/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrIdentityExists     = errors.New("identity already exists")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IdentityUpdate lists the identity attributes to change. Nil fields are left untouched.
type IdentityUpdate struct {
	DisplayName   *string
	AvatarURL     *string
	EmailVerified *bool
}

// IdentityProvider owns credentials. Account IDs are the identity IDs it issues.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (*entity.Identity, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UpdateUser(ctx context.Context, id uuid.UUID, update IdentityUpdate) error
	Authenticate(ctx context.Context, email, password string) (*entity.Identity, error)
}
