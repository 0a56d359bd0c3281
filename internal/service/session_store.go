package service

//go:generate mockgen -source=session_store.go -destination=mocks/session_store_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenKind separates access and refresh sessions in the store
type TokenKind string

const (
	AccessTokenKind  TokenKind = "access_token"
	RefreshTokenKind TokenKind = "refresh_token"
)

// SessionStore tracks the issued tokens that have not been revoked.
type SessionStore interface {
	Save(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	// Consume deletes the token and reports whether it was present.
	Consume(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind TokenKind, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
