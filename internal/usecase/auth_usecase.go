package usecase

//go:generate mockgen -source=auth_usecase.go -destination=mocks/auth_usecase_mock.go -package=mocks

import (
	"context"
	"errors"

	"medical-directory-admin/internal/converter"
	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/domain/entity"
	"medical-directory-admin/internal/domain/repository"
	"medical-directory-admin/internal/service"
	"medical-directory-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is not active")
	ErrNotStaff           = errors.New("account is not allowed to use the admin console")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.AccountResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	accountRepo  repository.AccountRepository
	identity     service.IdentityProvider
	sessions     service.SessionStore
	auditService service.AuditService
	jwtService   *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	identity service.IdentityProvider,
	sessions service.SessionStore,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		accountRepo:  accountRepo,
		identity:     identity,
		sessions:     sessions,
		auditService: auditService,
		jwtService:   jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	identity, err := u.identity.Authenticate(ctx, normalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to authenticate: %+v", err)
		return nil, err
	}

	account, err := u.staffAccount(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &account.ID, entity.AuditActionStaffLogin, "account", account.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if err := u.sessions.Revoke(ctx, service.AccessTokenKind, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if refreshTokenID != "" {
		if err := u.sessions.Revoke(ctx, service.RefreshTokenKind, refreshTokenID); err != nil {
			u.log.Warnf("Failed to delete refresh token: %+v", err)
			return err
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// consuming the old token makes it single use
	valid, err := u.sessions.Consume(ctx, service.RefreshTokenKind, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	// the account may have been deactivated since login
	account, err := u.staffAccount(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, account)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return converter.AccountToResponse(account), nil
}

func (u *authUsecase) staffAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := u.accountRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.RoleLabel != entity.RoleLabelAdmin {
		return nil, ErrNotStaff
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}
	return account, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, account *entity.Account) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(account.ID, account.Email, account.RoleLabel)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(account.ID, account.Email, account.RoleLabel)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, service.AccessTokenKind, account.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, service.RefreshTokenKind, account.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
