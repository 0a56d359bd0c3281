package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medical-directory-admin/config"
	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/delivery/http/handler"
	"medical-directory-admin/internal/delivery/http/middleware"
	"medical-directory-admin/internal/usecase"
	"medical-directory-admin/internal/usecase/mocks"
	"medical-directory-admin/pkg/jwt"
	"medical-directory-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandler(t *testing.T) (*handler.AuthHandler, *mocks.MockAuthUsecase, *jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	uc := mocks.NewMockAuthUsecase(gomock.NewController(t))
	return handler.NewAuthHandler(uc, validator.NewValidator(), jwtService), uc, jwtService
}

func TestAuthHandler_LoginErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not staff", usecase.ErrNotStaff, http.StatusForbidden},
		{"inactive", usecase.ErrAccountInactive, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, _ := newAuthHandler(t)
			uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"staff@example.com","password":"secret1"}`)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h, uc, _ := newAuthHandler(t)
	uc.EXPECT().
		Login(gomock.Any(), &dto.LoginRequest{Email: "staff@example.com", Password: "secret1"}).
		Return(&dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60}, nil)

	rec, body := serve(http.HandlerFunc(h.Login), httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"staff@example.com","password":"secret1"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	rec, _ = serve(http.HandlerFunc(h.Login), httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"staff"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LogoutRevokesRefreshToken(t *testing.T) {
	h, uc, jwtService := newAuthHandler(t)
	refresh, refreshID, err := jwtService.GenerateRefreshToken(uuid.New(), "staff@example.com", "admin")
	require.NoError(t, err)
	uc.EXPECT().Logout(gomock.Any(), "access-id", refreshID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(`{"refresh_token":"`+refresh+`"}`))
	ctx := middleware.WithUser(req.Context(), uuid.New(), "staff@example.com", "admin")
	req = req.WithContext(context.WithValue(ctx, middleware.TokenIDKey, "access-id"))

	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_RefreshTokenRevoked(t *testing.T) {
	h, uc, _ := newAuthHandler(t)
	uc.EXPECT().RefreshToken(gomock.Any(), &dto.RefreshTokenRequest{RefreshToken: "used"}).Return(nil, usecase.ErrTokenRevoked)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(`{"refresh_token":"used"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	h, uc, _ := newAuthHandler(t)
	userID := uuid.New()
	uc.EXPECT().GetCurrentUser(gomock.Any(), userID).Return(&dto.AccountResponse{ID: userID, Role: "admin"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), userID, "staff@example.com", "admin"))
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetCurrentUser(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
