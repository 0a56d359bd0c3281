package converter

import (
	"medical-directory-admin/internal/delivery/dto"
	"medical-directory-admin/internal/domain/entity"
)

// AccountToResponse converts an Account entity to AccountResponse DTO
func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}

	return &dto.AccountResponse{
		ID:            account.ID,
		Email:         account.Email,
		FullName:      account.FullName,
		Role:          account.RoleLabel,
		IsActive:      account.IsActive,
		EmailVerified: account.EmailVerified,
		AvatarURL:     account.AvatarURL,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}
