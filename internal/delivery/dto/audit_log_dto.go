package dto

import (
	"time"

	"medical-directory-admin/internal/domain/entity"
)

// Request DTOs

type ListAuditLogsRequest struct {
	Page  int
	Limit int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64            `json:"id"`
	Actor     *AccountResponse `json:"actor"`
	Action    string           `json:"action"`
	Metadata  entity.JSON      `json:"metadata"`
	CreatedAt time.Time        `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"-"`
	Limit int                `json:"-"`
}
