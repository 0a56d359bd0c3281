package repository

import (
	"context"

	"medical-directory-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindAll(ctx context.Context, db *gorm.DB, page, limit int) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
}
