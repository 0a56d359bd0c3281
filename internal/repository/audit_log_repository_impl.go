package repository

import (
	"context"
	"errors"

	"medical-directory-admin/internal/domain/entity"
	domainRepo "medical-directory-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Omit("Actor").Create(log).Error
}

func (r *auditLogRepository) FindAll(ctx context.Context, db *gorm.DB, page, limit int) ([]entity.AuditLog, int64, error) {
	query := db.WithContext(ctx).Model(&entity.AuditLog{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Limit(limit).Offset((page - 1) * limit)
	}
	err := query.Preload("Actor").Order("created_at DESC").Order("id DESC").Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.WithContext(ctx).Preload("Actor").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
