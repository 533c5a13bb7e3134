package usecase

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 100
)

type AuditLogUsecase interface {
	// GetAll returns a page of logs, newest first, and the total count.
	GetAll(ctx context.Context, page, limit int) ([]entity.AuditLog, int64, error)
	GetByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// NormalizePage clamps audit log paging to the accepted range.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	return page, limit
}

func (u *auditLogUsecase) GetAll(ctx context.Context, page, limit int) ([]entity.AuditLog, int64, error) {
	page, limit = NormalizePage(page, limit)

	logs, total, err := u.auditLogRepo.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, 0, err
	}
	return logs, total, nil
}

func (u *auditLogUsecase) GetByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, notFound(ErrAuditLogNotFound, id)
	}
	return auditLog, nil
}
