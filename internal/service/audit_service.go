package service

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/requestctx"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// AuditService records who changed which row. Recording never fails the
// caller: a failed write is logged and dropped.
type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID int64, newValue interface{})
	LogUpdate(ctx context.Context, entityName string, entityID int64, oldValue, newValue interface{})
	LogDelete(ctx context.Context, entityName string, entityID int64, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID int64, newValue interface{}) {
	s.record(ctx, entity.AuditActionCreate, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID int64, oldValue, newValue interface{}) {
	s.record(ctx, entity.AuditActionUpdate, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID int64, oldValue interface{}) {
	s.record(ctx, entity.AuditActionDelete, entityName, entityID, oldValue, nil)
}

func (s *auditService) record(ctx context.Context, action, entityName string, entityID int64, oldValue, newValue interface{}) {
	auditLog := &entity.AuditLog{
		Action:   action,
		Entity:   entityName,
		EntityID: entityID,
		Metadata: datatypes.JSONMap{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}
	if userID, ok := requestctx.UserID(ctx); ok {
		auditLog.UserID = &userID
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.WithFields(logrus.Fields{
			"action":    action,
			"entity":    entityName,
			"entity_id": entityID,
		}).Warnf("Failed to create audit log: %+v", err)
	}
}
