package service

import (
	"context"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail rows inside the caller's transaction so the
// audit entry commits or rolls back together with the mutation it records.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue interface{}) error
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

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	}
	return s.write(tx, actor, action, metadata)
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}
	return s.write(tx, actor, action, metadata)
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	}
	return s.write(tx, actor, action, metadata)
}

func (s *auditService) write(tx *gorm.DB, actor string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Actor:    actor,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to write audit log: %+v", err)
		return err
	}
	return nil
}
