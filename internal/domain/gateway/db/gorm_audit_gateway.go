package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"heatwave-api/internal/domain/entity"
)

type gormAuditGateway struct {
	db *gorm.DB
}

// NewGormAuditGateway creates an AuditGateway backed by postgres via gorm
// and migrates the prediction_audits table.
func NewGormAuditGateway(db *gorm.DB) (AuditGateway, error) {
	if err := db.AutoMigrate(&entity.PredictionAudit{}); err != nil {
		return nil, fmt.Errorf("failed to migrate prediction_audits: %w", err)
	}
	return &gormAuditGateway{db: db}, nil
}

func (gateway *gormAuditGateway) Save(audit entity.PredictionAudit) error {
	if err := gateway.db.Create(&audit).Error; err != nil {
		return fmt.Errorf("failed to save prediction audit %s: %w", audit.ID, err)
	}
	return nil
}

func (gateway *gormAuditGateway) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := gateway.db.Where("requested_at < ?", cutoff).Delete(&entity.PredictionAudit{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete prediction audits before %s: %w", cutoff.Format(time.RFC3339), result.Error)
	}
	return result.RowsAffected, nil
}
