package db

import (
	"time"

	"heatwave-api/internal/domain/entity"
)

// AuditGateway persists prediction audit rows. It is only exercised when the
// audit pipeline is enabled; the prediction path itself never reads from it.
type AuditGateway interface {
	// Save inserts one audit row.
	Save(audit entity.PredictionAudit) error

	// DeleteOlderThan removes rows requested before the cutoff and returns
	// how many were removed.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
