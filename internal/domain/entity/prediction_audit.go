package entity

import "time"

// PredictionAudit is one persisted row per served prediction request,
// written asynchronously by the audit worker. It never feeds back into the
// prediction path.
type PredictionAudit struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	City           string    `json:"city"`
	StartDate      string    `json:"startDate"`
	Days           int       `json:"days"`
	MaxProbability float64   `json:"maxProbability"`
	PeakRisk       string    `json:"peakRisk"`
	RequestedAt    time.Time `json:"requestedAt" gorm:"index"`
}

// TableName sets the gorm table name.
func (PredictionAudit) TableName() string {
	return "prediction_audits"
}
