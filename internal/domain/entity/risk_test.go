package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"heatwave-api/internal/domain/entity"
)

func TestRiskTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        entity.RiskTier
	}{
		{"zero", 0.0, entity.RiskVeryLow},
		{"just below low", 0.1999, entity.RiskVeryLow},
		{"low boundary", 0.20, entity.RiskLow},
		{"mid low", 0.35, entity.RiskLow},
		{"moderate boundary", 0.40, entity.RiskModerate},
		{"mid moderate", 0.55, entity.RiskModerate},
		{"high boundary", 0.60, entity.RiskHigh},
		{"just below extreme", 0.7999, entity.RiskHigh},
		{"extreme boundary", 0.80, entity.RiskExtreme},
		{"one", 1.0, entity.RiskExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.RiskTierFor(tt.probability))
		})
	}
}

func TestRiskTierFor_Monotonic(t *testing.T) {
	previous := entity.RiskVeryLow
	for p := 0.0; p <= 1.0; p += 0.001 {
		tier := entity.RiskTierFor(p)
		assert.GreaterOrEqual(t, tier, previous, "tier regressed at probability %v", p)
		previous = tier
	}
}

func TestRiskTier_Labels(t *testing.T) {
	assert.Equal(t, "🔴 Extreme", entity.RiskExtreme.Label())
	assert.Equal(t, "🟠 High", entity.RiskHigh.Label())
	assert.Equal(t, "🟡 Moderate", entity.RiskModerate.Label())
	assert.Equal(t, "🟢 Low", entity.RiskLow.Label())
	assert.Equal(t, "🔵 Very Low", entity.RiskVeryLow.Label())
}

func TestRiskTier_Names(t *testing.T) {
	assert.Equal(t, "Extreme", entity.RiskExtreme.Name())
	assert.Equal(t, "High", entity.RiskHigh.Name())
	assert.Equal(t, "Moderate", entity.RiskModerate.Name())
	assert.Equal(t, "Low", entity.RiskLow.Name())
	assert.Equal(t, "Very Low", entity.RiskVeryLow.Name())
}
