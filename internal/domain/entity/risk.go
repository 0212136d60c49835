package entity

// RiskTier is one of five ordered heatwave risk labels derived from a
// probability. Thresholds are inclusive lower bounds and are a compatibility
// contract with existing dashboard clients; do not recalibrate them.
type RiskTier int

const (
	RiskVeryLow RiskTier = iota
	RiskLow
	RiskModerate
	RiskHigh
	RiskExtreme
)

const (
	extremeThreshold  = 0.80
	highThreshold     = 0.60
	moderateThreshold = 0.40
	lowThreshold      = 0.20
)

// RiskTierFor maps a probability in [0,1] to its risk tier. Boundary values
// round to the higher tier.
func RiskTierFor(probability float64) RiskTier {
	switch {
	case probability >= extremeThreshold:
		return RiskExtreme
	case probability >= highThreshold:
		return RiskHigh
	case probability >= moderateThreshold:
		return RiskModerate
	case probability >= lowThreshold:
		return RiskLow
	default:
		return RiskVeryLow
	}
}

// Name returns the bare tier name.
func (t RiskTier) Name() string {
	switch t {
	case RiskExtreme:
		return "Extreme"
	case RiskHigh:
		return "High"
	case RiskModerate:
		return "Moderate"
	case RiskLow:
		return "Low"
	default:
		return "Very Low"
	}
}

// Label returns the indicator-prefixed form the dashboard pattern-matches on,
// e.g. "🟠 High".
func (t RiskTier) Label() string {
	switch t {
	case RiskExtreme:
		return "🔴 Extreme"
	case RiskHigh:
		return "🟠 High"
	case RiskModerate:
		return "🟡 Moderate"
	case RiskLow:
		return "🟢 Low"
	default:
		return "🔵 Very Low"
	}
}

func (t RiskTier) String() string {
	return t.Name()
}
