package model

// FeatureVector is the fixed-schema numeric input the classifier expects for
// one (city, date) pair. Columns carry the names in classifier order; the
// vector is transient and discarded after the prediction.
type FeatureVector struct {
	Columns []string
	Values  []float64
}
