package classifier

import "heatwave-api/internal/domain/model"

// Classifier is the pre-trained probabilistic model behind the prediction
// service. Implementations are loaded once at process start, never mutated
// afterwards, and must be safe for concurrent read-only use.
type Classifier interface {
	// PredictProbability returns the heatwave probability in [0,1] for one
	// feature vector. Fails with model.ErrModelUnavailable when no artifact
	// is loaded and with a FeatureMismatchError when the vector's schema
	// does not match the trained one.
	PredictProbability(features model.FeatureVector) (float64, error)

	// FeatureColumns returns the trained column names in model order.
	FeatureColumns() []string

	// Loaded reports whether a usable artifact is in memory.
	Loaded() bool
}
