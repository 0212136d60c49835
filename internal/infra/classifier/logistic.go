package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"heatwave-api/internal/domain/model"
)

// artifact is the on-disk form of the pre-trained calibrated classifier:
// feature schema, standardization parameters, logistic coefficients and
// Platt calibration. It is produced by the offline training pipeline and
// treated as opaque configuration here.
type artifact struct {
	FeatureColumns []string  `json:"feature_columns"`
	Means          []float64 `json:"means"`
	Scales         []float64 `json:"scales"`
	Coefficients   []float64 `json:"coefficients"`
	Intercept      float64   `json:"intercept"`
	Calibration    struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
	} `json:"calibration"`
}

// LogisticClassifier serves probabilities from a loaded artifact. All state
// is immutable after Load, so concurrent use needs no locking.
type LogisticClassifier struct {
	art *artifact
}

// Load reads and validates the classifier artifact. It is called once at
// startup; a failure here leaves the service degraded until restart.
func Load(path string) (*LogisticClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse classifier artifact %s: %w", path, err)
	}

	if len(art.FeatureColumns) == 0 {
		return nil, fmt.Errorf("classifier artifact %s declares no feature columns", path)
	}
	n := len(art.FeatureColumns)
	if len(art.Means) != n || len(art.Scales) != n || len(art.Coefficients) != n {
		return nil, fmt.Errorf("classifier artifact %s is inconsistent: %d columns, %d means, %d scales, %d coefficients",
			path, n, len(art.Means), len(art.Scales), len(art.Coefficients))
	}
	for i, scale := range art.Scales {
		if scale == 0 {
			return nil, fmt.Errorf("classifier artifact %s has zero scale for column %s", path, art.FeatureColumns[i])
		}
	}

	return &LogisticClassifier{art: &art}, nil
}

// Unavailable returns a classifier that rejects every prediction with
// model.ErrModelUnavailable. Used when the artifact failed to load so the
// rest of the service can still start and report its state.
func Unavailable() *LogisticClassifier {
	return &LogisticClassifier{}
}

// Loaded reports whether an artifact is in memory.
func (c *LogisticClassifier) Loaded() bool {
	return c.art != nil
}

// FeatureColumns returns the trained column names in model order.
func (c *LogisticClassifier) FeatureColumns() []string {
	if c.art == nil {
		return nil
	}
	columns := make([]string, len(c.art.FeatureColumns))
	copy(columns, c.art.FeatureColumns)
	return columns
}

// PredictProbability standardizes the vector, applies the logistic model and
// the Platt calibration. The sigmoid keeps the result strictly inside [0,1].
func (c *LogisticClassifier) PredictProbability(features model.FeatureVector) (float64, error) {
	if c.art == nil {
		return 0, model.ErrModelUnavailable
	}

	if len(features.Values) != len(c.art.FeatureColumns) || len(features.Columns) != len(c.art.FeatureColumns) {
		return 0, &model.FeatureMismatchError{
			Column: "",
			Reason: fmt.Sprintf("expected %d features, got %d names and %d values",
				len(c.art.FeatureColumns), len(features.Columns), len(features.Values)),
		}
	}
	for i, column := range c.art.FeatureColumns {
		if features.Columns[i] != column {
			return 0, &model.FeatureMismatchError{
				Column: column,
				Reason: fmt.Sprintf("position %d holds %q", i, features.Columns[i]),
			}
		}
	}

	score := c.art.Intercept
	for i, value := range features.Values {
		score += c.art.Coefficients[i] * (value - c.art.Means[i]) / c.art.Scales[i]
	}

	return sigmoid(c.art.Calibration.A*score + c.art.Calibration.B), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
