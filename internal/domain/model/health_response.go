package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of an application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse reports overall status plus the classifier-loaded flag and
// expected feature count the dashboard polls for.
type HealthResponse struct {
	Status       HealthStatus          `json:"status"`
	ModelLoaded  bool                  `json:"model_loaded"`
	FeatureCount int                   `json:"feature_count"`
	Model        ComponentHealthStatus `json:"model"`
	Cache        ComponentHealthStatus `json:"cache"`
}
