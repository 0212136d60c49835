package health

import (
	"context"
	"strconv"
	"time"

	"heatwave-api/internal/domain/gateway/classifier"
	"heatwave-api/internal/domain/model"
)

// CachePinger reports reachability of the optional redis cache.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type healthUseCase struct {
	clf   classifier.Classifier
	cache CachePinger // nil when redis-backed features are disabled
}

// NewHealthUseCase wires the health check over the classifier and the
// optional cache. cache may be nil.
func NewHealthUseCase(clf classifier.Classifier, cache CachePinger) UseCase {
	return &healthUseCase{clf: clf, cache: cache}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	modelHealth := useCase.modelHealth()
	cacheHealth := useCase.cacheHealth()

	// the cache is optional, only the classifier gates overall status
	overallStatus := model.StatusUp
	if modelHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	featureCount := len(useCase.clf.FeatureColumns())

	return model.HealthResponse{
		Status:       overallStatus,
		ModelLoaded:  useCase.clf.Loaded(),
		FeatureCount: featureCount,
		Model:        modelHealth,
		Cache:        cacheHealth,
	}
}

func (useCase *healthUseCase) modelHealth() model.ComponentHealthStatus {
	status := model.StatusUp
	if !useCase.clf.Loaded() {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"loaded":        strconv.FormatBool(useCase.clf.Loaded()),
			"feature_count": strconv.Itoa(len(useCase.clf.FeatureColumns())),
		},
	}
}

func (useCase *healthUseCase) cacheHealth() model.ComponentHealthStatus {
	if useCase.cache == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "cache disabled"},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := useCase.cache.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"message": "connected"},
	}
}
