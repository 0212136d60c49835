package health

import "heatwave-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
