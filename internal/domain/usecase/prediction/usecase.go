package prediction

import "heatwave-api/internal/domain/model"

type UseCase interface {
	// Predict validates the request and runs the classifier over each day of
	// the range, returning one chronological result per requested day
	Predict(request model.PredictionRequest) (*model.PredictionResponse, error)

	// SupportedCities returns the closed set of city names
	SupportedCities() model.CitiesResponse
}
