package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"heatwave-api/internal/domain/model"
	"heatwave-api/internal/domain/usecase/prediction"
	"heatwave-api/internal/infra/observability"
)

type PredictionController struct {
	api     *echo.Group
	useCase prediction.UseCase
	metrics *observability.Metrics
}

func NewPredictionController(api *echo.Group, useCase prediction.UseCase, metrics *observability.Metrics) *PredictionController {
	return &PredictionController{api: api, useCase: useCase, metrics: metrics}
}

// InitPredictionRoutes initializes prediction routes. Extra middleware (for
// example the rate limiter) only wraps the predict endpoint.
func (controller *PredictionController) InitPredictionRoutes(predictMiddleware ...echo.MiddlewareFunc) {
	controller.api.POST("/predict", controller.Predict, predictMiddleware...)
	controller.api.GET("/cities", controller.FindAllCities)
}

// Predict runs the heatwave classifier over the requested date range and
// returns one row per day. Validation problems come back as 400, a missing
// classifier as 503 and schema mismatches as 500.
func (controller *PredictionController) Predict(c echo.Context) error {
	var request model.PredictionRequest
	if err := c.Bind(&request); err != nil {
		controller.metrics.ValidationErrors.Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	started := time.Now()
	response, err := controller.useCase.Predict(request)
	controller.metrics.PredictionDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return controller.errorResponse(c, err)
	}

	peakRisk := ""
	peakProbability := -1.0
	for _, result := range response.Results {
		if result.Probability > peakProbability {
			peakProbability = result.Probability
			peakRisk = string(result.Tier)
		}
	}
	controller.metrics.PredictionsTotal.WithLabelValues(response.City, peakRisk).Inc()

	return c.JSON(http.StatusOK, response)
}

// FindAllCities returns the closed set of supported city names
func (controller *PredictionController) FindAllCities(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.SupportedCities())
}

// errorResponse maps domain errors to their HTTP status. Every failure body
// is {"error": "..."} to match what the dashboard expects.
func (controller *PredictionController) errorResponse(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		controller.metrics.ValidationErrors.Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	}

	if errors.Is(err, model.ErrModelUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	var mismatchErr *model.FeatureMismatchError
	if errors.As(err, &mismatchErr) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": mismatchErr.Error()})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
