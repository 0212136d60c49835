package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwave-api/internal/application/controller"
	"heatwave-api/internal/domain/model"
	"heatwave-api/internal/infra/observability"
)

// --- mocks ---

type mockPredictionUseCase struct {
	response *model.PredictionResponse
	err      error
}

func (m *mockPredictionUseCase) Predict(_ model.PredictionRequest) (*model.PredictionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockPredictionUseCase) SupportedCities() model.CitiesResponse {
	return model.CitiesResponse{Cities: []string{"Delhi", "Mumbai"}}
}

func setup(useCase *mockPredictionUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("")
	controller.NewPredictionController(api, useCase, observability.NewMetricsForTesting()).InitPredictionRoutes()
	return e
}

func doPredict(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// --- tests ---

func TestPredict_OK(t *testing.T) {
	useCase := &mockPredictionUseCase{response: &model.PredictionResponse{
		City:      "Delhi",
		StartDate: "2024-05-15",
		Days:      1,
		Results: []model.DailyPrediction{{
			Date:        "2024-05-15",
			Probability: 0.83,
			Prediction:  1,
			RiskLevel:   "🔴 Extreme",
			Tier:        "Extreme",
		}},
	}}

	rec := doPredict(setup(useCase), `{"city":"Delhi","start_date":"2024-05-15","days":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Delhi", body["city"])

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)

	row, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2024-05-15", row["DATE"])
	assert.Equal(t, 0.83, row["Heatwave_Prob"])
	assert.Equal(t, float64(1), row["Heatwave_Pred"])
	assert.Equal(t, "🔴 Extreme", row["Risk_Level"])
	assert.NotContains(t, row, "Tier")
}

func TestPredict_ValidationErrorIs400(t *testing.T) {
	useCase := &mockPredictionUseCase{err: model.NewValidationError("days", "must be between 1 and 15, got 0")}

	rec := doPredict(setup(useCase), `{"city":"Delhi","days":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "days")
}

func TestPredict_ModelUnavailableIs503(t *testing.T) {
	useCase := &mockPredictionUseCase{err: model.ErrModelUnavailable}

	rec := doPredict(setup(useCase), `{"city":"Delhi"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestPredict_FeatureMismatchIs500(t *testing.T) {
	useCase := &mockPredictionUseCase{err: &model.FeatureMismatchError{Column: "T2M_MAX", Reason: "missing"}}

	rec := doPredict(setup(useCase), `{"city":"Delhi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPredict_DurationObservedOnError(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	e := echo.New()
	useCase := &mockPredictionUseCase{err: model.ErrModelUnavailable}
	controller.NewPredictionController(e.Group(""), useCase, metrics).InitPredictionRoutes()

	rec := doPredict(e, `{"city":"Delhi"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var observed dto.Metric
	require.NoError(t, metrics.PredictionDuration.Write(&observed))
	assert.Equal(t, uint64(1), observed.GetHistogram().GetSampleCount())
}

func TestPredict_MalformedBodyIs400(t *testing.T) {
	rec := doPredict(setup(&mockPredictionUseCase{}), `{"city":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindAllCities(t *testing.T) {
	e := setup(&mockPredictionUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body model.CitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Delhi", "Mumbai"}, body.Cities)
}
