package prediction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwave-api/internal/domain/entity"
	"heatwave-api/internal/domain/feature"
	"heatwave-api/internal/domain/model"
	"heatwave-api/internal/domain/usecase/prediction"
)

// --- mocks ---

type mockClassifier struct {
	columns     []string
	loaded      bool
	probability float64
	err         error
}

func (m *mockClassifier) PredictProbability(_ model.FeatureVector) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.probability, nil
}

func (m *mockClassifier) FeatureColumns() []string { return m.columns }

func (m *mockClassifier) Loaded() bool { return m.loaded }

type mockSender struct {
	sent chan sentMessage
}

type sentMessage struct {
	queueName string
	body      any
}

func (m *mockSender) SendMessage(queueName string, body any) error {
	m.sent <- sentMessage{queueName: queueName, body: body}
	return nil
}

var testColumns = []string{"DOY", "MONTH", "T2M_MAX"}

func newUseCase(clf *mockClassifier) prediction.UseCase {
	return prediction.NewPredictionUseCase(clf, feature.NewDeriver(testColumns), nil, "", 7, 15, 0.5)
}

func intPtr(v int) *int { return &v }

// --- tests ---

func TestPredict_HappyPath(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.72}
	useCase := newUseCase(clf)

	response, err := useCase.Predict(model.PredictionRequest{
		City:      "Delhi",
		StartDate: "2024-05-15",
		Days:      intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "Delhi", response.City)
	assert.Equal(t, "2024-05-15", response.StartDate)
	assert.Equal(t, 3, response.Days)
	require.Len(t, response.Results, 3)

	assert.Equal(t, "2024-05-15", response.Results[0].Date)
	assert.Equal(t, "2024-05-16", response.Results[1].Date)
	assert.Equal(t, "2024-05-17", response.Results[2].Date)

	for _, result := range response.Results {
		assert.Equal(t, 0.72, result.Probability)
		assert.Equal(t, 1, result.Prediction)
		assert.Equal(t, "🟠 High", result.RiskLevel)
		assert.Equal(t, model.RiskName("High"), result.Tier)
	}
}

func TestPredict_BinaryThreshold(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        int
	}{
		{"below threshold", 0.49, 0},
		{"at threshold", 0.50, 1},
		{"above threshold", 0.51, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := &mockClassifier{columns: testColumns, loaded: true, probability: tt.probability}
			response, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Mumbai", Days: intPtr(1)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, response.Results[0].Prediction)
		})
	}
}

func TestPredict_DefaultDays(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.1}

	response, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Chennai"})
	require.NoError(t, err)

	assert.Equal(t, 7, response.Days)
	assert.Len(t, response.Results, 7)
}

func TestPredict_DefaultStartDateIsToday(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.1}

	response, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Kolkata", Days: intPtr(1)})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), response.StartDate)
}

func TestPredict_DaysBounds(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.1}
	useCase := newUseCase(clf)

	var validation *model.ValidationError

	_, err := useCase.Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(0)})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "days", validation.Field)

	_, err = useCase.Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(16)})
	require.ErrorAs(t, err, &validation)

	_, err = useCase.Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(-3)})
	require.ErrorAs(t, err, &validation)

	response, err := useCase.Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(15)})
	require.NoError(t, err)
	assert.Len(t, response.Results, 15)

	response, err = useCase.Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(1)})
	require.NoError(t, err)
	assert.Len(t, response.Results, 1)
}

func TestPredict_CityValidation(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.1}
	useCase := newUseCase(clf)

	var validation *model.ValidationError

	_, err := useCase.Predict(model.PredictionRequest{City: ""})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "city", validation.Field)

	_, err = useCase.Predict(model.PredictionRequest{City: "Gotham"})
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Error(), "Delhi")
	assert.Contains(t, validation.Error(), "Chandigarh")
}

func TestPredict_StartDateValidation(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.1}

	var validation *model.ValidationError
	_, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Delhi", StartDate: "15-05-2024"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "start_date", validation.Field)
}

func TestPredict_ModelUnavailable(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: false}

	_, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(1)})
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}

func TestPredict_ValidationBeforeModelCheck(t *testing.T) {
	// a bad request is still a 4xx even while the model is down
	clf := &mockClassifier{columns: testColumns, loaded: false}

	var validation *model.ValidationError
	_, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Gotham"})
	assert.ErrorAs(t, err, &validation)
}

func TestPredict_RejectsOutOfRangeProbability(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 1.5}

	_, err := newUseCase(clf).Predict(model.PredictionRequest{City: "Delhi", Days: intPtr(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,1]")
}

func TestPredict_PublishesAudit(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true, probability: 0.85}
	sender := &mockSender{sent: make(chan sentMessage, 1)}
	useCase := prediction.NewPredictionUseCase(clf, feature.NewDeriver(testColumns), sender, "audit-queue", 7, 15, 0.5)

	_, err := useCase.Predict(model.PredictionRequest{City: "Delhi", StartDate: "2024-05-15", Days: intPtr(2)})
	require.NoError(t, err)

	select {
	case message := <-sender.sent:
		assert.Equal(t, "audit-queue", message.queueName)
		audit, ok := message.body.(entity.PredictionAudit)
		require.True(t, ok)
		assert.NotEmpty(t, audit.ID)
		assert.Equal(t, "Delhi", audit.City)
		assert.Equal(t, "2024-05-15", audit.StartDate)
		assert.Equal(t, 2, audit.Days)
		assert.Equal(t, 0.85, audit.MaxProbability)
		assert.Equal(t, "Extreme", audit.PeakRisk)
	case <-time.After(2 * time.Second):
		t.Fatal("audit event was not published")
	}
}

func TestSupportedCities(t *testing.T) {
	clf := &mockClassifier{columns: testColumns, loaded: true}

	response := newUseCase(clf).SupportedCities()
	assert.Equal(t, entity.CityNames(), response.Cities)
}
