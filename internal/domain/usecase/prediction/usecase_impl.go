package prediction

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"heatwave-api/internal/domain/entity"
	"heatwave-api/internal/domain/feature"
	"heatwave-api/internal/domain/gateway/classifier"
	"heatwave-api/internal/domain/gateway/queue"
	"heatwave-api/internal/domain/model"
	"heatwave-api/pkg/log"
	"heatwave-api/pkg/msg"
)

const dateLayout = "2006-01-02"

type predictionUseCase struct {
	clf             classifier.Classifier
	deriver         *feature.Deriver
	queueSender     queue.Sender // nil when the audit pipeline is disabled
	auditQueueName  string
	defaultDays     int
	maxDays         int
	binaryThreshold float64
}

// NewPredictionUseCase wires the prediction pipeline. queueSender may be nil;
// auditing is best-effort and never affects the response.
func NewPredictionUseCase(clf classifier.Classifier, deriver *feature.Deriver, queueSender queue.Sender, auditQueueName string, defaultDays int, maxDays int, binaryThreshold float64) UseCase {
	return &predictionUseCase{
		clf:             clf,
		deriver:         deriver,
		queueSender:     queueSender,
		auditQueueName:  auditQueueName,
		defaultDays:     defaultDays,
		maxDays:         maxDays,
		binaryThreshold: binaryThreshold,
	}
}

// Predict validates the request and runs the classifier over each day of the range
func (uc *predictionUseCase) Predict(request model.PredictionRequest) (*model.PredictionResponse, error) {
	city, days, startDate, err := uc.validate(request)
	if err != nil {
		return nil, err
	}

	if !uc.clf.Loaded() {
		return nil, model.ErrModelUnavailable
	}

	results := make([]model.DailyPrediction, 0, days)
	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i)

		features, err := uc.deriver.Derive(city, date)
		if err != nil {
			return nil, err
		}

		probability, err := uc.clf.PredictProbability(features)
		if err != nil {
			return nil, err
		}
		if probability < 0 || probability > 1 {
			// classifier contract violation, not a valid state
			return nil, fmt.Errorf("classifier returned probability %v outside [0,1] for %s on %s",
				probability, city.Name, date.Format(dateLayout))
		}

		predicted := 0
		if probability >= uc.binaryThreshold {
			predicted = 1
		}

		tier := entity.RiskTierFor(probability)
		results = append(results, model.DailyPrediction{
			Date:        date.Format(dateLayout),
			Probability: probability,
			Prediction:  predicted,
			RiskLevel:   tier.Label(),
			Tier:        model.RiskName(tier.Name()),
		})
	}

	response := &model.PredictionResponse{
		City:      city.Name,
		StartDate: startDate.Format(dateLayout),
		Days:      days,
		Results:   results,
	}

	uc.publishAudit(response)

	return response, nil
}

// SupportedCities returns the closed set of city names
func (uc *predictionUseCase) SupportedCities() model.CitiesResponse {
	return model.CitiesResponse{Cities: entity.CityNames()}
}

func (uc *predictionUseCase) validate(request model.PredictionRequest) (entity.City, int, time.Time, error) {
	name := strings.TrimSpace(request.City)
	if name == "" {
		return entity.City{}, 0, time.Time{}, model.NewValidationError("city", "city is required")
	}

	city, ok := entity.FindCity(name)
	if !ok {
		return entity.City{}, 0, time.Time{},
			model.NewValidationError("city", fmt.Sprintf("unknown city %q, supported cities are %s", name, strings.Join(entity.CityNames(), ", ")))
	}

	days := uc.defaultDays
	if request.Days != nil {
		days = *request.Days
	}
	if days < 1 || days > uc.maxDays {
		return entity.City{}, 0, time.Time{},
			model.NewValidationError("days", fmt.Sprintf("must be between 1 and %d, got %d", uc.maxDays, days))
	}

	startDate := time.Now()
	if request.StartDate != "" {
		parsed, err := time.Parse(dateLayout, request.StartDate)
		if err != nil {
			return entity.City{}, 0, time.Time{},
				model.NewValidationError("start_date", fmt.Sprintf("must be YYYY-MM-DD, got %q", request.StartDate))
		}
		startDate = parsed
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	return city, days, startDate, nil
}

// publishAudit enqueues a best-effort audit event. Failures are logged and
// dropped so the prediction response is never held up by the queue.
func (uc *predictionUseCase) publishAudit(response *model.PredictionResponse) {
	if uc.queueSender == nil {
		return
	}

	maxProbability := 0.0
	peakRisk := ""
	for _, result := range response.Results {
		if result.Probability >= maxProbability {
			maxProbability = result.Probability
			peakRisk = string(result.Tier)
		}
	}

	audit := entity.PredictionAudit{
		ID:             uuid.New().String(),
		City:           response.City,
		StartDate:      response.StartDate,
		Days:           response.Days,
		MaxProbability: maxProbability,
		PeakRisk:       peakRisk,
		RequestedAt:    time.Now().UTC(),
	}

	go func() {
		if err := uc.queueSender.SendMessage(uc.auditQueueName, audit); err != nil {
			log.Warn(msg.GetMessage("audit.error.publish-failed", err))
		}
	}()
}
