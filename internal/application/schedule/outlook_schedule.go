package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"heatwave-api/internal/domain/entity"
	"heatwave-api/internal/domain/model"
	"heatwave-api/internal/domain/usecase/prediction"
	"heatwave-api/internal/infra/observability"
	"heatwave-api/pkg/log"
	"heatwave-api/pkg/msg"
	"heatwave-api/pkg/redis"
)

// OutlookSchedulerConfig holds configuration for the daily outlook scheduler
type OutlookSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// OutlookScheduler refreshes today's per-city risk gauges on a cron. With a
// redis client present the job is guarded by a distributed lock so only one
// instance publishes the gauges.
type OutlookScheduler struct {
	cron        *cron.Cron
	useCase     prediction.UseCase
	metrics     *observability.Metrics
	redisClient *redis.Client // nil in single-instance mode
	config      *OutlookSchedulerConfig
}

// NewOutlookScheduler creates a new daily outlook scheduler
func NewOutlookScheduler(useCase prediction.UseCase, metrics *observability.Metrics, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *OutlookScheduler {
	return &OutlookScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		metrics:     metrics,
		redisClient: redisClient,
		config: &OutlookSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitOutlookScheduleTasks initializes the outlook schedule, acquiring the
// distributed lock first when redis is configured.
func (s *OutlookScheduler) InitOutlookScheduleTasks(ctx context.Context) {
	go func() {
		var refreshErrChan <-chan error

		if s.redisClient != nil {
			lock := redis.NewLock(
				s.redisClient,
				"daily_outlook_scheduler",
				redis.NewLockOptions().
					WithTTL(s.getLockTTL()).
					WithRefreshInterval(s.getRefreshInterval()).
					WithLockNamespace("heatwave_schedules"),
			)

			if err := lock.Lock(ctx); err != nil {
				log.Errorf("Failed to acquire distributed lock, outlook scheduler will not be initialized: %v", err)
				return
			}

			refreshErrChan = lock.AutoRefresh(ctx)
		}

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
			log.Errorf("Failed to initialize outlook scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Daily outlook scheduler started with cron expression: %s", s.config.CronExpression)

		// seed the gauges so dashboards have data before the first tick
		s.ExecuteScheduledTask()

		if refreshErrChan == nil {
			<-ctx.Done()
		} else if err := <-refreshErrChan; err != nil && err != context.Canceled {
			log.Errorf("Daily outlook scheduler stopping, lock refresh failed: %v", err)
		}

		s.Stop()
	}()
}

// ExecuteScheduledTask predicts today's risk for every supported city and
// updates the per-city gauges.
func (s *OutlookScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("outlook.cron.start"), zap.String("request_id", requestID))

	days := 1
	for _, city := range entity.CityNames() {
		response, err := s.useCase.Predict(model.PredictionRequest{City: city, Days: &days})
		if err != nil {
			log.Error(msg.GetMessage("outlook.error.refresh-failed", city, err),
				zap.String("request_id", requestID),
				zap.String("city", city),
				zap.Error(err))
			continue
		}

		today := response.Results[0]
		s.metrics.CityRisk.WithLabelValues(city).Set(today.Probability)
		log.Info("Refreshed city outlook",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Float64("probability", today.Probability),
			zap.String("risk", string(today.Tier)))
	}

	log.Info(msg.GetMessage("outlook.cron.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *OutlookScheduler) Stop() {
	if s.cron != nil {
		cronCtx := s.cron.Stop()
		<-cronCtx.Done()
	}
}

func (s *OutlookScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *OutlookScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
