package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "heatwave-api/configs"
	"heatwave-api/internal/application/controller"
	"heatwave-api/internal/application/middleware"
	"heatwave-api/internal/application/processor"
	"heatwave-api/internal/application/schedule"
	"heatwave-api/internal/domain/feature"
	"heatwave-api/internal/domain/gateway/db"
	"heatwave-api/internal/domain/gateway/queue"
	"heatwave-api/internal/domain/usecase/health"
	"heatwave-api/internal/domain/usecase/prediction"
	"heatwave-api/internal/infra/aws"
	"heatwave-api/internal/infra/classifier"
	"heatwave-api/internal/infra/database/gorm"
	"heatwave-api/internal/infra/observability"
	"heatwave-api/pkg/log"
	"heatwave-api/pkg/msg"
	"heatwave-api/pkg/redis"
	"heatwave-api/pkg/resource"
	"heatwave-api/pkg/sqs"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	ctx := context.Background()

	// Load the classifier once; on failure the service starts degraded and
	// every prediction reports 503 until a restart fixes the artifact.
	modelPath := resource.GetString("app.model.path")
	clf, err := classifier.Load(modelPath)
	if err != nil {
		log.Error(msg.GetMessage("model.load-failed", modelPath, err))
		clf = classifier.Unavailable()
	} else {
		log.Info(msg.GetMessage("model.loaded", modelPath, len(clf.FeatureColumns())))
	}

	metrics := observability.NewMetrics()
	if clf.Loaded() {
		metrics.ModelLoaded.Set(1)
	}

	deriver := feature.NewDeriver(clf.FeatureColumns())

	// Optional redis: rate limiting and the outlook scheduler lock
	var redisClient *redis.Client
	if resource.GetBool("app.rate-limit.enabled") {
		redisClient = redis.NewClient(redis.NewConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
	}

	// Optional audit pipeline: queue sender + worker + postgres + cleanup
	var queueSender queue.Sender
	if resource.GetBool("app.audit.enabled") {
		awsConfig := aws.LoadConfig(ctx)
		sqsClient := aws.NewSqsClient(awsConfig)
		queueSender = aws.NewSQSSenderAdapter(sqsClient)

		dbConn, err := gorm.Connect()
		if err != nil {
			log.Fatalf("Fail to connect database: %v", err)
		}
		auditGateway, err := db.NewGormAuditGateway(dbConn)
		if err != nil {
			log.Fatalf("Fail to init audit gateway: %v", err)
		}

		auditProcessor := processor.NewAuditProcessor(auditGateway, metrics)
		worker, err := sqs.NewWorker(sqsClient, resource.GetString("app.audit.queue-name"), auditProcessor, &sqs.WorkerConfig{
			PoolSize: resource.GetInt("app.audit.worker-pool-size"),
		})
		if err != nil {
			log.Fatalf("Fail to init audit worker: %v", err)
		}
		go worker.Start(ctx)

		auditCleanupScheduler := schedule.NewAuditCleanupScheduler(auditGateway, resource.GetInt("app.audit.retention-days"))
		if err := auditCleanupScheduler.InitAuditCleanupScheduleTasks(resource.GetString("app.audit.clear-cron")); err != nil {
			log.Fatalf("Fail to init audit cleanup schedule: %v", err)
		}
	}

	// Init UseCase
	predictionUseCase := prediction.NewPredictionUseCase(
		clf,
		deriver,
		queueSender,
		resource.GetString("app.audit.queue-name"),
		resource.GetInt("app.predict.default-days"),
		resource.GetInt("app.predict.max-days"),
		resource.GetFloat64("app.predict.binary-threshold"),
	)

	var cache health.CachePinger
	if redisClient != nil {
		cache = redisClient
	}
	healthUseCase := health.NewHealthUseCase(clf, cache)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	var predictMiddleware []echo.MiddlewareFunc
	if redisClient != nil {
		limiter := redis.NewRateLimiter(redisClient, redis.NewRateLimiterOptions().
			WithRequestsPerMinute(resource.GetInt("app.rate-limit.requests-per-minute")).
			WithNamespace("heatwave_rate"))
		predictMiddleware = append(predictMiddleware, middleware.RateLimit(limiter))
	}

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	predictionController := controller.NewPredictionController(api, predictionUseCase, metrics)
	dashboardController := controller.NewDashboardController(e, "web/index.html")

	// Init Routes
	healthController.InitHealthRoutes()
	predictionController.InitPredictionRoutes(predictMiddleware...)
	dashboardController.InitDashboardRoutes()
	api.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Init Schedule
	if resource.GetBool("app.outlook.enabled") {
		outlookScheduler := schedule.NewOutlookScheduler(
			predictionUseCase,
			metrics,
			redisClient,
			resource.GetString("app.outlook.cron"),
			resource.GetInt("app.outlook.lock-ttl-seconds"),
			resource.GetInt("app.outlook.lock-refresh-seconds"),
		)
		outlookScheduler.InitOutlookScheduleTasks(ctx)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
