package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/velora/dispatch/internal/pkg/config"
	"github.com/velora/dispatch/internal/pkg/database"
	"github.com/velora/dispatch/internal/pkg/health"
	"github.com/velora/dispatch/internal/pkg/logger"
	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/middleware"
	"github.com/velora/dispatch/internal/pkg/models"
	natspkg "github.com/velora/dispatch/internal/pkg/nats"
	nsqpkg "github.com/velora/dispatch/internal/pkg/nsq"
	dispatchGateway "github.com/velora/dispatch/services/dispatch/gateway"
	dispatchHandler "github.com/velora/dispatch/services/dispatch/handler"
	dispatchRepository "github.com/velora/dispatch/services/dispatch/repository"
	dispatchUsecase "github.com/velora/dispatch/services/dispatch/usecase"
	ledgerHandler "github.com/velora/dispatch/services/ledger/handler"
	ledgerRepository "github.com/velora/dispatch/services/ledger/repository"
	ledgerUsecase "github.com/velora/dispatch/services/ledger/usecase"
	locationGateway "github.com/velora/dispatch/services/location/gateway"
	locationHandler "github.com/velora/dispatch/services/location/handler"
	locationRepository "github.com/velora/dispatch/services/location/repository"
	locationUsecase "github.com/velora/dispatch/services/location/usecase"
	tripGateway "github.com/velora/dispatch/services/trips/gateway"
	tripHandler "github.com/velora/dispatch/services/trips/handler"
	tripRepository "github.com/velora/dispatch/services/trips/repository"
	tripUsecase "github.com/velora/dispatch/services/trips/usecase"
)

// expirySweepInterval paces the background pass that resolves sent offers
// whose timers were lost to a restart.
const expirySweepInterval = 30 * time.Second

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize NSQ producer for push notifications
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer nsqProducer.Stop()
	}

	// Initialize the distance-matrix provider chain
	matrixProvider, snapper := buildMatrixProvider(configs, redisClient, zapLogger)

	// Initialize repositories
	db := postgresClient.GetDB()
	dispatchRepo := dispatchRepository.NewDispatchRepository(configs, db, redisClient)
	tripRepo := tripRepository.NewTripRepository(configs, db, redisClient)
	ledgerRepo := ledgerRepository.NewLedgerRepository(configs, db)
	locationRepo := locationRepository.NewLocationRepository(configs, db, redisClient)

	// Initialize gateways
	dispatchGW := dispatchGateway.NewDispatchGW(natsClient, nsqProducer)
	tripGW := tripGateway.NewTripGW(natsClient, nsqProducer)
	locationGW := locationGateway.NewLocationGW(natsClient, nsqProducer)

	// Initialize use cases
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, dispatchRepo, dispatchGW, matrixProvider)
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, tripGW)
	ledgerUC := ledgerUsecase.NewLedgerUC(configs, ledgerRepo)
	locationUC := locationUsecase.NewLocationUC(configs, locationRepo, locationGW, snapper)

	// Initialize Echo router
	e := echo.New()
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	dispatchHandler.NewDispatchHandler(dispatchUC).RegisterRoutes(e)
	tripHandler.NewTripHandler(tripUC).RegisterRoutes(e)
	ledgerHandler.NewLedgerHandler(ledgerUC).RegisterRoutes(e)
	locationHandler.NewLocationHandler(locationUC).RegisterRoutes(e)

	// Recover offer expirations lost across restarts
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go dispatchUC.RunExpirySweeper(sweeperCtx, expirySweepInterval)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server",
				zap.String("app", appName),
				zap.Error(err),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server", zap.String("app", appName))
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
}

// buildMatrixProvider assembles the ETA provider: Google behind a Redis
// cache and a circuit breaker, degrading to straight-line estimates. With
// no API key configured the service runs on the fallback estimator alone.
func buildMatrixProvider(configs *models.Config, redisClient *database.RedisClient, zapLogger *logger.ZapLogger) (matrix.Provider, matrix.Snapper) {
	fallback := matrix.NewFallbackEstimator(configs.Dispatch.FallbackSpeedKmh)

	if configs.Maps.APIKey == "" {
		zapLogger.Warn("No maps API key configured, using straight-line ETA estimates")
		return fallback, nil
	}

	google, err := matrix.NewGoogleProvider(configs.Maps.APIKey)
	if err != nil {
		zapLogger.Fatal("Failed to create maps client", zap.Error(err))
	}

	cached := matrix.NewCachedProvider(google, redisClient, configs.Maps.CacheTTL)
	provider := matrix.NewResilientProvider(cached, fallback, zapLogger)

	var snapper matrix.Snapper
	if configs.Maps.SnapEnabled {
		snapper = google
	}
	return provider, snapper
}
