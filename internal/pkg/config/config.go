package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/velora/dispatch/internal/pkg/models"
)

// InitConfig loads configuration from the env file and environment and
// validates the typed sections. A config that would corrupt a dispatch
// round never leaves this function.
func InitConfig(configPath string) (*models.Config, error) {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	configs := loadConfigFromEnv()

	if err := configs.Dispatch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dispatch config: %w", err)
	}
	if err := configs.Location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location config: %w", err)
	}
	return configs, nil
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "dispatch")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", true)

	// Maps config
	configs.Maps.APIKey = GetEnv("MAPS_API_KEY", "")
	configs.Maps.CacheTTL = GetEnvAsDuration("MAPS_CACHE_TTL", 30*time.Second)
	configs.Maps.RequestTimeout = GetEnvAsDuration("MAPS_REQUEST_TIMEOUT", 3*time.Second)
	configs.Maps.SnapEnabled = GetEnvAsBool("MAPS_SNAP_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Dispatch config
	defaults := models.DefaultDispatchConfig()
	configs.Dispatch.WeightEta = GetEnvAsFloat("DISPATCH_WEIGHT_ETA", defaults.WeightEta)
	configs.Dispatch.WeightRating = GetEnvAsFloat("DISPATCH_WEIGHT_RATING", defaults.WeightRating)
	configs.Dispatch.WeightAcceptance = GetEnvAsFloat("DISPATCH_WEIGHT_ACCEPTANCE", defaults.WeightAcceptance)
	configs.Dispatch.ServiceBonus = GetEnvAsFloat("DISPATCH_SERVICE_BONUS", defaults.ServiceBonus)
	configs.Dispatch.EtaCapSeconds = GetEnvAsFloat("DISPATCH_ETA_CAP_SECONDS", defaults.EtaCapSeconds)
	configs.Dispatch.OfferTimeout = GetEnvAsDuration("DISPATCH_OFFER_TIMEOUT", defaults.OfferTimeout)
	configs.Dispatch.MaxOffers = GetEnvAsInt("DISPATCH_MAX_OFFERS", defaults.MaxOffers)
	configs.Dispatch.SearchRadiusKm = GetEnvAsFloat("DISPATCH_SEARCH_RADIUS_KM", defaults.SearchRadiusKm)
	configs.Dispatch.CommissionRate = GetEnvAsFloat("DISPATCH_COMMISSION_RATE", defaults.CommissionRate)
	configs.Dispatch.FallbackSpeedKmh = GetEnvAsFloat("DISPATCH_FALLBACK_SPEED_KMH", defaults.FallbackSpeedKmh)

	// Location config
	locDefaults := models.DefaultLocationConfig()
	configs.Location.AnomalySpeedKmh = GetEnvAsFloat("LOCATION_ANOMALY_SPEED_KMH", locDefaults.AnomalySpeedKmh)
	configs.Location.AnomalyCap = GetEnvAsInt("LOCATION_ANOMALY_CAP", locDefaults.AnomalyCap)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
