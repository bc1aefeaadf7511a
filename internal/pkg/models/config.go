package models

import (
	"fmt"
	"time"
)

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	Maps     MapsConfig
	Logger   LoggerConfig
	Dispatch DispatchConfig
	Location LocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// MapsConfig contains the external distance-matrix provider configuration
type MapsConfig struct {
	APIKey         string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	SnapEnabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DispatchConfig contains the tunable parameters for a dispatch round.
// It is loaded once at startup and treated as read-only during a round;
// changes apply to subsequent rounds only.
type DispatchConfig struct {
	WeightEta        float64       `json:"weight_eta"`
	WeightRating     float64       `json:"weight_rating"`
	WeightAcceptance float64       `json:"weight_acceptance"`
	ServiceBonus     float64       `json:"service_bonus"`
	EtaCapSeconds    float64       `json:"eta_cap_seconds"`
	OfferTimeout     time.Duration `json:"offer_timeout"`
	MaxOffers        int           `json:"max_offers"`
	SearchRadiusKm   float64       `json:"search_radius_km"`
	CommissionRate   float64       `json:"commission_rate"`
	FallbackSpeedKmh float64       `json:"fallback_speed_kmh"`
}

// DefaultDispatchConfig returns the documented defaults for a dispatch round.
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		WeightEta:        0.5,
		WeightRating:     0.3,
		WeightAcceptance: 0.2,
		ServiceBonus:     0.1,
		EtaCapSeconds:    900,
		OfferTimeout:     20 * time.Second,
		MaxOffers:        5,
		SearchRadiusKm:   5.0,
		CommissionRate:   0.20,
		FallbackSpeedKmh: 30.0,
	}
}

// Validate checks the dispatch configuration for values that would make a
// dispatch round misbehave.
func (c DispatchConfig) Validate() error {
	if c.WeightEta < 0 || c.WeightRating < 0 || c.WeightAcceptance < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if c.EtaCapSeconds <= 0 {
		return fmt.Errorf("eta cap must be positive, got %v", c.EtaCapSeconds)
	}
	if c.OfferTimeout <= 0 {
		return fmt.Errorf("offer timeout must be positive, got %v", c.OfferTimeout)
	}
	if c.MaxOffers <= 0 {
		return fmt.Errorf("max offers must be positive, got %d", c.MaxOffers)
	}
	if c.SearchRadiusKm <= 0 {
		return fmt.Errorf("search radius must be positive, got %v", c.SearchRadiusKm)
	}
	if c.CommissionRate < 0 || c.CommissionRate >= 1 {
		return fmt.Errorf("commission rate must be in [0,1), got %v", c.CommissionRate)
	}
	if c.FallbackSpeedKmh <= 0 {
		return fmt.Errorf("fallback speed must be positive, got %v", c.FallbackSpeedKmh)
	}
	return nil
}

// LocationConfig contains location integrity monitoring configuration
type LocationConfig struct {
	AnomalySpeedKmh float64 `json:"anomaly_speed_kmh"`
	AnomalyCap      int     `json:"anomaly_cap"`
}

// DefaultLocationConfig returns the documented location monitoring defaults.
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		AnomalySpeedKmh: 150.0,
		AnomalyCap:      3,
	}
}

// Validate checks the location monitoring configuration.
func (c LocationConfig) Validate() error {
	if c.AnomalySpeedKmh <= 0 {
		return fmt.Errorf("anomaly speed threshold must be positive, got %v", c.AnomalySpeedKmh)
	}
	if c.AnomalyCap <= 0 {
		return fmt.Errorf("anomaly cap must be positive, got %d", c.AnomalyCap)
	}
	return nil
}
