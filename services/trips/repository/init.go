package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/velora/dispatch/internal/pkg/database"
	"github.com/velora/dispatch/internal/pkg/models"
)

// TripRepo implements trip data access against postgres
type TripRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TripRepo {
	return &TripRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
