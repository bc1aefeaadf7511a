package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/velora/dispatch/internal/pkg/database"
	"github.com/velora/dispatch/internal/pkg/models"
)

// LocationRepo implements driver position data access against redis and
// postgres
type LocationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
