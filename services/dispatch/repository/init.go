package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/velora/dispatch/internal/pkg/database"
	"github.com/velora/dispatch/internal/pkg/models"
)

// DispatchRepo implements the dispatch repository interface
type DispatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DispatchRepo {
	return &DispatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
