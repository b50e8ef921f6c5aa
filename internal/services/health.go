package services

import (
	"context"
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the database and the storage backend
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, store storage.Adapter) HealthCheckResult {
	log := zerolog.Ctx(ctx)
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(msg string) {
		result.Status = "unhealthy"
		if result.ErrorMessage == "" {
			result.ErrorMessage = msg
		} else {
			result.ErrorMessage += "; " + msg
		}
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		fail(fmt.Sprintf("Database connection error: %v", err))
		log.Warn().Err(err).Msg("Health check failed - database connection")
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		fail(fmt.Sprintf("Database ping failed: %v", err))
		log.Warn().Err(err).Msg("Health check failed - database ping")
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
	}

	// Check storage
	if store == nil {
		result.Storage = "unconfigured"
		fail("Storage is not configured")
	} else if err := store.Ping(ctx); err != nil {
		result.Storage = "unreachable"
		result.Details["storage_error"] = err.Error()
		fail(fmt.Sprintf("Storage ping failed: %v", err))
		log.Warn().Err(err).Msg("Health check failed - storage ping")
	} else {
		result.Storage = "ok"
		result.Details["storage_type"] = cfg.StorageType
	}

	if result.Healthy() {
		log.Debug().Msg("Health check passed - all systems operational")
	}

	return result
}
