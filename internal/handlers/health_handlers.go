package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gigsters-app/gigsters/internal/caching"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sourcegraph/conc"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is anything that can report its own reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles liveness and readiness probes
type HealthHandlers struct {
	db      Pinger
	cache   caching.CacheService
	storage services.StorageService
	version string
	logger  *logger.Logger
}

// NewHealthHandlers builds the probes. storage may be nil when export is disabled.
func NewHealthHandlers(db Pinger, cache caching.CacheService, storage services.StorageService, version string, log *logger.Logger) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache, storage: storage, version: version, logger: log}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services,omitempty"`
}

// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}

// @Summary Readiness probe
// @Description Checks the database, the number format cache and object storage. The database is critical; the others only degrade.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /health/ready [get]
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	var dbErr, cacheErr, storageErr error
	var wg conc.WaitGroup
	wg.Go(func() { dbErr = h.db.Ping(ctx) })
	if h.cache != nil {
		wg.Go(func() { cacheErr = h.cache.Ping(ctx) })
	}
	if h.storage != nil {
		wg.Go(func() { storageErr = h.storage.Ping(ctx) })
	}
	wg.Wait()

	health := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Services: map[string]string{
			"database": h.serviceState("database", dbErr),
			"cache":    h.serviceState("cache", cacheErr),
			"storage":  "disabled",
		},
	}
	if h.cache == nil {
		health.Services["cache"] = "disabled"
	}
	if h.storage != nil {
		health.Services["storage"] = h.serviceState("storage", storageErr)
	}

	status := http.StatusOK
	switch {
	case dbErr != nil:
		health.Status = "not_ready"
		status = http.StatusServiceUnavailable
	case cacheErr != nil || storageErr != nil:
		health.Status = "degraded"
	}
	return c.JSON(status, health)
}

func (h *HealthHandlers) serviceState(name string, err error) string {
	if err != nil {
		h.logger.Warnw("health check failed", "service", name, "error", err)
		return "unhealthy"
	}
	return "healthy"
}
