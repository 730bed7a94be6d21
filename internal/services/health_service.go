package services

import (
	"context"
	"log/slog"
	"time"

	"layoffscli/internal/store"
)

// HealthService reports service liveness and readiness.
type HealthService struct {
	db      *store.DB
	version string
	started time.Time
	logger  *slog.Logger
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthService creates a new health service
func NewHealthService(db *store.DB, version string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		db:      db,
		version: version,
		started: time.Now(),
		logger:  logger.With(slog.String("service", "health")),
	}
}

// HealthCheck reports liveness. The process serving the request is alive by
// definition, so this never fails.
func (s *HealthService) HealthCheck(_ context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		Version:   s.version,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}
}

// ReadinessCheck reports whether the staging store is reachable.
func (s *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := s.HealthCheck(ctx)
	if err := s.db.Pool.PingContext(ctx); err != nil {
		s.logger.ErrorContext(ctx, "readiness check failed",
			slog.String("error", err.Error()))
		status.Status = "unavailable"
	}
	return status
}
