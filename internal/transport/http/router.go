package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"layoffscli/internal/config"
	apierrors "layoffscli/internal/errors"
	custommw "layoffscli/internal/middleware"
	"layoffscli/internal/services"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Reports ReportsServiceInterface
	Health  *services.HealthService
}

// NewRouter assembles the full API router: middleware chain, report routes,
// health endpoints and Prometheus metrics.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	// RequestID must come first so every later layer sees the trace_id.
	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(deps.Logger))
	r.Use(custommw.Recoverer(deps.Logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(custommw.CORS(custommw.CORSConfig{
		AllowedOrigins: []string{"*"},
		Logger:         deps.Logger,
	}))
	r.Use(custommw.Compress(5))

	if deps.Config.Server.RateLimitRPS > 0 {
		limiter := custommw.NewRateLimiter(
			deps.Config.Server.RateLimitRPS,
			deps.Config.Server.RateLimitBurst,
			deps.Logger)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(deps.Logger)
	reportsHandler := NewReportsHandler(deps.Reports, deps.Logger, errorHandler)
	healthHandler := NewHealthHandler(deps.Health, deps.Logger)

	r.Route("/api", func(r chi.Router) {
		if deps.Config.Server.ReadTimeout > 0 {
			r.Use(custommw.Timeout(deps.Config.Server.ReadTimeout, deps.Logger))
		}
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Mount("/reports", reportsHandler.Routes())
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errorHandler.HandleError(w, req, apierrors.NewNotFoundError("resource"))
	})

	return r
}
