package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "layoffscli/internal/errors"
)

// ReportsHandler handles report HTTP requests with RFC 7807 compliance
type ReportsHandler struct {
	service      ReportsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportsHandler creates a new reports handler with RFC 7807 error handling
func NewReportsHandler(service ReportsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportsHandler {
	return &ReportsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "reports_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes with proper Chi patterns
func (h *ReportsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/records", h.GetRecords)
	r.Get("/runs/latest", h.GetLatestRun)

	r.Get("/by-year", h.GetByYear)
	r.Get("/by-month", h.GetByYearMonth)
	r.Get("/by-industry", h.GetByIndustry)
	r.Get("/by-industry-year", h.GetByIndustryYear)
	r.Get("/by-country", h.GetByCountry)
	r.Get("/by-country-industry", h.GetByCountryIndustry)
	r.Get("/by-country-month", h.GetByCountryMonth)
	r.Get("/top-companies", h.GetTopCompanies)
	r.Get("/funding-buckets", h.GetFundingBuckets)
	r.Get("/outliers", h.GetOutliers)

	r.Route("/companies/{company}", func(r chi.Router) {
		r.Use(h.CompanyCtx)
		r.Get("/series", h.GetCompanySeries)
	})

	return r
}

// CompanyCtx middleware validates the company parameter
func (h *ReportsHandler) CompanyCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		company := chi.URLParam(r, "company")
		if company == "" {
			h.errorHandler.HandleError(w, r, apierrors.NewValidationError("company name is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSummary handles GET /api/reports/summary
func (h *ReportsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.Summary(r.Context(), parseTopN(r.URL.Query()))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, bundle)
}

// GetRecords handles GET /api/reports/records
func (h *ReportsHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Records(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, records)
}

// GetLatestRun handles GET /api/reports/runs/latest
func (h *ReportsHandler) GetLatestRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.service.LatestRun(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, run)
}

// GetByYear handles GET /api/reports/by-year
func (h *ReportsHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByYear(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByYearMonth handles GET /api/reports/by-month
func (h *ReportsHandler) GetByYearMonth(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByYearMonth(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByIndustry handles GET /api/reports/by-industry
func (h *ReportsHandler) GetByIndustry(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByIndustry(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByIndustryYear handles GET /api/reports/by-industry-year
func (h *ReportsHandler) GetByIndustryYear(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByIndustryYear(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByCountry handles GET /api/reports/by-country
func (h *ReportsHandler) GetByCountry(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByCountry(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByCountryIndustry handles GET /api/reports/by-country-industry
func (h *ReportsHandler) GetByCountryIndustry(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByCountryIndustry(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetByCountryMonth handles GET /api/reports/by-country-month
func (h *ReportsHandler) GetByCountryMonth(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.ByCountryMonth(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetTopCompanies handles GET /api/reports/top-companies?n=10
func (h *ReportsHandler) GetTopCompanies(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.TopCompanies(r.Context(), parseTopN(r.URL.Query()))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, totals)
}

// GetCompanySeries handles GET /api/reports/companies/{company}/series
func (h *ReportsHandler) GetCompanySeries(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	series, err := h.service.CompanySeries(r.Context(), company)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, series)
}

// GetFundingBuckets handles GET /api/reports/funding-buckets
func (h *ReportsHandler) GetFundingBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.FundingBuckets(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, buckets)
}

// GetOutliers handles GET /api/reports/outliers
func (h *ReportsHandler) GetOutliers(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Outliers(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, report)
}

// parseTopN reads a bounded ?n= query parameter; bad input falls back to 0
// and lets the service apply its default.
func parseTopN(q url.Values) int {
	raw := q.Get("n")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 1000 {
		return 0
	}
	return n
}
