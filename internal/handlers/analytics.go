package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"ticket-tracker/internal/models"
	"ticket-tracker/internal/repositories"
	"ticket-tracker/internal/services"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// TicketAnalytics handles GET /tickets/analytics
func (h *AnalyticsHandler) TicketAnalytics(w http.ResponseWriter, r *http.Request) {
	filters, err := parseTicketFilters(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	payload, err := h.analyticsService.TicketAnalytics(filters)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

// DashboardAnalytics handles GET /dashboard/analytics
func (h *AnalyticsHandler) DashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	filters, err := parseTicketFilters(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	payload, err := h.analyticsService.DashboardAnalytics(filters)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

// parseTicketFilters turns the optional query parameters into a filter
// set. Malformed dates fail with a validation error before any storage
// work happens.
func parseTicketFilters(r *http.Request) (repositories.TicketFilters, error) {
	query := r.URL.Query()

	filters := repositories.TicketFilters{
		Status:   models.TicketStatus(query.Get("status")),
		Priority: models.TicketPriority(query.Get("priority")),
		Type:     models.TicketType(query.Get("type")),
		Venue:    query.Get("venue"),
	}

	if raw := query.Get("startDate"); raw != "" {
		start, _, err := parseFilterDate(raw)
		if err != nil {
			return filters, models.NewValidationError("startDate is not a valid date")
		}
		filters.StartDate = &start
	}

	if raw := query.Get("endDate"); raw != "" {
		_, end, err := parseFilterDate(raw)
		if err != nil {
			return filters, models.NewValidationError("endDate is not a valid date")
		}
		filters.EndDate = &end
	}

	return filters, nil
}

// parseFilterDate accepts RFC 3339 timestamps and plain dates. A plain
// date expands to its first and last instant so both bounds stay
// inclusive.
func parseFilterDate(raw string) (time.Time, time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, t, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return t, t.Add(24*time.Hour - time.Nanosecond), nil
}
