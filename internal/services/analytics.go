package services

import (
	"ticket-tracker/internal/models"
	"ticket-tracker/internal/repositories"
	"ticket-tracker/internal/types"
)

// AnalyticsService builds the dashboard and ticket-scoped analytics
// payloads. Every storage failure aborts the whole payload; partial
// results are never returned.
type AnalyticsService struct {
	store AnalyticsStore
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// DashboardAnalytics returns the system-wide metrics over the filtered
// ticket set
func (s *AnalyticsService) DashboardAnalytics(filters repositories.TicketFilters) (*types.DashboardAnalytics, error) {
	payload := &types.DashboardAnalytics{}

	counts, err := s.statusCounts(filters)
	if err != nil {
		return nil, err
	}
	payload.TotalTickets = counts.total
	payload.ClosedTickets = counts.closed
	payload.OpenTickets = counts.open
	payload.InProgressTickets = counts.inProgress

	payload.AverageCustomerSpending, err = s.store.AveragePrice(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to average ticket prices", err)
	}

	span, err := s.store.TicketSpan(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to get ticket due date span", err)
	}
	payload.AverageTicketsBookedPerDay = averagePerDay(span.Count, span.SpanDays)

	priorityStats, err := s.store.PriorityStats(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to get priority distribution", err)
	}
	payload.PriorityDistribution = make(map[string]types.PriorityMetrics, len(models.TicketPriorities))
	for _, priority := range models.TicketPriorities {
		stats := priorityStats[priority]
		payload.PriorityDistribution[string(priority)] = types.PriorityMetrics{
			Count:            stats.Count,
			AvgTicketsPerDay: averagePerDay(stats.Count, stats.SpanDays),
		}
	}

	payload.TypeDistribution, err = s.typeDistribution(filters)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// TicketAnalytics returns the ticket-scoped metrics over the filtered
// set: flat counts per fixed key set plus the matching ticket
// projections
func (s *AnalyticsService) TicketAnalytics(filters repositories.TicketFilters) (*types.TicketAnalytics, error) {
	payload := &types.TicketAnalytics{}

	counts, err := s.statusCounts(filters)
	if err != nil {
		return nil, err
	}
	payload.TotalTickets = counts.total
	payload.ClosedTickets = counts.closed
	payload.OpenTickets = counts.open
	payload.InProgressTickets = counts.inProgress

	priorityStats, err := s.store.PriorityStats(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to get priority distribution", err)
	}
	payload.PriorityDistribution = make(map[string]int, len(models.TicketPriorities))
	for _, priority := range models.TicketPriorities {
		payload.PriorityDistribution[string(priority)] = priorityStats[priority].Count
	}

	payload.TypeDistribution, err = s.typeDistribution(filters)
	if err != nil {
		return nil, err
	}

	payload.Tickets, err = s.store.Search(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to list tickets", err)
	}

	return payload, nil
}

type statusCounts struct {
	total      int
	closed     int
	open       int
	inProgress int
}

func (s *AnalyticsService) statusCounts(filters repositories.TicketFilters) (statusCounts, error) {
	var counts statusCounts
	var err error

	if counts.total, err = s.store.CountTickets(filters, ""); err != nil {
		return counts, models.NewAggregationError("failed to count tickets", err)
	}
	if counts.closed, err = s.store.CountTickets(filters, models.TicketClosed); err != nil {
		return counts, models.NewAggregationError("failed to count closed tickets", err)
	}
	if counts.open, err = s.store.CountTickets(filters, models.TicketOpen); err != nil {
		return counts, models.NewAggregationError("failed to count open tickets", err)
	}
	if counts.inProgress, err = s.store.CountTickets(filters, models.TicketInProgress); err != nil {
		return counts, models.NewAggregationError("failed to count in-progress tickets", err)
	}

	return counts, nil
}

func (s *AnalyticsService) typeDistribution(filters repositories.TicketFilters) (map[string]int, error) {
	typeCounts, err := s.store.CountByType(filters)
	if err != nil {
		return nil, models.NewAggregationError("failed to get type distribution", err)
	}

	// Every type of the closed enum appears in the payload, zero or not
	distribution := make(map[string]int, len(models.TicketTypes))
	for _, ticketType := range models.TicketTypes {
		distribution[string(ticketType)] = typeCounts[ticketType]
	}

	return distribution, nil
}

// averagePerDay divides a count by the number of whole days spanned
// plus one; the +1 keeps single-day spans from dividing by zero. An
// empty set yields 0.
func averagePerDay(count, spanDays int) float64 {
	if count == 0 {
		return 0
	}
	return float64(count) / float64(spanDays+1)
}
