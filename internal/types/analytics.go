package types

import (
	"ticket-tracker/internal/models"
)

// PriorityMetrics holds the per-priority dashboard metrics
type PriorityMetrics struct {
	Count            int     `json:"count"`
	AvgTicketsPerDay float64 `json:"avgTicketsPerDay"`
}

// DashboardAnalytics is the system-wide analytics payload
type DashboardAnalytics struct {
	TotalTickets               int                        `json:"totalTickets"`
	ClosedTickets              int                        `json:"closedTickets"`
	OpenTickets                int                        `json:"openTickets"`
	InProgressTickets          int                        `json:"inProgressTickets"`
	AverageCustomerSpending    float64                    `json:"averageCustomerSpending"`
	AverageTicketsBookedPerDay float64                    `json:"averageTicketsBookedPerDay"`
	PriorityDistribution       map[string]PriorityMetrics `json:"priorityDistribution"`
	TypeDistribution           map[string]int             `json:"typeDistribution"`
}

// TicketAnalytics is the ticket-scoped analytics payload: flat counts
// over the fixed priority and type key sets plus the filtered ticket
// projections
type TicketAnalytics struct {
	TotalTickets         int                        `json:"totalTickets"`
	ClosedTickets        int                        `json:"closedTickets"`
	OpenTickets          int                        `json:"openTickets"`
	InProgressTickets    int                        `json:"inProgressTickets"`
	PriorityDistribution map[string]int             `json:"priorityDistribution"`
	TypeDistribution     map[string]int             `json:"typeDistribution"`
	Tickets              []*models.TicketProjection `json:"tickets"`
}
