package services

import (
	"ticket-tracker/internal/models"
	"ticket-tracker/internal/repositories"
	"ticket-tracker/internal/types"
)

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Register(req *models.UserCreateRequest) (*models.User, error)
	Login(req *models.LoginRequest) (*AuthResponse, error)
	ValidateToken(tokenString string) (*models.User, error)
	GetUser(id int) (*models.User, error)
}

// TicketServiceInterface defines the interface for ticket services
type TicketServiceInterface interface {
	CreateTicket(req *models.TicketCreateRequest, creator *models.User) (*models.TicketWithAssignees, error)
	GetTicket(id int) (*models.TicketWithAssignees, error)
	AssignUser(ticketID, targetUserID int, requester *models.User) error
}

// AnalyticsServiceInterface defines the interface for analytics services
type AnalyticsServiceInterface interface {
	DashboardAnalytics(filters repositories.TicketFilters) (*types.DashboardAnalytics, error)
	TicketAnalytics(filters repositories.TicketFilters) (*types.TicketAnalytics, error)
}

// UserStore is the persistence surface the auth service depends on
type UserStore interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// TicketStore is the persistence surface the ticket service depends on
type TicketStore interface {
	Create(req *models.TicketCreateRequest, createdBy int) (*models.Ticket, error)
	GetByID(id int) (*models.Ticket, error)
	GetAssignees(ticketID int) ([]models.UserSummary, error)
	AssignUser(ticketID, targetUserID int, requester *models.User) error
}

// AnalyticsStore is the persistence surface the analytics service
// depends on
type AnalyticsStore interface {
	CountTickets(filters repositories.TicketFilters, status models.TicketStatus) (int, error)
	AveragePrice(filters repositories.TicketFilters) (float64, error)
	TicketSpan(filters repositories.TicketFilters) (repositories.SpanStats, error)
	PriorityStats(filters repositories.TicketFilters) (map[models.TicketPriority]repositories.SpanStats, error)
	CountByType(filters repositories.TicketFilters) (map[models.TicketType]int, error)
	Search(filters repositories.TicketFilters) ([]*models.TicketProjection, error)
}
