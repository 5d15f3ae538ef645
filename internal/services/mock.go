package services

import (
	"ticket-tracker/internal/models"
	"ticket-tracker/internal/repositories"
	"ticket-tracker/internal/types"
)

// Mock service implementations for handler tests. Each method delegates
// to an overridable function field.

// MockAuthService provides a mock auth service for testing
type MockAuthService struct {
	RegisterFn      func(req *models.UserCreateRequest) (*models.User, error)
	LoginFn         func(req *models.LoginRequest) (*AuthResponse, error)
	ValidateTokenFn func(tokenString string) (*models.User, error)
	GetUserFn       func(id int) (*models.User, error)
}

func (m *MockAuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	return m.RegisterFn(req)
}

func (m *MockAuthService) Login(req *models.LoginRequest) (*AuthResponse, error) {
	return m.LoginFn(req)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*models.User, error) {
	return m.ValidateTokenFn(tokenString)
}

func (m *MockAuthService) GetUser(id int) (*models.User, error) {
	return m.GetUserFn(id)
}

// MockTicketService provides a mock ticket service for testing
type MockTicketService struct {
	CreateTicketFn func(req *models.TicketCreateRequest, creator *models.User) (*models.TicketWithAssignees, error)
	GetTicketFn    func(id int) (*models.TicketWithAssignees, error)
	AssignUserFn   func(ticketID, targetUserID int, requester *models.User) error
}

func (m *MockTicketService) CreateTicket(req *models.TicketCreateRequest, creator *models.User) (*models.TicketWithAssignees, error) {
	return m.CreateTicketFn(req, creator)
}

func (m *MockTicketService) GetTicket(id int) (*models.TicketWithAssignees, error) {
	return m.GetTicketFn(id)
}

func (m *MockTicketService) AssignUser(ticketID, targetUserID int, requester *models.User) error {
	return m.AssignUserFn(ticketID, targetUserID, requester)
}

// MockAnalyticsService provides a mock analytics service for testing
type MockAnalyticsService struct {
	DashboardAnalyticsFn func(filters repositories.TicketFilters) (*types.DashboardAnalytics, error)
	TicketAnalyticsFn    func(filters repositories.TicketFilters) (*types.TicketAnalytics, error)
}

func (m *MockAnalyticsService) DashboardAnalytics(filters repositories.TicketFilters) (*types.DashboardAnalytics, error) {
	return m.DashboardAnalyticsFn(filters)
}

func (m *MockAnalyticsService) TicketAnalytics(filters repositories.TicketFilters) (*types.TicketAnalytics, error) {
	return m.TicketAnalyticsFn(filters)
}
