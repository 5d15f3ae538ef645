package services

import (
	"testing"
	"time"

	"ticket-tracker/internal/models"
)

// fakeTicketStore records calls so tests can assert nothing was
// persisted on a rejected request
type fakeTicketStore struct {
	createCalls int
	ticket      *models.Ticket
	assignees   []models.UserSummary
	assignErr   error
	assignCalls []int
}

func (f *fakeTicketStore) Create(req *models.TicketCreateRequest, createdBy int) (*models.Ticket, error) {
	f.createCalls++
	ticket := &models.Ticket{
		ID:        1,
		Title:     req.Title,
		Type:      req.Type,
		Venue:     req.Venue,
		Status:    req.Status,
		Price:     req.Price,
		Priority:  req.Priority,
		DueDate:   req.DueDate,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	f.ticket = ticket
	return ticket, nil
}

func (f *fakeTicketStore) GetByID(id int) (*models.Ticket, error) {
	if f.ticket == nil || f.ticket.ID != id {
		return nil, models.NewNotFoundError("ticket not found")
	}
	return f.ticket, nil
}

func (f *fakeTicketStore) GetAssignees(ticketID int) ([]models.UserSummary, error) {
	return f.assignees, nil
}

func (f *fakeTicketStore) AssignUser(ticketID, targetUserID int, requester *models.User) error {
	f.assignCalls = append(f.assignCalls, targetUserID)
	return f.assignErr
}

func TestTicketService_CreateTicket(t *testing.T) {
	store := &fakeTicketStore{}
	service := NewTicketService(store)
	creator := &models.User{ID: 42, Type: models.UserTypeCustomer}

	ticket, err := service.CreateTicket(&models.TicketCreateRequest{
		Title:    "Derby final",
		Type:     models.TypeSports,
		Venue:    "Stadium",
		Price:    80,
		Priority: models.PriorityHigh,
		DueDate:  time.Now().Add(24 * time.Hour),
	}, creator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ticket.CreatedBy != creator.ID {
		t.Errorf("expected created_by %d, got %d", creator.ID, ticket.CreatedBy)
	}
	if ticket.Status != models.TicketOpen {
		t.Errorf("expected default open status, got %s", ticket.Status)
	}
	if ticket.AssignedUsers == nil || len(ticket.AssignedUsers) != 0 {
		t.Errorf("expected empty assignee list, got %v", ticket.AssignedUsers)
	}
}

func TestTicketService_CreateTicket_PastDueDatePersistsNothing(t *testing.T) {
	store := &fakeTicketStore{}
	service := NewTicketService(store)
	creator := &models.User{ID: 42}

	_, err := service.CreateTicket(&models.TicketCreateRequest{
		Title:    "Expired",
		Type:     models.TypeMovie,
		Venue:    "Cinema",
		Priority: models.PriorityLow,
		DueDate:  time.Now().Add(-time.Minute),
	}, creator)

	appErr, ok := models.AsAppError(err)
	if !ok || appErr.Type != models.ErrorTypeValidation {
		t.Fatalf("expected Validation error, got %v", err)
	}
	if store.createCalls != 0 {
		t.Error("store must not be touched when validation fails")
	}
}

func TestTicketService_GetTicketExpandsAssignees(t *testing.T) {
	store := &fakeTicketStore{
		ticket: &models.Ticket{ID: 7, Title: "Opera"},
		assignees: []models.UserSummary{
			{ID: 2, Name: "First", Email: "first@example.com"},
			{ID: 5, Name: "Second", Email: "second@example.com"},
		},
	}
	service := NewTicketService(store)

	ticket, err := service.GetTicket(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ticket.AssignedUsers) != 2 || ticket.AssignedUsers[0].ID != 2 {
		t.Errorf("unexpected assignees: %v", ticket.AssignedUsers)
	}
}

func TestTicketService_AssignUserDelegatesToStore(t *testing.T) {
	store := &fakeTicketStore{assignErr: models.NewLimitExceededError("ticket already has the maximum of 5 assigned users")}
	service := NewTicketService(store)
	requester := &models.User{ID: 1}

	err := service.AssignUser(3, 9, requester)

	appErr, ok := models.AsAppError(err)
	if !ok || appErr.Type != models.ErrorTypeLimitExceeded {
		t.Fatalf("expected LimitExceeded passthrough, got %v", err)
	}
	if len(store.assignCalls) != 1 || store.assignCalls[0] != 9 {
		t.Errorf("unexpected store calls: %v", store.assignCalls)
	}
}
