package services

import (
	"ticket-tracker/internal/models"
)

// TicketService handles ticket creation, retrieval, and assignment
type TicketService struct {
	tickets TicketStore
}

// NewTicketService creates a new ticket service
func NewTicketService(tickets TicketStore) *TicketService {
	return &TicketService{tickets: tickets}
}

// CreateTicket validates and persists a new ticket for the creator.
// Validation rejects a due date that is not strictly in the future, so
// nothing is persisted for such requests.
func (s *TicketService) CreateTicket(req *models.TicketCreateRequest, creator *models.User) (*models.TicketWithAssignees, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.Create(req, creator.ID)
	if err != nil {
		return nil, err
	}

	return &models.TicketWithAssignees{
		Ticket:        *ticket,
		AssignedUsers: []models.UserSummary{},
	}, nil
}

// GetTicket retrieves a ticket with its assigned users expanded, in
// assignment order
func (s *TicketService) GetTicket(id int) (*models.TicketWithAssignees, error) {
	ticket, err := s.tickets.GetByID(id)
	if err != nil {
		return nil, err
	}

	assignees, err := s.tickets.GetAssignees(id)
	if err != nil {
		return nil, err
	}

	return &models.TicketWithAssignees{
		Ticket:        *ticket,
		AssignedUsers: assignees,
	}, nil
}

// AssignUser appends a user to a ticket's assignee list. All checks and
// the append run as one atomic unit in the store.
func (s *TicketService) AssignUser(ticketID, targetUserID int, requester *models.User) error {
	return s.tickets.AssignUser(ticketID, targetUserID, requester)
}
