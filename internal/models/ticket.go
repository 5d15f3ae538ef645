package models

import (
	"strings"
	"time"
)

// TicketStatus represents the status of a ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketClosed     TicketStatus = "closed"
)

// TicketPriority represents the priority of a ticket
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// TicketType represents the event category of a ticket. The type domain
// is a closed enum applied uniformly to validation and analytics.
type TicketType string

const (
	TypeConcert    TicketType = "concert"
	TypeMovie      TicketType = "movie"
	TypeSports     TicketType = "sports"
	TypeTheatre    TicketType = "theatre"
	TypeExhibition TicketType = "exhibition"
	TypeConference TicketType = "conference"
)

// TicketStatuses lists all valid ticket statuses
var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketClosed}

// TicketPriorities lists all valid ticket priorities
var TicketPriorities = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh}

// TicketTypes lists all valid ticket types
var TicketTypes = []TicketType{TypeConcert, TypeMovie, TypeSports, TypeTheatre, TypeExhibition, TypeConference}

// MaxAssignees is the maximum number of users that can be assigned to a
// single ticket
const MaxAssignees = 5

// Ticket represents a support/event ticket
type Ticket struct {
	ID          int            `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Type        TicketType     `json:"type" db:"type"`
	Venue       string         `json:"venue" db:"venue"`
	Status      TicketStatus   `json:"status" db:"status"`
	Price       float64        `json:"price" db:"price"`
	Priority    TicketPriority `json:"priority" db:"priority"`
	DueDate     time.Time      `json:"due_date" db:"due_date"`
	CreatedBy   int            `json:"created_by" db:"created_by"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// TicketWithAssignees is a ticket with its assigned users expanded to
// lightweight user objects, in assignment order
type TicketWithAssignees struct {
	Ticket
	AssignedUsers []UserSummary `json:"assigned_users"`
}

// TicketProjection is the lightweight ticket shape returned by the
// ticket-scoped analytics listing
type TicketProjection struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Status    TicketStatus   `json:"status"`
	Priority  TicketPriority `json:"priority"`
	Type      TicketType     `json:"type"`
	Venue     string         `json:"venue"`
	DueDate   time.Time      `json:"due_date"`
	CreatedBy int            `json:"created_by"`
}

// TicketCreateRequest represents the data needed to create a ticket
type TicketCreateRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        TicketType     `json:"type"`
	Venue       string         `json:"venue"`
	Status      TicketStatus   `json:"status"`
	Price       float64        `json:"price"`
	Priority    TicketPriority `json:"priority"`
	DueDate     time.Time      `json:"due_date"`
}

// Validate validates ticket creation data. The due date must be strictly
// in the future; this is enforced once at creation and never re-checked.
func (req *TicketCreateRequest) Validate() error {
	if strings.TrimSpace(req.Title) == "" {
		return NewValidationError("title is required")
	}
	if len(req.Title) > 255 {
		return NewValidationError("title must be at most 255 characters")
	}

	if strings.TrimSpace(req.Venue) == "" {
		return NewValidationError("venue is required")
	}

	if !validTicketType(req.Type) {
		return NewValidationError("type must be one of: concert, movie, sports, theatre, exhibition, conference")
	}

	if req.Status == "" {
		req.Status = TicketOpen
	}
	if !validTicketStatus(req.Status) {
		return NewValidationError("status must be one of: open, in-progress, closed")
	}

	if req.Price < 0 {
		return NewValidationError("price must be non-negative")
	}

	if !validTicketPriority(req.Priority) {
		return NewValidationError("priority must be one of: low, medium, high")
	}

	if req.DueDate.IsZero() {
		return NewValidationError("due_date is required")
	}
	if !req.DueDate.After(time.Now()) {
		return NewValidationError("due_date must be in the future")
	}

	return nil
}

// CanModifyAssignments checks whether the ticket accepts assignment
// changes from the requester. Closed tickets are rejected before the
// requester is ever considered, so a closed ticket reports the state
// error even to an unauthorized caller.
func (t *Ticket) CanModifyAssignments(requester *User) error {
	if t.Status == TicketClosed {
		return NewInvalidStateError("cannot assign users to a closed ticket")
	}
	if !requester.IsAdmin() && requester.ID != t.CreatedBy {
		return NewUnauthorizedError("only the ticket creator or an admin can assign users")
	}
	return nil
}

// ValidateAssignee checks whether the target user can be appended to the
// given assignee list. Admins are never assignable, duplicates are
// rejected before the length limit is considered.
func ValidateAssignee(target *User, assigneeIDs []int) error {
	if target.IsAdmin() {
		return NewInvalidTargetError("admin users cannot be assigned to tickets")
	}
	for _, id := range assigneeIDs {
		if id == target.ID {
			return NewConflictError("user is already assigned to this ticket")
		}
	}
	if len(assigneeIDs) >= MaxAssignees {
		return NewLimitExceededError("ticket already has the maximum of 5 assigned users")
	}
	return nil
}

func validTicketStatus(s TicketStatus) bool {
	for _, v := range TicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func validTicketPriority(p TicketPriority) bool {
	for _, v := range TicketPriorities {
		if v == p {
			return true
		}
	}
	return false
}

func validTicketType(t TicketType) bool {
	for _, v := range TicketTypes {
		if v == t {
			return true
		}
	}
	return false
}
