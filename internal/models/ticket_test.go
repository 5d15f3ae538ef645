package models

import (
	"testing"
	"time"
)

func TestTicketCreateRequest_Validate(t *testing.T) {
	valid := func() TicketCreateRequest {
		return TicketCreateRequest{
			Title:    "Jazz Night",
			Type:     TypeConcert,
			Venue:    "Blue Hall",
			Status:   TicketOpen,
			Price:    45.50,
			Priority: PriorityMedium,
			DueDate:  time.Now().Add(48 * time.Hour),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*TicketCreateRequest)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid request",
			mutate: func(req *TicketCreateRequest) {},
		},
		{
			name:    "missing title",
			mutate:  func(req *TicketCreateRequest) { req.Title = "  " },
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "missing venue",
			mutate:  func(req *TicketCreateRequest) { req.Venue = "" },
			wantErr: true,
			errMsg:  "venue is required",
		},
		{
			name:    "unknown type",
			mutate:  func(req *TicketCreateRequest) { req.Type = "circus" },
			wantErr: true,
			errMsg:  "type must be one of: concert, movie, sports, theatre, exhibition, conference",
		},
		{
			name:    "unknown status",
			mutate:  func(req *TicketCreateRequest) { req.Status = "archived" },
			wantErr: true,
			errMsg:  "status must be one of: open, in-progress, closed",
		},
		{
			name:    "negative price",
			mutate:  func(req *TicketCreateRequest) { req.Price = -1 },
			wantErr: true,
			errMsg:  "price must be non-negative",
		},
		{
			name:    "unknown priority",
			mutate:  func(req *TicketCreateRequest) { req.Priority = "urgent" },
			wantErr: true,
			errMsg:  "priority must be one of: low, medium, high",
		},
		{
			name:    "due date in the past",
			mutate:  func(req *TicketCreateRequest) { req.DueDate = time.Now().Add(-time.Hour) },
			wantErr: true,
			errMsg:  "due_date must be in the future",
		},
		{
			name:    "due date exactly now",
			mutate:  func(req *TicketCreateRequest) { req.DueDate = time.Now() },
			wantErr: true,
			errMsg:  "due_date must be in the future",
		},
		{
			name:    "missing due date",
			mutate:  func(req *TicketCreateRequest) { req.DueDate = time.Time{} },
			wantErr: true,
			errMsg:  "due_date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				appErr, ok := AsAppError(err)
				if !ok {
					t.Fatalf("expected AppError, got %T", err)
				}
				if appErr.Type != ErrorTypeValidation {
					t.Errorf("expected Validation error, got %s", appErr.Type)
				}
				if appErr.Message != tt.errMsg {
					t.Errorf("expected message %q, got %q", tt.errMsg, appErr.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTicketCreateRequest_Validate_DefaultsStatusToOpen(t *testing.T) {
	req := TicketCreateRequest{
		Title:    "Jazz Night",
		Type:     TypeConcert,
		Venue:    "Blue Hall",
		Priority: PriorityLow,
		DueDate:  time.Now().Add(time.Hour),
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != TicketOpen {
		t.Errorf("expected status to default to open, got %s", req.Status)
	}
}

func TestTicket_CanModifyAssignments(t *testing.T) {
	creator := &User{ID: 1, Type: UserTypeCustomer}
	admin := &User{ID: 2, Type: UserTypeAdmin}
	stranger := &User{ID: 3, Type: UserTypeCustomer}

	tests := []struct {
		name      string
		status    TicketStatus
		requester *User
		wantType  ErrorType
	}{
		{name: "creator on open ticket", status: TicketOpen, requester: creator},
		{name: "admin on open ticket", status: TicketOpen, requester: admin},
		{name: "creator on in-progress ticket", status: TicketInProgress, requester: creator},
		{name: "stranger on open ticket", status: TicketOpen, requester: stranger, wantType: ErrorTypeUnauthorized},
		// The closed-state check runs before authorization, so a closed
		// ticket reports InvalidState even for an unauthorized stranger
		{name: "stranger on closed ticket", status: TicketClosed, requester: stranger, wantType: ErrorTypeInvalidState},
		{name: "admin on closed ticket", status: TicketClosed, requester: admin, wantType: ErrorTypeInvalidState},
		{name: "creator on closed ticket", status: TicketClosed, requester: creator, wantType: ErrorTypeInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := &Ticket{ID: 10, Status: tt.status, CreatedBy: creator.ID}

			err := ticket.CanModifyAssignments(tt.requester)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			appErr, ok := AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Type != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, appErr.Type)
			}
		})
	}
}

func TestValidateAssignee(t *testing.T) {
	customer := &User{ID: 7, Type: UserTypeCustomer}
	admin := &User{ID: 8, Type: UserTypeAdmin}

	tests := []struct {
		name        string
		target      *User
		assigneeIDs []int
		wantType    ErrorType
	}{
		{name: "first assignee", target: customer, assigneeIDs: nil},
		{name: "fifth assignee", target: customer, assigneeIDs: []int{1, 2, 3, 4}},
		{name: "admin target", target: admin, assigneeIDs: nil, wantType: ErrorTypeInvalidTarget},
		// The admin check runs before the duplicate check
		{name: "admin target already assigned", target: admin, assigneeIDs: []int{8}, wantType: ErrorTypeInvalidTarget},
		{name: "duplicate target", target: customer, assigneeIDs: []int{5, 7}, wantType: ErrorTypeConflict},
		// The duplicate check runs before the limit check
		{name: "duplicate target on full ticket", target: customer, assigneeIDs: []int{1, 2, 3, 4, 7}, wantType: ErrorTypeConflict},
		{name: "sixth assignee", target: customer, assigneeIDs: []int{1, 2, 3, 4, 5}, wantType: ErrorTypeLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignee(tt.target, tt.assigneeIDs)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			appErr, ok := AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Type != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, appErr.Type)
			}
		})
	}
}
