package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"ticket-tracker/internal/models"
)

// TicketRepository handles ticket data operations, including the atomic
// assignment mutation and the aggregate queries behind analytics
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = "id, title, description, type, venue, status, price, priority, due_date, created_by, created_at"

// Create inserts a new ticket
func (r *TicketRepository) Create(req *models.TicketCreateRequest, createdBy int) (*models.Ticket, error) {
	query := `
		INSERT INTO tickets (title, description, type, venue, status, price, priority, due_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + ticketColumns

	ticket := &models.Ticket{}
	err := r.db.QueryRow(
		query,
		req.Title,
		req.Description,
		req.Type,
		req.Venue,
		req.Status,
		req.Price,
		req.Priority,
		req.DueDate,
		createdBy,
		time.Now(),
	).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Type,
		&ticket.Venue,
		&ticket.Status,
		&ticket.Price,
		&ticket.Priority,
		&ticket.DueDate,
		&ticket.CreatedBy,
		&ticket.CreatedAt,
	)

	if err != nil {
		return nil, models.NewStorageError("failed to create ticket", err)
	}

	return ticket, nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id int) (*models.Ticket, error) {
	query := "SELECT " + ticketColumns + " FROM tickets WHERE id = $1"

	ticket, err := scanTicket(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("ticket not found")
		}
		return nil, models.NewStorageError("failed to get ticket", err)
	}

	return ticket, nil
}

// GetAssignees returns the users assigned to a ticket, in assignment
// order
func (r *TicketRepository) GetAssignees(ticketID int) ([]models.UserSummary, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM ticket_assignees ta
		JOIN users u ON u.id = ta.user_id
		WHERE ta.ticket_id = $1
		ORDER BY ta.id`

	rows, err := r.db.Query(query, ticketID)
	if err != nil {
		return nil, models.NewStorageError("failed to get assignees", err)
	}
	defer rows.Close()

	assignees := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, models.NewStorageError("failed to scan assignee", err)
		}
		assignees = append(assignees, u)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read assignees", err)
	}

	return assignees, nil
}

// AssignUser appends a user to a ticket's assignee list as one atomic
// unit. The ticket row is locked for the duration of the check-then-
// append sequence so the duplicate and limit invariants hold under
// concurrent assignment requests. Check order is load ticket, status,
// authorization, load target, target type, duplicate, limit; the first
// violation reported is always the earliest in that sequence.
func (r *TicketRepository) AssignUser(ticketID, targetUserID int, requester *models.User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return models.NewStorageError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	// Lock the ticket row for the whole check-then-append sequence
	query := "SELECT " + ticketColumns + " FROM tickets WHERE id = $1 FOR UPDATE"
	ticket, err := scanTicket(tx.QueryRow(query, ticketID))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewNotFoundError("ticket not found")
		}
		return models.NewStorageError("failed to get ticket", err)
	}

	if err := ticket.CanModifyAssignments(requester); err != nil {
		return err
	}

	target := &models.User{}
	err = tx.QueryRow("SELECT id, name, email, type FROM users WHERE id = $1", targetUserID).
		Scan(&target.ID, &target.Name, &target.Email, &target.Type)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewNotFoundError("user not found")
		}
		return models.NewStorageError("failed to get user", err)
	}

	assigneeIDs, err := assigneeIDsTx(tx, ticketID)
	if err != nil {
		return err
	}

	if err := models.ValidateAssignee(target, assigneeIDs); err != nil {
		return err
	}

	_, err = tx.Exec(
		"INSERT INTO ticket_assignees (ticket_id, user_id, assigned_at) VALUES ($1, $2, $3)",
		ticketID, targetUserID, time.Now(),
	)
	if err != nil {
		return models.NewStorageError("failed to append assignee", err)
	}

	if err := tx.Commit(); err != nil {
		return models.NewStorageError("failed to commit assignment", err)
	}

	return nil
}

func assigneeIDsTx(tx *sql.Tx, ticketID int) ([]int, error) {
	rows, err := tx.Query("SELECT user_id FROM ticket_assignees WHERE ticket_id = $1 ORDER BY id", ticketID)
	if err != nil {
		return nil, models.NewStorageError("failed to get assignees", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, models.NewStorageError("failed to scan assignee", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read assignees", err)
	}

	return ids, nil
}

// Search returns the lightweight projections of all tickets matching
// the filters, in creation order
func (r *TicketRepository) Search(filters TicketFilters) ([]*models.TicketProjection, error) {
	whereClause, args := filters.WhereClause()

	query := fmt.Sprintf(`
		SELECT id, title, status, priority, type, venue, due_date, created_by
		FROM tickets
		%s
		ORDER BY id`, whereClause)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, models.NewStorageError("failed to search tickets", err)
	}
	defer rows.Close()

	tickets := []*models.TicketProjection{}
	for rows.Next() {
		t := &models.TicketProjection{}
		err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.Type, &t.Venue, &t.DueDate, &t.CreatedBy)
		if err != nil {
			return nil, models.NewStorageError("failed to scan ticket", err)
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read tickets", err)
	}

	return tickets, nil
}

func scanTicket(row *sql.Row) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Type,
		&ticket.Venue,
		&ticket.Status,
		&ticket.Price,
		&ticket.Priority,
		&ticket.DueDate,
		&ticket.CreatedBy,
		&ticket.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}
