package repositories

import (
	"fmt"
	"strings"
	"time"

	"ticket-tracker/internal/models"
)

// TicketFilters represents the optional query constraints applied to
// ticket queries. Absent fields impose no constraint. Every value is
// passed as a bound parameter; filter values never reach the query text.
type TicketFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    models.TicketStatus
	Priority  models.TicketPriority
	Type      models.TicketType
	Venue     string
}

// build produces the conjunctive WHERE conditions for the filters with
// positional placeholders starting at $1, plus the bound args and the
// next free placeholder index. Date bounds are inclusive and apply to
// due_date, the same column the per-day metrics span.
func (f TicketFilters) build() ([]string, []interface{}, int) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if f.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", argIndex))
		args = append(args, *f.StartDate)
		argIndex++
	}

	if f.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", argIndex))
		args = append(args, *f.EndDate)
		argIndex++
	}

	if f.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, f.Status)
		argIndex++
	}

	if f.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argIndex))
		args = append(args, f.Priority)
		argIndex++
	}

	if f.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, f.Type)
		argIndex++
	}

	if f.Venue != "" {
		conditions = append(conditions, fmt.Sprintf("venue = $%d", argIndex))
		args = append(args, f.Venue)
		argIndex++
	}

	return conditions, args, argIndex
}

// WhereClause renders the filters as a WHERE clause and its bound args.
// An empty filter set renders as an empty clause (all tickets).
func (f TicketFilters) WhereClause() (string, []interface{}) {
	conditions, args, _ := f.build()
	return joinConditions(conditions), args
}

func joinConditions(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conditions, " AND ")
}
