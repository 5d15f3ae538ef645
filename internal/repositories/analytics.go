package repositories

import (
	"database/sql"
	"fmt"

	"ticket-tracker/internal/models"
)

// SpanStats holds a ticket count together with the whole-day span of
// the due dates in the counted set
type SpanStats struct {
	Count    int
	SpanDays int
}

// CountTickets counts tickets matching the filters, optionally
// constrained to a single status on top of the filter set
func (r *TicketRepository) CountTickets(filters TicketFilters, status models.TicketStatus) (int, error) {
	conditions, args, argIndex := filters.build()
	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM tickets %s", joinConditions(conditions))

	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, models.NewStorageError("failed to count tickets", err)
	}

	return count, nil
}

// AveragePrice returns the mean ticket price over the filtered set,
// 0 when the set is empty
func (r *TicketRepository) AveragePrice(filters TicketFilters) (float64, error) {
	whereClause, args := filters.WhereClause()

	query := fmt.Sprintf("SELECT COALESCE(AVG(price), 0) FROM tickets %s", whereClause)

	var avg float64
	if err := r.db.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, models.NewStorageError("failed to average ticket prices", err)
	}

	return avg, nil
}

// TicketSpan returns the count and whole-day due-date span of the
// filtered set
func (r *TicketRepository) TicketSpan(filters TicketFilters) (SpanStats, error) {
	whereClause, args := filters.WhereClause()

	query := fmt.Sprintf("SELECT COUNT(*), MIN(due_date), MAX(due_date) FROM tickets %s", whereClause)

	var stats SpanStats
	var minDue, maxDue sql.NullTime
	if err := r.db.QueryRow(query, args...).Scan(&stats.Count, &minDue, &maxDue); err != nil {
		return SpanStats{}, models.NewStorageError("failed to get ticket due date span", err)
	}

	if minDue.Valid && maxDue.Valid {
		stats.SpanDays = int(maxDue.Time.Sub(minDue.Time).Hours() / 24)
	}

	return stats, nil
}

// PriorityStats returns per-priority counts and due-date spans over the
// filtered set. Priorities with no matching tickets are absent from the
// map.
func (r *TicketRepository) PriorityStats(filters TicketFilters) (map[models.TicketPriority]SpanStats, error) {
	whereClause, args := filters.WhereClause()

	query := fmt.Sprintf(`
		SELECT priority, COUNT(*), MIN(due_date), MAX(due_date)
		FROM tickets
		%s
		GROUP BY priority`, whereClause)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, models.NewStorageError("failed to get priority stats", err)
	}
	defer rows.Close()

	stats := make(map[models.TicketPriority]SpanStats)
	for rows.Next() {
		var priority models.TicketPriority
		var s SpanStats
		var minDue, maxDue sql.NullTime
		if err := rows.Scan(&priority, &s.Count, &minDue, &maxDue); err != nil {
			return nil, models.NewStorageError("failed to scan priority stats", err)
		}
		if minDue.Valid && maxDue.Valid {
			s.SpanDays = int(maxDue.Time.Sub(minDue.Time).Hours() / 24)
		}
		stats[priority] = s
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read priority stats", err)
	}

	return stats, nil
}

// CountByType returns per-type ticket counts over the filtered set.
// Types with no matching tickets are absent from the map.
func (r *TicketRepository) CountByType(filters TicketFilters) (map[models.TicketType]int, error) {
	whereClause, args := filters.WhereClause()

	query := fmt.Sprintf("SELECT type, COUNT(*) FROM tickets %s GROUP BY type", whereClause)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, models.NewStorageError("failed to count tickets by type", err)
	}
	defer rows.Close()

	counts := make(map[models.TicketType]int)
	for rows.Next() {
		var ticketType models.TicketType
		var count int
		if err := rows.Scan(&ticketType, &count); err != nil {
			return nil, models.NewStorageError("failed to scan type count", err)
		}
		counts[ticketType] = count
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("failed to read type counts", err)
	}

	return counts, nil
}
