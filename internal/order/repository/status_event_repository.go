package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orderfellow/internal/domain"
)

type MySQLStatusEventRepository struct {
	db *sql.DB
}

func NewMySQLStatusEventRepository(db *sql.DB) *MySQLStatusEventRepository {
	return &MySQLStatusEventRepository{db: db}
}

func (r *MySQLStatusEventRepository) Insert(ctx context.Context, tx *sql.Tx, event domain.StatusEvent) (uint, error) {
	query := `
		INSERT INTO status_events (order_id, status, note, timestamp)
		VALUES (?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		event.OrderID, event.Status, event.Note, event.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting status event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted status event id: %w", err)
	}

	return uint(id), nil
}

// ListByOrderID returns the full ledger for an order, oldest first.
// Ties on timestamp are broken by insertion order.
func (r *MySQLStatusEventRepository) ListByOrderID(ctx context.Context, orderID uint) ([]domain.StatusEvent, error) {
	query := `
		SELECT id, order_id, status, note, timestamp
		FROM status_events
		WHERE order_id = ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying status events: %w", err)
	}
	defer rows.Close()

	var events []domain.StatusEvent
	for rows.Next() {
		var event domain.StatusEvent
		if err := rows.Scan(&event.ID, &event.OrderID, &event.Status, &event.Note, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning status event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status events: %w", err)
	}

	return events, nil
}
