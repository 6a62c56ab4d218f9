package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"orderfellow/internal/domain"
	apperrors "orderfellow/internal/errors"
)

const mysqlErrDuplicateEntry = 1062

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) FindByExternalID(ctx context.Context, externalOrderID string) (*domain.Order, error) {
	query := `
		SELECT id, external_order_id, company_id, customer_name, customer_email,
		       delivery_address, item_summary, current_status, created_at, updated_at
		FROM orders
		WHERE external_order_id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, externalOrderID).Scan(
		&order.ID, &order.ExternalOrderID, &order.CompanyID, &order.CustomerName,
		&order.CustomerEmail, &order.DeliveryAddress, &order.ItemSummary,
		&order.CurrentStatus, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", externalOrderID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by external id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (external_order_id, company_id, customer_name, customer_email,
		                    delivery_address, item_summary, current_status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.ExternalOrderID, order.CompanyID, order.CustomerName, order.CustomerEmail,
		order.DeliveryAddress, order.ItemSummary, order.CurrentStatus,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, apperrors.NewConflictError("Order already exists")
		}
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLOrderRepository) UpdateCurrentStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error {
	query := `UPDATE orders SET current_status = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order current status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
