package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ordersvc/internal/domain"
	"ordersvc/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO Orders (totalPrice, productIds, status, userName, userEmail, userCpf)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.TotalPrice, order.ProductIDs, order.Status,
		order.UserName, order.UserEmail, order.UserCPF,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted order id: %w", err)
	}

	return r.FindByID(ctx, uint(id))
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, totalPrice, productIds, status, userName, userEmail, userCpf,
		       createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.TotalPrice, &order.ProductIDs, &order.Status,
		&order.UserName, &order.UserEmail, &order.UserCPF,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	query := `
		SELECT id, totalPrice, productIds, status, userName, userEmail, userCpf,
		       createdAt, updatedAt
		FROM Orders
		ORDER BY id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.TotalPrice, &order.ProductIDs, &order.Status,
			&order.UserName, &order.UserEmail, &order.UserCPF,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// Update persists the order's status. Price and product ids are immutable
// after creation, so nothing else is written.
func (r *MySQLOrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, order.Status, order.ID)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// also zero when the status value is unchanged, so confirm existence
		if _, err := r.FindByID(ctx, order.ID); err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, order.ID)
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, order *domain.Order) error {
	query := `DELETE FROM Orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", order.ID))
	}

	return nil
}
