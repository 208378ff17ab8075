package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `
        id, created_at, restaurant_id, restaurant_name, zone, items,
        item_lines, item_total, delivery_fee, platform_fee, discount,
        total_amount, customer_name, customer_phone, customer_address,
        status, rider_id, is_paid
`

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	lines, err := json.Marshal(order.ItemLines)
	if err != nil {
		return fmt.Errorf("failed to encode item lines: %w", err)
	}

	query := `
        INSERT INTO orders (` + orderColumns + `)
        VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9,
            $10, $11, $12, $13, $14, $15, $16, $17, $18
        )
    `

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CreatedAt,
		order.RestaurantID,
		order.RestaurantName,
		order.Zone,
		order.Items,
		lines,
		order.ItemTotal,
		order.DeliveryFee,
		order.PlatformFee,
		order.Discount,
		order.TotalAmount,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerAddress,
		order.Status,
		order.RiderID,
		order.IsPaid,
	)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateFulfillment writes back the fields the state machine may
// change. The monetary breakdown and itemized content never change
// after creation and are deliberately not part of this statement.
func (r *OrderRepository) UpdateFulfillment(ctx context.Context, order *models.Order) error {
	query := `
        UPDATE orders
        SET status = $2, rider_id = $3, is_paid = $4
        WHERE id = $1
    `
	tag, err := r.pool.Exec(ctx, query, order.ID, order.Status, order.RiderID, order.IsPaid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", order.ID, repositories.ErrNotFound)
	}
	return nil
}

func (r *OrderRepository) CountByCustomerPhone(ctx context.Context, phone string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE customer_phone = $1", phone).Scan(&count)
	return count, err
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var lines []byte
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.RestaurantID,
		&order.RestaurantName,
		&order.Zone,
		&order.Items,
		&lines,
		&order.ItemTotal,
		&order.DeliveryFee,
		&order.PlatformFee,
		&order.Discount,
		&order.TotalAmount,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.CustomerAddress,
		&order.Status,
		&order.RiderID,
		&order.IsPaid,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &order.ItemLines); err != nil {
		return nil, fmt.Errorf("failed to decode item lines: %w", err)
	}
	return order, nil
}
