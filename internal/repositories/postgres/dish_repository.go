package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) *DishRepository {
	return &DishRepository{pool: pool}
}

func (r *DishRepository) BulkCreate(ctx context.Context, dishes []*models.Dish) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO dishes (
            id, restaurant_id, name, description, price_amount,
            price_on_request, is_veg, image_url
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	for _, dish := range dishes {
		_, err = tx.Exec(ctx, query,
			dish.ID,
			dish.RestaurantID,
			dish.Name,
			dish.Description,
			dish.Price.Amount,
			dish.Price.OnRequest,
			dish.IsVeg,
			dish.ImageURL,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	query := `
        INSERT INTO dishes (
            id, restaurant_id, name, description, price_amount,
            price_on_request, is_veg, image_url
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.pool.Exec(ctx, query,
		dish.ID,
		dish.RestaurantID,
		dish.Name,
		dish.Description,
		dish.Price.Amount,
		dish.Price.OnRequest,
		dish.IsVeg,
		dish.ImageURL,
	)
	return err
}

const dishColumns = `
        id, restaurant_id, name, description, price_amount,
        price_on_request, is_veg, image_url
`

func (r *DishRepository) GetByID(ctx context.Context, id string) (*models.Dish, error) {
	dish, err := scanDish(r.pool.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("dish %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return dish, nil
}

func (r *DishRepository) GetAll(ctx context.Context) (map[string]*models.Dish, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+dishColumns+` FROM dishes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make(map[string]*models.Dish)
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes[dish.ID] = dish
	}
	return dishes, rows.Err()
}

func (r *DishRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Dish, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE restaurant_id = $1 ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []*models.Dish
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *DishRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dishes").Scan(&count)
	return count, err
}

func (r *DishRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE dishes CASCADE")
	return err
}

func scanDish(row pgx.Row) (*models.Dish, error) {
	dish := &models.Dish{}
	err := row.Scan(
		&dish.ID,
		&dish.RestaurantID,
		&dish.Name,
		&dish.Description,
		&dish.Price.Amount,
		&dish.Price.OnRequest,
		&dish.IsVeg,
		&dish.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return dish, nil
}
