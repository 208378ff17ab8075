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

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO restaurants (id, name, cuisine, rating, phone, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	for _, restaurant := range restaurants {
		_, err = tx.Exec(ctx, query,
			restaurant.ID,
			restaurant.Name,
			restaurant.Cuisine,
			restaurant.Rating,
			restaurant.Phone,
			restaurant.ImageURL,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
        INSERT INTO restaurants (id, name, cuisine, rating, phone, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Cuisine,
		restaurant.Rating,
		restaurant.Phone,
		restaurant.ImageURL,
	)
	return err
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, cuisine, rating, phone, image_url FROM restaurants WHERE id = $1", id).
		Scan(&restaurant.ID, &restaurant.Name, &restaurant.Cuisine, &restaurant.Rating, &restaurant.Phone, &restaurant.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *RestaurantRepository) GetAll(ctx context.Context) (map[string]*models.Restaurant, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, cuisine, rating, phone, image_url FROM restaurants")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make(map[string]*models.Restaurant)
	for rows.Next() {
		restaurant := &models.Restaurant{}
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Cuisine,
			&restaurant.Rating,
			&restaurant.Phone,
			&restaurant.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		restaurants[restaurant.ID] = restaurant
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach dish IDs so callers can render menus without a second query.
	dishRows, err := r.pool.Query(ctx, "SELECT id, restaurant_id FROM dishes")
	if err != nil {
		return nil, err
	}
	defer dishRows.Close()

	for dishRows.Next() {
		var dishID, restaurantID string
		if err := dishRows.Scan(&dishID, &restaurantID); err != nil {
			return nil, err
		}
		if restaurant, ok := restaurants[restaurantID]; ok {
			restaurant.DishIDs = append(restaurant.DishIDs, dishID)
		}
	}
	return restaurants, dishRows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
