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

type RiderRepository struct {
	pool *pgxpool.Pool
}

func NewRiderRepository(pool *pgxpool.Pool) *RiderRepository {
	return &RiderRepository{pool: pool}
}

func (r *RiderRepository) BulkCreate(ctx context.Context, riders []*models.Rider) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO riders (id, name, phone, active)
        VALUES ($1, $2, $3, $4)
    `

	for _, rider := range riders {
		if _, err = tx.Exec(ctx, query, rider.ID, rider.Name, rider.Phone, rider.Active); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *RiderRepository) Create(ctx context.Context, rider *models.Rider) error {
	query := `
        INSERT INTO riders (id, name, phone, active)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.pool.Exec(ctx, query, rider.ID, rider.Name, rider.Phone, rider.Active)
	return err
}

func (r *RiderRepository) GetByID(ctx context.Context, id string) (*models.Rider, error) {
	rider := &models.Rider{}
	err := r.pool.QueryRow(ctx, "SELECT id, name, phone, active FROM riders WHERE id = $1", id).
		Scan(&rider.ID, &rider.Name, &rider.Phone, &rider.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("rider %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rider, nil
}

func (r *RiderRepository) GetAll(ctx context.Context) ([]*models.Rider, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, phone, active FROM riders ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var riders []*models.Rider
	for rows.Next() {
		rider := &models.Rider{}
		if err := rows.Scan(&rider.ID, &rider.Name, &rider.Phone, &rider.Active); err != nil {
			return nil, err
		}
		riders = append(riders, rider)
	}
	return riders, rows.Err()
}

// SetActive flips eligibility for new assignments only; orders already
// holding the rider are unaffected.
func (r *RiderRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, "UPDATE riders SET active = $2 WHERE id = $1", id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rider %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (r *RiderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM riders").Scan(&count)
	return count, err
}

func (r *RiderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE riders CASCADE")
	return err
}
