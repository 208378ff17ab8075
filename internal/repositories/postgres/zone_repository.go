package postgres

import (
	"context"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneRepository struct {
	pool *pgxpool.Pool
}

func NewZoneRepository(pool *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{pool: pool}
}

func (r *ZoneRepository) BulkCreate(ctx context.Context, zones []*models.DeliveryZone) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO zones (id, name, distance_km)
        VALUES ($1, $2, $3)
    `

	for _, zone := range zones {
		if _, err = tx.Exec(ctx, query, zone.ID, zone.Name, zone.DistanceKm); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ZoneRepository) GetAll(ctx context.Context) ([]*models.DeliveryZone, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, distance_km FROM zones ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*models.DeliveryZone
	for rows.Next() {
		zone := &models.DeliveryZone{}
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.DistanceKm); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

func (r *ZoneRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM zones").Scan(&count)
	return count, err
}

func (r *ZoneRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE zones CASCADE")
	return err
}
