package redis

import (
	"context"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/redis/go-redis/v9"
)

const counterKey = "fy:order_counter"

// SequenceRepository backs the order counter with a Redis INCR, which
// is atomic, durable with persistence enabled, and starts at 1 when the
// key does not exist yet. The counter is global, not per-day.
type SequenceRepository struct {
	client *redis.Client
}

func NewSequenceRepository(config *models.Config) *SequenceRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	return &SequenceRepository{client: client}
}

func (s *SequenceRepository) Next(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, counterKey).Result()
}

func (s *SequenceRepository) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SequenceRepository) Close() error {
	return s.client.Close()
}
