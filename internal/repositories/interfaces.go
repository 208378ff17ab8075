package repositories

import (
	"context"
	"errors"

	"github.com/foodyatra/foodyatra/internal/models"
)

// ErrNotFound is returned when a referenced order, rider, restaurant or
// dish identifier does not exist. Callers handle the absence
// explicitly; it is never fatal.
var ErrNotFound = errors.New("not found")

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetAll(ctx context.Context) ([]*models.Order, error)
	// UpdateFulfillment persists the only mutable order fields: status,
	// rider assignment and the settled flag.
	UpdateFulfillment(ctx context.Context, order *models.Order) error
	CountByCustomerPhone(ctx context.Context, phone string) (int, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type RiderRepository interface {
	BulkCreate(ctx context.Context, riders []*models.Rider) error
	Create(ctx context.Context, rider *models.Rider) error
	GetByID(ctx context.Context, id string) (*models.Rider, error)
	GetAll(ctx context.Context) ([]*models.Rider, error)
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	GetAll(ctx context.Context) (map[string]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type DishRepository interface {
	BulkCreate(ctx context.Context, dishes []*models.Dish) error
	Create(ctx context.Context, dish *models.Dish) error
	GetByID(ctx context.Context, id string) (*models.Dish, error)
	GetAll(ctx context.Context) (map[string]*models.Dish, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Dish, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ZoneRepository interface {
	BulkCreate(ctx context.Context, zones []*models.DeliveryZone) error
	GetAll(ctx context.Context) ([]*models.DeliveryZone, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
