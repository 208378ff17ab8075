package postgres

import "github.com/foodyatra/foodyatra/internal/repositories"

var (
	_ repositories.OrderRepository      = (*OrderRepository)(nil)
	_ repositories.RiderRepository      = (*RiderRepository)(nil)
	_ repositories.RestaurantRepository = (*RestaurantRepository)(nil)
	_ repositories.DishRepository       = (*DishRepository)(nil)
	_ repositories.ZoneRepository       = (*ZoneRepository)(nil)
)
