package factories

import (
	"math/rand"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/lucsky/cuid"
)

type RiderFactory struct{}

func (rf *RiderFactory) CreateRider() *models.Rider {
	return &models.Rider{
		ID:     cuid.New(),
		Name:   fake.Person().Name(),
		Phone:  randomPhone(),
		Active: true,
	}
}

type ZoneFactory struct{}

// CreateZones generates n destination zones plus the city-center zone
// at distance 0.
func (zf *ZoneFactory) CreateZones(cityName string, n int) []*models.DeliveryZone {
	zones := []*models.DeliveryZone{
		{ID: cuid.New(), Name: cityName + " (City)", DistanceKm: 0},
	}
	for i := 0; i < n; i++ {
		zones = append(zones, &models.DeliveryZone{
			ID:         cuid.New(),
			Name:       fake.Address().City(),
			DistanceKm: float64(rand.Intn(46)+5) / 2, // 2.5 to 25 km
		})
	}
	return zones
}
