package factories

import (
	"math/rand"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type RestaurantFactory struct{}

func (rf *RestaurantFactory) CreateRestaurant() *models.Restaurant {
	return &models.Restaurant{
		ID:       cuid.New(),
		Name:     fake.Company().Name(),
		Cuisine:  randomCuisine(),
		Rating:   fake.Float64(1, 3, 5),
		Phone:    randomPhone(),
		ImageURL: fake.Internet().URL(),
	}
}

func randomCuisine() string {
	cuisines := []string{
		"Gujarati Thali", "Punjabi, Chinese", "South Indian, Jain",
		"Burgers, Pizza, Fast Food", "Kathiyawadi", "Multi-Cuisine",
		"Street Food", "Sweets & Snacks",
	}
	return cuisines[rand.Intn(len(cuisines))]
}

func randomPhone() string {
	digits := make([]byte, 10)
	digits[0] = byte('6' + rand.Intn(4))
	for i := 1; i < 10; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}
