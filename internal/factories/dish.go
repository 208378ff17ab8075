package factories

import (
	"math/rand"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/lucsky/cuid"
)

type DishFactory struct{}

func (df *DishFactory) CreateDish(restaurant *models.Restaurant) models.Dish {
	price := models.FixedPrice((rand.Intn(56) + 5) * 5) // 25..300 in steps of 5
	if rand.Float64() < 0.1 {
		// Some kitchens quote dishes on request only.
		price = models.PriceOnRequest()
	}
	return models.Dish{
		ID:           cuid.New(),
		RestaurantID: restaurant.ID,
		Name:         randomDishName(restaurant.Cuisine),
		Description:  fake.Lorem().Sentence(8),
		Price:        price,
		IsVeg:        rand.Float64() < 0.85,
		ImageURL:     fake.Internet().URL(),
	}
}

func randomDishName(cuisine string) string {
	dishes := map[string][]string{
		"Gujarati Thali":            {"Fixed Gujarati Thali", "Undhiyu", "Thepla with Chhundo", "Khichdi Kadhi"},
		"Punjabi, Chinese":          {"Paneer Makhani", "Spicy Garlic Noodles", "Dal Tadka & Jeera Rice", "Veg Manchurian"},
		"South Indian, Jain":        {"Masala Dosa", "Veg Uttapam", "Fixed Jain Thali", "Idli Sambhar"},
		"Burgers, Pizza, Fast Food": {"Veg Cheese Burger", "Italian Pizza", "Kutchi Dabeli", "Bombay Pav Bhaji"},
		"Kathiyawadi":               {"Sev Tameta", "Bajra Rotlo with Ringan Olo", "Lasaniya Bataka"},
		"Street Food":               {"Pani Puri Plate", "Vada Pav", "Bhel Puri", "Samosa (2 pcs)"},
		"Sweets & Snacks":           {"Gulab Jamun", "Jalebi Fafda", "Mohanthal", "Khaman Dhokla"},
	}
	if names, ok := dishes[cuisine]; ok {
		return names[rand.Intn(len(names))]
	}
	return "Special of the Day"
}
