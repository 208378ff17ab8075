package models

type Restaurant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Cuisine  string   `json:"cuisine"`
	Rating   float64  `json:"rating"`
	Phone    string   `json:"phone"`
	ImageURL string   `json:"image_url"`
	DishIDs  []string `json:"dish_ids"`
}
