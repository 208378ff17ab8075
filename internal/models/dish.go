package models

import "fmt"

// Price distinguishes a fixed menu price from "price on request" items,
// whose cost is confirmed with the restaurant out-of-band.
type Price struct {
	Amount    int  `json:"amount"`
	OnRequest bool `json:"on_request"`
}

func FixedPrice(amount int) Price {
	return Price{Amount: amount}
}

func PriceOnRequest() Price {
	return Price{OnRequest: true}
}

func (p Price) String() string {
	if p.OnRequest {
		return "Price on Request"
	}
	return fmt.Sprintf("₹%d", p.Amount)
}

type Dish struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        Price  `json:"price"`
	IsVeg        bool   `json:"is_veg"`
	ImageURL     string `json:"image_url"`
}
