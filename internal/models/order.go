package models

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusCooking        OrderStatus = "Cooking"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// Terminal reports whether no further status transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Active reports whether the order is in fulfillment, past confirmation
// but not yet terminal.
func (s OrderStatus) Active() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusCooking, OrderStatusOutForDelivery:
		return true
	}
	return false
}

// CartLine pairs a catalog dish with a requested quantity. Quantity is
// always at least 1; a line at quantity 0 is removed from the cart.
type CartLine struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}

// Order is the central fulfillment record. The monetary breakdown and
// itemized content are frozen at creation; only Status, RiderID and
// IsPaid change afterwards, and only through the state machine.
//
// DeliveryFee holds the fee actually charged, after any coupon discount
// was taken off; TotalAmount = ItemTotal + DeliveryFee + PlatformFee.
type Order struct {
	ID              string      `json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	RestaurantID    string      `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	Zone            string      `json:"zone"`
	Items           string      `json:"items"`
	ItemLines       []CartLine  `json:"item_lines"`
	ItemTotal       int         `json:"item_total"`
	DeliveryFee     int         `json:"delivery_fee"`
	PlatformFee     int         `json:"platform_fee"`
	Discount        int         `json:"discount"`
	TotalAmount     int         `json:"total_amount"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Status          OrderStatus `json:"status"`
	RiderID         string      `json:"rider_id,omitempty"`
	IsPaid          bool        `json:"is_paid"`
}
