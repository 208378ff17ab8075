package analytics

import (
	"time"

	"github.com/foodyatra/foodyatra/internal/models"
)

// Read-only aggregations over the order collection, recomputed on
// demand for the operations dashboard.

// TotalRevenue sums the total amount of settled orders only.
func TotalRevenue(orders []models.Order) int {
	revenue := 0
	for _, o := range orders {
		if o.IsPaid {
			revenue += o.TotalAmount
		}
	}
	return revenue
}

// PendingOrders returns orders awaiting restaurant confirmation.
func PendingOrders(orders []models.Order) []models.Order {
	var pending []models.Order
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			pending = append(pending, o)
		}
	}
	return pending
}

// ActiveOrders returns orders in fulfillment: Confirmed, Cooking or
// Out for Delivery.
func ActiveOrders(orders []models.Order) []models.Order {
	var active []models.Order
	for _, o := range orders {
		if o.Status.Active() {
			active = append(active, o)
		}
	}
	return active
}

// Summary bundles the dashboard headline figures.
type Summary struct {
	TotalRevenue int
	PendingCount int
	ActiveCount  int
}

func Summarize(orders []models.Order) Summary {
	return Summary{
		TotalRevenue: TotalRevenue(orders),
		PendingCount: len(PendingOrders(orders)),
		ActiveCount:  len(ActiveOrders(orders)),
	}
}

// RiderStats is a rider's commission summary for one calendar month.
// The commission model is "rider keeps the delivery fee" of each order
// they delivered.
type RiderStats struct {
	Count    int
	Earnings int
}

// MonthlyRiderStats aggregates delivered orders for the rider within
// the calendar month of ref.
func MonthlyRiderStats(orders []models.Order, riderID string, ref time.Time) RiderStats {
	var stats RiderStats
	for _, o := range orders {
		if o.RiderID != riderID || o.Status != models.OrderStatusDelivered {
			continue
		}
		if o.CreatedAt.Month() != ref.Month() || o.CreatedAt.Year() != ref.Year() {
			continue
		}
		stats.Count++
		stats.Earnings += o.DeliveryFee
	}
	return stats
}
