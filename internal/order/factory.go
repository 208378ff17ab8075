package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/pricing"
)

// Sequence hands out the strictly increasing order counter. The counter
// is global, durable across restarts, and starts at 1 when none exists.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Factory builds immutable Order records from a priced cart. Checkout
// preconditions (non-empty cart, validated customer contact) are the
// caller's responsibility; the factory does not re-validate.
type Factory struct {
	seq Sequence
	now func() time.Time
}

func NewFactory(seq Sequence) *Factory {
	return &Factory{seq: seq, now: time.Now}
}

// Create prices the cart against the zone, snapshots the customer
// contact, and freezes the monetary breakdown. The order starts out
// Pending, unassigned and unpaid.
func (f *Factory) Create(ctx context.Context, c *cart.Store, zone models.DeliveryZone, customer models.Customer, restaurant models.Restaurant, discount int) (models.Order, error) {
	n, err := f.seq.Next(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("order sequence: %w", err)
	}

	now := f.now()
	quote := pricing.NewQuote(c, zone, discount)
	lines := c.Lines()

	return models.Order{
		ID:              fmt.Sprintf("FY-%02d%02d-%d", now.Day(), int(now.Month()), n),
		CreatedAt:       now,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		Zone:            zone.Name,
		Items:           itemSummary(lines),
		ItemLines:       lines,
		ItemTotal:       quote.ItemTotal,
		DeliveryFee:     quote.ChargedDeliveryFee(),
		PlatformFee:     quote.PlatformFee,
		Discount:        quote.Discount,
		TotalAmount:     quote.FinalTotal,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Status:          models.OrderStatusPending,
		IsPaid:          false,
	}, nil
}

func itemSummary(lines []models.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Dish.Name))
	}
	return strings.Join(parts, ", ")
}
