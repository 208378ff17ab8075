package pricing

import (
	"math"

	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/models"
)

// All amounts are whole rupees; there is no fractional currency.
const (
	// PlatformFee is added to every order regardless of zone or cart size.
	PlatformFee = 2

	minimumDeliveryFee = 10
	perKmRate          = 3
)

// DeliveryFee computes the distance-based fee for a zone: 3 rupees per
// kilometer rounded up, floored at 10. The city-center zone (distance 0)
// pays the flat minimum.
func DeliveryFee(zone models.DeliveryZone) int {
	if zone.DistanceKm == 0 {
		return minimumDeliveryFee
	}
	fee := int(math.Ceil(zone.DistanceKm * perKmRate))
	if fee < minimumDeliveryFee {
		fee = minimumDeliveryFee
	}
	return fee
}

// Quote is the frozen monetary breakdown for a cart priced against a
// destination zone. FinalTotal = ItemTotal + DeliveryFee + PlatformFee
// − Discount.
type Quote struct {
	ItemTotal   int
	DeliveryFee int
	PlatformFee int
	Discount    int
	FinalTotal  int

	// HasPendingPriceItems flags carts holding on-request dishes whose
	// totals are provisional pending manual confirmation.
	HasPendingPriceItems bool
}

// NewQuote prices the cart for delivery to the zone with the given
// discount already validated by the coupon rules.
func NewQuote(c *cart.Store, zone models.DeliveryZone, discount int) Quote {
	itemTotal := c.Total()
	deliveryFee := DeliveryFee(zone)
	return Quote{
		ItemTotal:            itemTotal,
		DeliveryFee:          deliveryFee,
		PlatformFee:          PlatformFee,
		Discount:             discount,
		FinalTotal:           itemTotal + deliveryFee + PlatformFee - discount,
		HasPendingPriceItems: c.HasPendingPriceItems(),
	}
}

// ChargedDeliveryFee is the fee the customer actually pays after the
// discount is taken off, the figure recorded on the order and handed to
// the rider commission model.
func (q Quote) ChargedDeliveryFee() int {
	return q.DeliveryFee - q.Discount
}
