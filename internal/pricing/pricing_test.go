package pricing

import (
	"testing"

	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/stretchr/testify/assert"
)

func zone(distanceKm float64) models.DeliveryZone {
	return models.DeliveryZone{Name: "test", DistanceKm: distanceKm}
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{"city center flat fee", 0, 10},
		{"short hop floored at minimum", 2, 10},
		{"three km exactly at floor", 3, 10},
		{"nine km", 9, 27},
		{"fractional distance rounds up", 14.4, 44},
		{"far village", 23, 69},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryFee(zone(tt.distanceKm)))
		})
	}
}

func TestDeliveryFee_MonotonicAndFloored(t *testing.T) {
	prev := 0
	for km := 0.0; km <= 30; km += 0.5 {
		fee := DeliveryFee(zone(km))
		assert.GreaterOrEqual(t, fee, 10, "km=%v", km)
		assert.GreaterOrEqual(t, fee, prev, "km=%v", km)
		prev = fee
	}
}

func dosaCart(t *testing.T) *cart.Store {
	t.Helper()
	c := cart.New()
	dosa := models.Dish{ID: "d1", Name: "Masala Dosa", Price: models.FixedPrice(145)}
	c.Add(dosa)
	c.Add(dosa)
	return c
}

func TestNewQuote(t *testing.T) {
	c := dosaCart(t)

	q := NewQuote(c, zone(9), 0)
	assert.Equal(t, 290, q.ItemTotal)
	assert.Equal(t, 27, q.DeliveryFee)
	assert.Equal(t, 2, q.PlatformFee)
	assert.Equal(t, 319, q.FinalTotal)
	assert.False(t, q.HasPendingPriceItems)

	q = NewQuote(c, zone(0), 0)
	assert.Equal(t, 10, q.DeliveryFee)
	assert.Equal(t, 302, q.FinalTotal)
}

func TestNewQuote_WithDiscount(t *testing.T) {
	c := dosaCart(t)

	q := NewQuote(c, zone(9), 27)
	assert.Equal(t, 292, q.FinalTotal)
	assert.Equal(t, 0, q.ChargedDeliveryFee())
}

func TestNewQuote_Identity(t *testing.T) {
	c := dosaCart(t)
	for _, discount := range []int{0, 5, 27} {
		for _, km := range []float64{0, 4, 9, 14.4} {
			q := NewQuote(c, zone(km), discount)
			assert.Equal(t, q.ItemTotal+q.DeliveryFee+q.PlatformFee-q.Discount, q.FinalTotal)
		}
	}
}

func TestNewQuote_EmptyCart(t *testing.T) {
	q := NewQuote(cart.New(), zone(9), 0)
	assert.Equal(t, 0, q.ItemTotal)
	assert.Equal(t, 29, q.FinalTotal)
}

func TestNewQuote_PendingPriceItems(t *testing.T) {
	c := cart.New()
	c.Add(models.Dish{ID: "d1", Name: "Paneer Makhani", Price: models.PriceOnRequest()})

	q := NewQuote(c, zone(4), 0)
	assert.True(t, q.HasPendingPriceItems)
	assert.Equal(t, 0, q.ItemTotal)
}
