package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryZone_TransitEstimate(t *testing.T) {
	tests := []struct {
		distanceKm float64
		want       string
	}{
		{0, "15-20 min"},
		{4, "25-35 min"},
		{9, "38-48 min"},
		{14.4, "51-61 min"},
	}
	for _, tt := range tests {
		zone := DeliveryZone{DistanceKm: tt.distanceKm}
		assert.Equal(t, tt.want, zone.TransitEstimate(), "distance %v", tt.distanceKm)
	}
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "₹145", FixedPrice(145).String())
	assert.Equal(t, "Price on Request", PriceOnRequest().String())
	assert.False(t, FixedPrice(0).OnRequest, "a legitimately free dish is not on-request")
}

func TestCustomer_Validate(t *testing.T) {
	valid := Customer{Name: "Ramesh Kumar", Phone: "9876543210", Address: "Near the old well, Anandpura"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		customer Customer
		field    string
	}{
		{"missing name", Customer{Phone: "9876543210", Address: "Near the old well"}, "name"},
		{"short phone", Customer{Name: "R", Phone: "98765", Address: "Near the old well"}, "phone"},
		{"non-numeric phone", Customer{Name: "R", Phone: "98765abcde", Address: "Near the old well"}, "phone"},
		{"short address", Customer{Name: "R", Phone: "9876543210", Address: "short"}, "address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRider_Validate(t *testing.T) {
	assert.NoError(t, Rider{Name: "Suresh Patel", Phone: "9876543211"}.Validate())
	assert.Error(t, Rider{Phone: "9876543211"}.Validate())
	assert.Error(t, Rider{Name: "Suresh Patel", Phone: "12345"}.Validate())
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())

	assert.True(t, OrderStatusConfirmed.Active())
	assert.True(t, OrderStatusOutForDelivery.Active())
	assert.False(t, OrderStatusPending.Active())
	assert.False(t, OrderStatusDelivered.Active())
}
