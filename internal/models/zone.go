package models

import (
	"fmt"
	"math"
)

// DeliveryZone is a destination village or town served from the city
// center, with its road distance in kilometers. Zones are read-only
// reference data.
type DeliveryZone struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

// TransitEstimate returns the customer-facing delivery time label,
// roughly 2.5 minutes per kilometer plus preparation buffer.
func (z DeliveryZone) TransitEstimate() string {
	if z.DistanceKm == 0 {
		return "15-20 min"
	}
	mins := int(math.Ceil(z.DistanceKm*2.5 + 15))
	return fmt.Sprintf("%d-%d min", mins, mins+10)
}
