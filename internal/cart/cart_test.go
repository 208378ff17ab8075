package cart

import (
	"testing"

	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/stretchr/testify/assert"
)

func testDish(id, name string, price int) models.Dish {
	return models.Dish{ID: id, Name: name, Price: models.FixedPrice(price)}
}

func TestStore_AddAndRemove(t *testing.T) {
	s := New()
	dosa := testDish("d1", "Masala Dosa", 145)

	result := s.Add(dosa)
	assert.Equal(t, "Masala Dosa", result.Item)
	assert.Equal(t, 145, result.Total)
	assert.Equal(t, 1, result.Count)

	result = s.Add(dosa)
	assert.Equal(t, 290, result.Total)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, s.Lines(), 1)

	s.Remove("d1")
	assert.Equal(t, 145, s.Total())
	s.Remove("d1")
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, s.Count())
}

func TestStore_AddRemoveInverse(t *testing.T) {
	// Adding q times then removing q times restores the prior state.
	for q := 0; q < 5; q++ {
		s := New()
		s.Add(testDish("a", "Vada Pav", 35))
		before := s.Lines()

		burger := testDish("b", "Veg Cheese Burger", 90)
		for i := 0; i < q; i++ {
			s.Add(burger)
		}
		for i := 0; i < q; i++ {
			s.Remove("b")
		}
		assert.Equal(t, before, s.Lines(), "q=%d", q)
	}
}

func TestStore_RemoveAbsentIsNoop(t *testing.T) {
	s := New()
	s.Add(testDish("d1", "Masala Dosa", 145))
	s.Remove("nope")
	assert.Equal(t, 145, s.Total())
	assert.Equal(t, 1, s.Count())
}

func TestStore_MultipleLines(t *testing.T) {
	s := New()
	s.Add(testDish("d1", "Masala Dosa", 145))
	s.Add(testDish("d2", "Veg Uttapam", 130))
	s.Add(testDish("d1", "Masala Dosa", 145))

	assert.Equal(t, 420, s.Total())
	assert.Equal(t, 3, s.Count())

	lines := s.Lines()
	assert.Len(t, lines, 2)
	// first-added order is preserved
	assert.Equal(t, "d1", lines[0].Dish.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "d2", lines[1].Dish.ID)
}

func TestStore_PendingPriceItems(t *testing.T) {
	s := New()
	s.Add(testDish("d1", "Masala Dosa", 145))
	assert.False(t, s.HasPendingPriceItems())

	paneer := models.Dish{ID: "d2", Name: "Paneer Makhani", Price: models.PriceOnRequest()}
	s.Add(paneer)
	assert.True(t, s.HasPendingPriceItems())
	// on-request dishes contribute nothing to the provisional total
	assert.Equal(t, 145, s.Total())
	assert.Equal(t, 2, s.Count())

	s.Remove("d2")
	assert.False(t, s.HasPendingPriceItems())
}

func TestAddResult_Notification(t *testing.T) {
	s := New()
	result := s.Add(testDish("d1", "Masala Dosa", 145))

	zone := models.DeliveryZone{Name: "Anandpura", DistanceKm: 9}
	n := result.Notification(zone)
	assert.Equal(t, "Masala Dosa", n.Item)
	assert.Equal(t, 145, n.Total)
	assert.Equal(t, 1, n.Count)
	assert.Equal(t, "38-48 min", n.TransitEstimate)
}
