package cart

import (
	"github.com/foodyatra/foodyatra/internal/models"
)

// Store aggregates line items for a single checkout session. It is not
// safe for concurrent use; each customer session owns its own Store.
type Store struct {
	lines map[string]*models.CartLine
	order []string // dish IDs in first-added order
}

// AddResult carries the aggregates the caller needs after an Add,
// primarily to render the transient "item added" notification.
type AddResult struct {
	Item  string
	Total int
	Count int
}

// Notification is the payload for the auto-dismissing banner shown
// after every cart mutation.
type Notification struct {
	Item            string
	Total           int
	Count           int
	TransitEstimate string
}

func New() *Store {
	return &Store{lines: make(map[string]*models.CartLine)}
}

// Add increments the quantity for the dish by 1, inserting a line at
// quantity 1 if absent. Adding is always valid.
func (s *Store) Add(dish models.Dish) AddResult {
	line, ok := s.lines[dish.ID]
	if ok {
		line.Quantity++
	} else {
		s.lines[dish.ID] = &models.CartLine{Dish: dish, Quantity: 1}
		s.order = append(s.order, dish.ID)
	}
	return AddResult{Item: dish.Name, Total: s.Total(), Count: s.Count()}
}

// Remove decrements the quantity for the dish by 1, deleting the line
// when it reaches 0. Removing an absent dish is a no-op.
func (s *Store) Remove(dishID string) {
	line, ok := s.lines[dishID]
	if !ok {
		return
	}
	if line.Quantity > 1 {
		line.Quantity--
		return
	}
	delete(s.lines, dishID)
	for i, id := range s.order {
		if id == dishID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Total sums price × quantity over all lines. On-request dishes count
// as zero until their price is confirmed.
func (s *Store) Total() int {
	total := 0
	for _, line := range s.lines {
		if line.Dish.Price.OnRequest {
			continue
		}
		total += line.Dish.Price.Amount * line.Quantity
	}
	return total
}

// Count sums quantities over all lines.
func (s *Store) Count() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) Empty() bool {
	return len(s.lines) == 0
}

// HasPendingPriceItems reports whether any line's price is still to be
// confirmed with the restaurant, making the cart total provisional.
func (s *Store) HasPendingPriceItems() bool {
	for _, line := range s.lines {
		if line.Dish.Price.OnRequest {
			return true
		}
	}
	return false
}

// Lines returns a snapshot of the cart in first-added order.
func (s *Store) Lines() []models.CartLine {
	lines := make([]models.CartLine, 0, len(s.lines))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

// Notification builds the banner payload for the destination the
// customer is ordering to.
func (r AddResult) Notification(zone models.DeliveryZone) Notification {
	return Notification{
		Item:            r.Item,
		Total:           r.Total,
		Count:           r.Count,
		TransitEstimate: zone.TransitEstimate(),
	}
}
