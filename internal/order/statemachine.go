package order

import (
	"errors"
	"fmt"

	"github.com/foodyatra/foodyatra/internal/models"
)

// The order lifecycle moves one direction:
//
//	Pending → Confirmed → Cooking → Out for Delivery → Delivered
//
// with Cancelled reachable from any non-terminal state. Delivered and
// Cancelled are terminal. Every operation rejects a call it cannot
// honor rather than silently correcting state, so the operations UI can
// simply disable actions whose preconditions no longer hold.
var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrRiderInactive        = errors.New("rider is not active")
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")
)

func transitionErr(op string, s models.OrderStatus) error {
	return fmt.Errorf("%w: cannot %s order in status %q", ErrInvalidTransition, op, s)
}

// Confirm moves a Pending order to Confirmed.
func Confirm(o *models.Order) error {
	if o.Status != models.OrderStatusPending {
		return transitionErr("confirm", o.Status)
	}
	o.Status = models.OrderStatusConfirmed
	return nil
}

// StartCooking moves a Confirmed order to Cooking.
func StartCooking(o *models.Order) error {
	if o.Status != models.OrderStatusConfirmed {
		return transitionErr("start cooking", o.Status)
	}
	o.Status = models.OrderStatusCooking
	return nil
}

// Dispatch moves a Cooking order to Out for Delivery.
func Dispatch(o *models.Order) error {
	if o.Status != models.OrderStatusCooking {
		return transitionErr("dispatch", o.Status)
	}
	o.Status = models.OrderStatusOutForDelivery
	return nil
}

// MarkDelivered moves an Out for Delivery order to its Delivered
// terminal state.
func MarkDelivered(o *models.Order) error {
	if o.Status != models.OrderStatusOutForDelivery {
		return transitionErr("mark delivered", o.Status)
	}
	o.Status = models.OrderStatusDelivered
	return nil
}

// Cancel is the escape hatch from any non-terminal state.
func Cancel(o *models.Order) error {
	if o.Status.Terminal() {
		return transitionErr("cancel", o.Status)
	}
	o.Status = models.OrderStatusCancelled
	return nil
}

// AssignRider books an active rider onto the order and sets the status
// to Confirmed as a side effect, even when assignment happens mid-
// Cooking. An order holds at most one rider for its whole lifetime.
func AssignRider(o *models.Order, rider models.Rider) error {
	if o.Status.Terminal() {
		return transitionErr("assign rider to", o.Status)
	}
	if !rider.Active {
		return fmt.Errorf("%w: %s", ErrRiderInactive, rider.Name)
	}
	if o.RiderID != "" {
		return fmt.Errorf("%w: rider %s", ErrRiderAlreadyAssigned, o.RiderID)
	}
	o.RiderID = rider.ID
	o.Status = models.OrderStatusConfirmed
	return nil
}

// MarkPaid settles the order. Settlement is idempotent and independent
// of fulfillment status.
func MarkPaid(o *models.Order) {
	o.IsPaid = true
}
