package coupon

import (
	"errors"
	"strings"
)

// FirstOrderCode is the only promotional code currently supported: it
// waives the delivery fee on a customer's first order ever.
const FirstOrderCode = "FIRSTFREE"

var (
	ErrNotFirstOrder = errors.New("coupon valid only for your first order")
	ErrUnknownCode   = errors.New("invalid coupon code")
)

// Effect describes what a successfully validated coupon does to the
// order's pricing.
type Effect struct {
	Code             string
	WaiveDeliveryFee bool
}

// Discount resolves the effect against a zone's delivery fee.
func (e Effect) Discount(deliveryFee int) int {
	if e.WaiveDeliveryFee {
		return deliveryFee
	}
	return 0
}

// Validate checks a code against the customer's order history. The
// first-order rule is applied before code lookup, so a correct code on
// a repeat customer still fails with ErrNotFirstOrder. The validator is
// stateless; history is supplied by the caller.
func Validate(code string, priorOrders int) (Effect, error) {
	if priorOrders > 0 {
		return Effect{}, ErrNotFirstOrder
	}
	if !strings.EqualFold(code, FirstOrderCode) {
		return Effect{}, ErrUnknownCode
	}
	return Effect{Code: FirstOrderCode, WaiveDeliveryFee: true}, nil
}
