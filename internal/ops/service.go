package ops

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/foodyatra/foodyatra/internal/analytics"
	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/coupon"
	"github.com/foodyatra/foodyatra/internal/handoff"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/order"
	"github.com/foodyatra/foodyatra/internal/pricing"
	"github.com/foodyatra/foodyatra/internal/repositories"
)

// Service is the surface the storefront and the operations dashboard
// call into. It assumes a single operator session; concurrent mutation
// of the same order from two actors is not guarded.
type Service struct {
	config  *models.Config
	orders  repositories.OrderRepository
	riders  repositories.RiderRepository
	factory *order.Factory
	sender  *handoff.Sender
}

func NewService(config *models.Config, orders repositories.OrderRepository, riders repositories.RiderRepository, factory *order.Factory, sender *handoff.Sender) *Service {
	return &Service{
		config:  config,
		orders:  orders,
		riders:  riders,
		factory: factory,
		sender:  sender,
	}
}

type CheckoutInput struct {
	Cart       *cart.Store
	Zone       models.DeliveryZone
	Customer   models.Customer
	Restaurant models.Restaurant
	CouponCode string
}

// ApplyCoupon resolves a code into a discount for the given zone,
// using the customer's order count as the first-order history.
func (s *Service) ApplyCoupon(ctx context.Context, code string, customer models.Customer, zone models.DeliveryZone) (int, error) {
	prior, err := s.orders.CountByCustomerPhone(ctx, customer.Phone)
	if err != nil {
		return 0, fmt.Errorf("failed to load order history: %w", err)
	}
	effect, err := coupon.Validate(code, prior)
	if err != nil {
		return 0, err
	}
	return effect.Discount(pricing.DeliveryFee(zone)), nil
}

// Checkout validates the input, prices the cart, creates the order,
// persists it and hands the confirmation message to the outbound
// channel. A handoff failure does not lose the order; it is logged and
// the order is returned.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (models.Order, error) {
	if in.Cart == nil || in.Cart.Empty() {
		return models.Order{}, &models.ValidationError{Field: "cart", Message: "cart is empty"}
	}
	if err := in.Customer.Validate(); err != nil {
		return models.Order{}, err
	}

	discount := 0
	if in.CouponCode != "" {
		d, err := s.ApplyCoupon(ctx, in.CouponCode, in.Customer, in.Zone)
		if err != nil {
			return models.Order{}, err
		}
		discount = d
	}

	o, err := s.factory.Create(ctx, in.Cart, in.Zone, in.Customer, in.Restaurant, discount)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return models.Order{}, fmt.Errorf("failed to save order %s: %w", o.ID, err)
	}

	if s.sender != nil {
		if err := s.sender.Send(o); err != nil {
			log.Printf("handoff for order %s failed: %v", o.ID, err)
		}
	}
	return o, nil
}

func (s *Service) transition(ctx context.Context, orderID string, apply func(*models.Order) error) (*models.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := apply(o); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateFulfillment(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Confirm(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, order.Confirm)
}

func (s *Service) StartCooking(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, order.StartCooking)
}

func (s *Service) Dispatch(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, order.Dispatch)
}

func (s *Service) MarkDelivered(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, order.MarkDelivered)
}

func (s *Service) Cancel(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, order.Cancel)
}

func (s *Service) AssignRider(ctx context.Context, orderID, riderID string) (*models.Order, error) {
	rider, err := s.riders.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, func(o *models.Order) error {
		return order.AssignRider(o, *rider)
	})
}

func (s *Service) MarkPaid(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, func(o *models.Order) error {
		order.MarkPaid(o)
		return nil
	})
}

// Dashboard recomputes the operations headline figures on demand.
func (s *Service) Dashboard(ctx context.Context) (analytics.Summary, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(orders), nil
}

// RiderStats reports the rider's delivered count and commission for the
// current calendar month.
func (s *Service) RiderStats(ctx context.Context, riderID string) (analytics.RiderStats, error) {
	if _, err := s.riders.GetByID(ctx, riderID); err != nil {
		return analytics.RiderStats{}, err
	}
	orders, err := s.allOrders(ctx)
	if err != nil {
		return analytics.RiderStats{}, err
	}
	return analytics.MonthlyRiderStats(orders, riderID, time.Now()), nil
}

func (s *Service) AddRider(ctx context.Context, rider models.Rider) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	return s.riders.Create(ctx, &rider)
}

func (s *Service) SetRiderActive(ctx context.Context, riderID string, active bool) error {
	return s.riders.SetActive(ctx, riderID, active)
}

func (s *Service) allOrders(ctx context.Context) ([]models.Order, error) {
	stored, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders := make([]models.Order, 0, len(stored))
	for _, o := range stored {
		orders = append(orders, *o)
	}
	return orders, nil
}
