package ops

import (
	"context"
	"testing"

	"github.com/foodyatra/foodyatra/internal/cart"
	"github.com/foodyatra/foodyatra/internal/coupon"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/foodyatra/foodyatra/internal/order"
	"github.com/foodyatra/foodyatra/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOrderRepo struct {
	orders map[string]*models.Order
	seq    []string
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *memOrderRepo) Create(ctx context.Context, o *models.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	m.seq = append(m.seq, o.ID)
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) GetAll(ctx context.Context) ([]*models.Order, error) {
	var all []*models.Order
	for _, id := range m.seq {
		cp := *m.orders[id]
		all = append(all, &cp)
	}
	return all, nil
}

func (m *memOrderRepo) UpdateFulfillment(ctx context.Context, o *models.Order) error {
	stored, ok := m.orders[o.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Status = o.Status
	stored.RiderID = o.RiderID
	stored.IsPaid = o.IsPaid
	return nil
}

func (m *memOrderRepo) CountByCustomerPhone(ctx context.Context, phone string) (int, error) {
	count := 0
	for _, o := range m.orders {
		if o.CustomerPhone == phone {
			count++
		}
	}
	return count, nil
}

func (m *memOrderRepo) Count(ctx context.Context) (int, error) { return len(m.orders), nil }

func (m *memOrderRepo) DeleteAll(ctx context.Context) error {
	m.orders = make(map[string]*models.Order)
	m.seq = nil
	return nil
}

type memRiderRepo struct {
	riders map[string]*models.Rider
}

func newMemRiderRepo(riders ...*models.Rider) *memRiderRepo {
	m := &memRiderRepo{riders: make(map[string]*models.Rider)}
	for _, r := range riders {
		m.riders[r.ID] = r
	}
	return m
}

func (m *memRiderRepo) BulkCreate(ctx context.Context, riders []*models.Rider) error {
	for _, r := range riders {
		m.riders[r.ID] = r
	}
	return nil
}

func (m *memRiderRepo) Create(ctx context.Context, r *models.Rider) error {
	m.riders[r.ID] = r
	return nil
}

func (m *memRiderRepo) GetByID(ctx context.Context, id string) (*models.Rider, error) {
	r, ok := m.riders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRiderRepo) GetAll(ctx context.Context) ([]*models.Rider, error) {
	var all []*models.Rider
	for _, r := range m.riders {
		all = append(all, r)
	}
	return all, nil
}

func (m *memRiderRepo) SetActive(ctx context.Context, id string, active bool) error {
	r, ok := m.riders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.Active = active
	return nil
}

func (m *memRiderRepo) Count(ctx context.Context) (int, error) { return len(m.riders), nil }
func (m *memRiderRepo) DeleteAll(ctx context.Context) error    { return nil }

type memSequence struct{ n int64 }

func (m *memSequence) Next(ctx context.Context) (int64, error) {
	m.n++
	return m.n, nil
}

func newTestService(orders *memOrderRepo, riders *memRiderRepo) *Service {
	cfg := &models.Config{CityName: "Vadnagar"}
	return NewService(cfg, orders, riders, order.NewFactory(&memSequence{}), nil)
}

func checkoutInput() CheckoutInput {
	c := cart.New()
	dosa := models.Dish{ID: "d1", Name: "Masala Dosa", Price: models.FixedPrice(145)}
	c.Add(dosa)
	c.Add(dosa)
	return CheckoutInput{
		Cart:       c,
		Zone:       models.DeliveryZone{ID: "z1", Name: "Anandpura", DistanceKm: 9},
		Customer:   models.Customer{Name: "Ramesh Kumar", Phone: "9876543210", Address: "Near the old well, Anandpura"},
		Restaurant: models.Restaurant{ID: "r2", Name: "Food Paradise Restaurant"},
	}
}

func TestService_Checkout(t *testing.T) {
	orders := newMemOrderRepo()
	svc := newTestService(orders, newMemRiderRepo())

	o, err := svc.Checkout(context.Background(), checkoutInput())
	require.NoError(t, err)
	assert.Equal(t, 319, o.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, o.Status)

	stored, err := orders.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	in := checkoutInput()
	in.Cart = cart.New()
	_, err := svc.Checkout(context.Background(), in)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestService_Checkout_InvalidContact(t *testing.T) {
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	in := checkoutInput()
	in.Customer.Phone = "12345"
	_, err := svc.Checkout(context.Background(), in)
	assert.Error(t, err)
}

func TestService_Checkout_FirstOrderCoupon(t *testing.T) {
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	in := checkoutInput()
	in.CouponCode = "FIRSTFREE"
	o, err := svc.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 27, o.Discount)
	assert.Equal(t, 0, o.DeliveryFee)
	assert.Equal(t, 292, o.TotalAmount)
}

func TestService_Checkout_CouponRejectedOnRepeatOrder(t *testing.T) {
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	first, err := svc.Checkout(context.Background(), checkoutInput())
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	in := checkoutInput()
	in.CouponCode = "FIRSTFREE"
	_, err = svc.Checkout(context.Background(), in)
	assert.ErrorIs(t, err, coupon.ErrNotFirstOrder)
}

func TestService_FulfillmentFlow(t *testing.T) {
	ctx := context.Background()
	orders := newMemOrderRepo()
	rider := &models.Rider{ID: "rider_1", Name: "Ramesh Kumar", Phone: "9876543210", Active: true}
	svc := newTestService(orders, newMemRiderRepo(rider))

	o, err := svc.Checkout(ctx, checkoutInput())
	require.NoError(t, err)

	updated, err := svc.AssignRider(ctx, o.ID, "rider_1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, "rider_1", updated.RiderID)

	_, err = svc.Dispatch(ctx, o.ID)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	_, err = svc.StartCooking(ctx, o.ID)
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, o.ID)
	require.NoError(t, err)
	updated, err = svc.MarkDelivered(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	updated, err = svc.MarkPaid(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)

	stats, err := svc.RiderStats(ctx, "rider_1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 27, stats.Earnings)
}

func TestService_AssignRider_UnknownRider(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	o, err := svc.Checkout(ctx, checkoutInput())
	require.NoError(t, err)

	_, err = svc.AssignRider(ctx, o.ID, "rider_9")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestService_Transition_UnknownOrder(t *testing.T) {
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())
	_, err := svc.Confirm(context.Background(), "FY-0101-99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemOrderRepo(), newMemRiderRepo())

	o, err := svc.Checkout(ctx, checkoutInput())
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, o.ID)
	require.NoError(t, err)

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 319, summary.TotalRevenue)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 0, summary.ActiveCount)
}

func TestService_AddRider(t *testing.T) {
	ctx := context.Background()
	riders := newMemRiderRepo()
	svc := newTestService(newMemOrderRepo(), riders)

	require.NoError(t, svc.AddRider(ctx, models.Rider{ID: "rider_5", Name: "Vikram Rabari", Phone: "9876543213", Active: true}))
	assert.Error(t, svc.AddRider(ctx, models.Rider{ID: "rider_6", Phone: "123"}))

	require.NoError(t, svc.SetRiderActive(ctx, "rider_5", false))
	r, err := riders.GetByID(ctx, "rider_5")
	require.NoError(t, err)
	assert.False(t, r.Active)
}
