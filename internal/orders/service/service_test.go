package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanchonete-pedidos/internal/orders/core"
	"lanchonete-pedidos/pkg/logger"
	"lanchonete-pedidos/pkg/models"
)

// memRepo is an in-memory stand-in for the Postgres repository. It mirrors
// the store's id assignment: generated, starting at 100000, never reused.
type memRepo struct {
	nextID int64
	orders map[int64]models.Order
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextID: 100000,
		orders: make(map[int64]models.Order),
	}
}

func (r *memRepo) Create(_ context.Context, order *models.Order) (int64, error) {
	id := r.nextID
	r.nextID++

	stored := *order
	stored.ID = id
	r.orders[id] = stored
	return id, nil
}

func (r *memRepo) List(_ context.Context) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return models.Order{}, core.ErrOrderNotFound
	}
	return order, nil
}

func (r *memRepo) Update(_ context.Context, id int64, order *models.Order) error {
	if _, ok := r.orders[id]; !ok {
		return core.ErrOrderNotFound
	}

	stored := *order
	stored.ID = id
	r.orders[id] = stored
	return nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return core.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func newTestService() *OrderService {
	log := logger.NewLoggerTo("order-service-test", io.Discard)
	return NewOrderService(newMemRepo(), log)
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

func burgerRequest() *models.OrderRequest {
	return &models.OrderRequest{
		Name:     strPtr("Maria"),
		Items:    []string{"burger", "fries"},
		Quantity: intPtr(2),
		Price:    floatPtr(19.90),
	}
}

func TestCreateAssignsGeneratedID(t *testing.T) {
	svc := newTestService()

	order, err := svc.Create(context.Background(), burgerRequest(), "req-1")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, order.ID, int64(100000))
	assert.Equal(t, "Maria", order.Name)
	assert.Equal(t, models.DefaultStatus, order.Status)
	assert.NotNil(t, order.Extras)
	assert.Empty(t, order.Extras)
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), burgerRequest(), "req-1")
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID, "req-2")
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestListEmptyStoreReturnsEmptySlice(t *testing.T) {
	svc := newTestService()

	orders, err := svc.List(context.Background(), "req-1")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGetMissingOrderReturnsNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), 1, "req-1")
	assert.ErrorIs(t, err, core.ErrOrderNotFound)
}

func TestUpdateReplacesAllFieldsAndForcesID(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), burgerRequest(), "req-1")
	require.NoError(t, err)

	replacement := &models.OrderRequest{
		ID:       int64Ptr(999999),
		Name:     strPtr("João"),
		Items:    []string{"pizza"},
		Quantity: intPtr(1),
		Price:    floatPtr(35.50),
		Extras:   []string{"extra cheese"},
		Status:   strPtr("Preparing"),
	}

	updated, err := svc.Update(context.Background(), created.ID, replacement, "req-2")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "João", updated.Name)
	assert.Equal(t, []string{"pizza"}, updated.Items)
	assert.Equal(t, 1, updated.Quantity)
	assert.Equal(t, 35.50, updated.Price)
	assert.Equal(t, []string{"extra cheese"}, updated.Extras)
	assert.Equal(t, "Preparing", updated.Status)

	fetched, err := svc.Get(context.Background(), created.ID, "req-3")
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestUpdateMissingOrderReturnsNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), 1, burgerRequest(), "req-1")
	assert.ErrorIs(t, err, core.ErrOrderNotFound)
}

func TestDeleteIsPermanent(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), burgerRequest(), "req-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "req-2"))

	_, err = svc.Get(context.Background(), created.ID, "req-3")
	assert.ErrorIs(t, err, core.ErrOrderNotFound)

	err = svc.Delete(context.Background(), created.ID, "req-4")
	assert.ErrorIs(t, err, core.ErrOrderNotFound)
}

func TestIDsAreNotReused(t *testing.T) {
	svc := newTestService()

	first, err := svc.Create(context.Background(), burgerRequest(), "req-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), first.ID, "req-2"))

	second, err := svc.Create(context.Background(), burgerRequest(), "req-3")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
