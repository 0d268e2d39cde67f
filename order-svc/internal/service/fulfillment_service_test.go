package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eatplus/order-svc/internal/domain"
	"eatplus/order-svc/internal/mocks"
	"eatplus/order-svc/internal/service"
	"eatplus/pkg/auth"
)

func placedOrder(orderFor domain.OrderFor, status domain.Status) *domain.Order {
	o := cart(orderFor, domain.OrderItem{ID: 3, ItemID: 1, UnitPrice: 1000, Quantity: 1})
	o.Status = status
	return o
}

func TestFulfillmentService_Advance(t *testing.T) {
	tests := []struct {
		name        string
		principal   auth.Principal
		order       *domain.Order
		want        domain.Status
		wantErr     error
		wantInvalid bool
		noRepo      bool
	}{
		{name: "placed to received", principal: staff, order: placedOrder(domain.Pickup, domain.StatusPlaced), want: domain.StatusReceived},
		{name: "ready pickup completes", principal: staff, order: placedOrder(domain.Pickup, domain.StatusReady), want: domain.StatusCompleted},
		{name: "ready delivery goes on the way", principal: staff, order: placedOrder(domain.Delivery, domain.StatusReady), want: domain.StatusOnTheWay},
		{name: "completed is terminal", principal: staff, order: placedOrder(domain.Pickup, domain.StatusCompleted), wantInvalid: true},
		{name: "cart cannot advance", principal: staff, order: placedOrder(domain.Pickup, domain.StatusOpen), wantInvalid: true},
		{name: "other restaurant", principal: otherStaff, order: placedOrder(domain.Pickup, domain.StatusPlaced), wantErr: domain.ErrForbidden},
		{name: "customer", principal: customer, noRepo: true, wantErr: domain.ErrForbidden},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			svc := service.NewFulfillmentService(orders, nil, discardLogger())
			if !testCase.noRepo {
				orders.On("UpdateOrder", mock.Anything, int64(42), mock.Anything).
					Return(applyTo(mocks.NewOrderTx(t), testCase.order), nil).Once()
			}

			got, err := svc.Advance(context.Background(), testCase.principal, 42)
			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.wantInvalid:
				assert.True(t, domain.IsValidation(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, testCase.want, got.Status)
				require.Len(t, got.PendingEvents(), 1)
				assert.Equal(t, "order.status_changed", got.PendingEvents()[0].Type)
				assert.Equal(t, testCase.want.String(), got.PendingEvents()[0].To)
			}
		})
	}
}

func TestFulfillmentService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name   string
		order  *domain.Order
		target domain.Status
		ok     bool
	}{
		{name: "delivery ready to on the way", order: placedOrder(domain.Delivery, domain.StatusReady), target: domain.StatusOnTheWay, ok: true},
		{name: "delivery cannot skip on the way", order: placedOrder(domain.Delivery, domain.StatusReady), target: domain.StatusCompleted},
		{name: "pickup never goes on the way", order: placedOrder(domain.Pickup, domain.StatusReady), target: domain.StatusOnTheWay},
		{name: "staff cancels received order", order: placedOrder(domain.Pickup, domain.StatusReceived), target: domain.StatusCancelled, ok: true},
		{name: "cancelled stays cancelled", order: placedOrder(domain.Pickup, domain.StatusCancelled), target: domain.StatusPlaced},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			svc := service.NewFulfillmentService(orders, nil, discardLogger())
			orders.On("UpdateOrder", mock.Anything, int64(42), mock.Anything).
				Return(applyTo(mocks.NewOrderTx(t), testCase.order), nil).Once()

			got, err := svc.UpdateStatus(context.Background(), staff, 42, testCase.target)
			if !testCase.ok {
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.target, got.Status)
		})
	}
}

func TestFulfillmentService_ListOrders(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewFulfillmentService(orders, nil, discardLogger())

	want := []domain.Order{*placedOrder(domain.Pickup, domain.StatusPlaced)}
	orders.On("ListRestaurantOrders", mock.Anything, int64(7), domain.StatusPlaced).Return(want, nil).Once()

	got, err := svc.ListOrders(context.Background(), staff, domain.StatusPlaced)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.ListOrders(context.Background(), staff, domain.StatusOpen)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ListOrders(context.Background(), customer, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFulfillmentService_NotificationCount(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewFulfillmentService(orders, nil, discardLogger())
	since := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	orders.On("CountPlacedSince", mock.Anything, int64(7), since).Return(3, nil).Once()

	n, err := svc.NotificationCount(context.Background(), staff, since)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFulfillmentService_TodayStats(t *testing.T) {
	cached := map[string]int64{"placed": 4, "completed": 2}
	fromDB := map[string]int64{"placed": 1}

	tests := []struct {
		name  string
		setup func(*mocks.OrderRepository, *mocks.StatsReader)
		want  map[string]int64
	}{
		{
			name: "redis counters",
			setup: func(_ *mocks.OrderRepository, stats *mocks.StatsReader) {
				stats.On("DailyStatusCounts", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(cached, true, nil).Once()
			},
			want: cached,
		},
		{
			name: "no counters yet",
			setup: func(orders *mocks.OrderRepository, stats *mocks.StatsReader) {
				stats.On("DailyStatusCounts", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil, false, nil).Once()
				orders.On("CountByStatusSince", mock.Anything, int64(7), mock.MatchedBy(func(t time.Time) bool {
					return t.Hour() == 0 && t.Minute() == 0 && t.Location() == time.UTC
				})).Return(fromDB, nil).Once()
			},
			want: fromDB,
		},
		{
			name: "redis down",
			setup: func(orders *mocks.OrderRepository, stats *mocks.StatsReader) {
				stats.On("DailyStatusCounts", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil, false, errors.New("dial tcp: refused")).Once()
				orders.On("CountByStatusSince", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(fromDB, nil).Once()
			},
			want: fromDB,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			stats := mocks.NewStatsReader(t)
			testCase.setup(orders, stats)
			svc := service.NewFulfillmentService(orders, stats, discardLogger())

			got, err := svc.TodayStats(context.Background(), staff)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFulfillmentService_TodayStats_SameShapeFromEitherSource(t *testing.T) {
	want := map[string]int64{"placed": 2, "ready": 1}

	// Counters for an order placed before the consumer started can go
	// negative once its transitions arrive.
	fromRedis := map[string]int64{"placed": 2, "ready": 1, "received": 0, "completed": -1}
	cachedOrders := mocks.NewOrderRepository(t)
	cachedStats := mocks.NewStatsReader(t)
	cachedStats.On("DailyStatusCounts", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(fromRedis, true, nil).Once()

	gotCached, err := service.NewFulfillmentService(cachedOrders, cachedStats, discardLogger()).TodayStats(context.Background(), staff)
	require.NoError(t, err)

	fromDB := map[string]int64{"placed": 2, "ready": 1, "cancelled": 0}
	dbOrders := mocks.NewOrderRepository(t)
	dbStats := mocks.NewStatsReader(t)
	dbStats.On("DailyStatusCounts", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil, false, nil).Once()
	dbOrders.On("CountByStatusSince", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(fromDB, nil).Once()

	gotDB, err := service.NewFulfillmentService(dbOrders, dbStats, discardLogger()).TodayStats(context.Background(), staff)
	require.NoError(t, err)

	assert.Equal(t, want, gotCached)
	assert.Equal(t, want, gotDB)
}
