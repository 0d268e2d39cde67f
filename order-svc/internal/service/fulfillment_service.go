package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eatplus/order-svc/internal/domain"
	"eatplus/pkg/auth"
)

// FulfillmentService is the restaurant side of the order lifecycle.
type FulfillmentService struct {
	orders OrderRepository
	stats  StatsReader
	log    *slog.Logger
	now    func() time.Time
}

func NewFulfillmentService(orders OrderRepository, stats StatsReader, log *slog.Logger) *FulfillmentService {
	return &FulfillmentService{
		orders: orders,
		stats:  stats,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func requireStaff(p auth.Principal) error {
	if p.Role != auth.RoleStaff || p.RestaurantID == 0 {
		return domain.ErrForbidden
	}
	return nil
}

// ListOrders returns the staff member's restaurant orders, newest first.
// Carts still being built are never listed. A zero status lists all.
func (s *FulfillmentService) ListOrders(ctx context.Context, p auth.Principal, status domain.Status) ([]domain.Order, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	if status == domain.StatusOpen {
		return []domain.Order{}, nil
	}
	orders, err := s.orders.ListRestaurantOrders(ctx, p.RestaurantID, status)
	if err != nil {
		return nil, fmt.Errorf("list restaurant orders: %w", err)
	}
	return orders, nil
}

func (s *FulfillmentService) Advance(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error) {
	return s.transition(ctx, p, orderID, func(o *domain.Order) error {
		return o.Advance(s.now())
	})
}

// UpdateStatus applies a requested target status after re-validating it
// against the transition table.
func (s *FulfillmentService) UpdateStatus(ctx context.Context, p auth.Principal, orderID int64, target domain.Status) (*domain.Order, error) {
	return s.transition(ctx, p, orderID, func(o *domain.Order) error {
		return o.Transition(target, s.now())
	})
}

func (s *FulfillmentService) transition(ctx context.Context, p auth.Principal, orderID int64, apply func(*domain.Order) error) (*domain.Order, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}

	var from domain.Status
	order, err := s.orders.UpdateOrder(ctx, orderID, func(ctx context.Context, _ OrderTx, o *domain.Order) error {
		if !p.IsStaffOf(o.RestaurantID) {
			return domain.ErrForbidden
		}
		from = o.Status
		return apply(o)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order status changed",
		"order_id", order.ID,
		"restaurant_id", order.RestaurantID,
		"staff_id", p.UserID,
		"from", from.String(),
		"to", order.Status.String(),
	)
	return order, nil
}

// NotificationCount is the number of orders placed at the staff member's
// restaurant since the given instant.
func (s *FulfillmentService) NotificationCount(ctx context.Context, p auth.Principal, since time.Time) (int, error) {
	if err := requireStaff(p); err != nil {
		return 0, err
	}
	n, err := s.orders.CountPlacedSince(ctx, p.RestaurantID, since)
	if err != nil {
		return 0, fmt.Errorf("count placed orders: %w", err)
	}
	return n, nil
}

// TodayStats counts today's placed orders by current status. Counters kept
// in Redis by the notification service are preferred; the database is the
// fallback.
func (s *FulfillmentService) TodayStats(ctx context.Context, p auth.Principal) (map[string]int64, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	now := s.now()
	if s.stats != nil {
		counts, ok, err := s.stats.DailyStatusCounts(ctx, p.RestaurantID, now)
		if err != nil {
			s.log.Warn("stats cache read failed", "restaurant_id", p.RestaurantID, "err", err)
		}
		if ok {
			return positiveCounts(counts), nil
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	counts, err := s.orders.CountByStatusSince(ctx, p.RestaurantID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return positiveCounts(counts), nil
}

// positiveCounts keeps statuses with at least one order so both sources
// answer with the same shape. Counters drop to zero or below when a
// transition is seen for an order placed before notify-svc was consuming.
func positiveCounts(counts map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		if n > 0 {
			out[status] = n
		}
	}
	return out
}
