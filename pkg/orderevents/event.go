package orderevents

import (
	"fmt"
	"strconv"
	"time"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderStatusChanged = "order.status_changed"

	AggregateOrder = "order"
)

// Event is the JSON payload carried on the order events topic. Statuses and
// fulfillment types travel as their lowercase names.
type Event struct {
	Type         string     `json:"type"`
	OrderID      int64      `json:"order_id"`
	RestaurantID int64      `json:"restaurant_id"`
	CustomerID   int64      `json:"customer_id"`
	OrderFor     string     `json:"order_for"`
	From         string     `json:"from,omitempty"`
	To           string     `json:"to"`
	Total        int64      `json:"total"`
	PlacedAt     *time.Time `json:"placed_at,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
}

func (e Event) AggregateID() string {
	return strconv.FormatInt(e.OrderID, 10)
}

// StatsKey names the Redis hash holding one restaurant's per-status order
// counters for a UTC day.
func StatsKey(day time.Time, restaurantID int64) string {
	return fmt.Sprintf("stats:orders:%s:%d", day.UTC().Format("2006-01-02"), restaurantID)
}
