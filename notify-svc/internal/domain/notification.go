package domain

import (
	"time"

	"eatplus/pkg/orderevents"
)

// Notification is what a customer is told about their order. It is published
// to RabbitMQ under RoutingKey.
type Notification struct {
	OrderID      int64     `json:"order_id"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (n Notification) RoutingKey() string {
	return "order." + n.Status
}

var messages = map[string]string{
	"placed":     "Your order has been placed.",
	"received":   "The restaurant has received your order.",
	"on_the_way": "Your order is on the way.",
	"completed":  "Your order is complete. Enjoy your meal!",
	"cancelled":  "Your order has been cancelled.",
}

// NotificationFor builds the customer notification for an order event.
// Events that customers are not told about return false.
func NotificationFor(ev orderevents.Event) (Notification, bool) {
	var msg string
	switch {
	case ev.To == "ready" && ev.OrderFor == "delivery":
		msg = "Your order is ready and waiting for a driver."
	case ev.To == "ready":
		msg = "Your order is ready for pickup."
	default:
		var ok bool
		if msg, ok = messages[ev.To]; !ok {
			return Notification{}, false
		}
	}
	return Notification{
		OrderID:      ev.OrderID,
		CustomerID:   ev.CustomerID,
		RestaurantID: ev.RestaurantID,
		Status:       ev.To,
		Message:      msg,
		OccurredAt:   ev.OccurredAt,
	}, true
}
