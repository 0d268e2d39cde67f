package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eatplus/pkg/orderevents"
)

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name    string
		event   orderevents.Event
		wantOK  bool
		wantMsg string
	}{
		{name: "placed", event: orderevents.Event{To: "placed", OrderFor: "pickup"}, wantOK: true, wantMsg: "Your order has been placed."},
		{name: "ready for pickup", event: orderevents.Event{From: "received", To: "ready", OrderFor: "pickup"}, wantOK: true, wantMsg: "Your order is ready for pickup."},
		{name: "ready for delivery", event: orderevents.Event{From: "received", To: "ready", OrderFor: "delivery"}, wantOK: true, wantMsg: "Your order is ready and waiting for a driver."},
		{name: "cancelled", event: orderevents.Event{From: "placed", To: "cancelled"}, wantOK: true, wantMsg: "Your order has been cancelled."},
		{name: "unknown status", event: orderevents.Event{To: "open"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.event.OrderID = 42
			n, ok := NotificationFor(testCase.event)
			assert.Equal(t, testCase.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, testCase.wantMsg, n.Message)
			assert.Equal(t, int64(42), n.OrderID)
			assert.Equal(t, "order."+testCase.event.To, n.RoutingKey())
		})
	}
}
