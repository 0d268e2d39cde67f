package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Status int

const (
	StatusOpen Status = iota + 1
	StatusPlaced
	StatusReceived
	StatusReady
	StatusOnTheWay
	StatusCompleted
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusOpen:      "open",
	StatusPlaced:    "placed",
	StatusReceived:  "received",
	StatusReady:     "ready",
	StatusOnTheWay:  "on_the_way",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Outstanding reports whether the order has been placed and is still being
// fulfilled.
func (s Status) Outstanding() bool {
	return s >= StatusPlaced && s <= StatusOnTheWay
}

// ParseStatus accepts a status name or its numeric code.
func ParseStatus(v string) (Status, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if n, err := strconv.Atoi(v); err == nil {
		s := Status(n)
		if !s.Valid() {
			return 0, NewValidationError("status", "unknown status %d", n)
		}
		return s, nil
	}
	for s, name := range statusNames {
		if name == v {
			return s, nil
		}
	}
	return 0, NewValidationError("status", "unknown status %q", v)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	parsed, err := ParseStatus(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type OrderFor int

const (
	Pickup   OrderFor = 1
	Delivery OrderFor = 2
)

func (f OrderFor) String() string {
	switch f {
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	}
	return "order_for(" + strconv.Itoa(int(f)) + ")"
}

func (f OrderFor) Valid() bool {
	return f == Pickup || f == Delivery
}

func ParseOrderFor(v string) (OrderFor, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pickup", "1":
		return Pickup, nil
	case "delivery", "2":
		return Delivery, nil
	}
	return 0, NewValidationError("order_for", "must be pickup or delivery")
}

func (f OrderFor) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *OrderFor) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOrderFor(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

type transition struct {
	from     Status
	orderFor OrderFor
}

// fulfillment is the one-step table staff advance orders along.
var fulfillment = map[transition]Status{
	{StatusPlaced, Pickup}:     StatusReceived,
	{StatusPlaced, Delivery}:   StatusReceived,
	{StatusReceived, Pickup}:   StatusReady,
	{StatusReceived, Delivery}: StatusReady,
	{StatusReady, Pickup}:      StatusCompleted,
	{StatusReady, Delivery}:    StatusOnTheWay,
	{StatusOnTheWay, Delivery}: StatusCompleted,
}

// NextStatus returns the single legal successor of current for the
// fulfillment type.
func NextStatus(current Status, orderFor OrderFor) (Status, error) {
	next, ok := fulfillment[transition{current, orderFor}]
	if !ok {
		return 0, NewValidationError("status", "%s %s order cannot be advanced", current, orderFor)
	}
	return next, nil
}

// ValidateTransition is the only gate for staff driven status changes.
// Cancellation is legal from any outstanding status; everything else must be
// exactly the next step in the fulfillment table.
func ValidateTransition(current, target Status, orderFor OrderFor) error {
	if !target.Valid() {
		return NewValidationError("status", "unknown status %d", int(target))
	}
	if target == StatusCancelled {
		if current.Outstanding() {
			return nil
		}
		return NewValidationError("status", "%s order cannot be cancelled", current)
	}
	next, err := NextStatus(current, orderFor)
	if err != nil {
		return err
	}
	if target != next {
		return NewValidationError("status", "cannot move %s order from %s to %s", orderFor, current, target)
	}
	return nil
}
