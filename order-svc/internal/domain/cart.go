package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"eatplus/pkg/orderevents"
)

type Event = orderevents.Event

// CheckoutDetails is the snapshot taken from the customer when a cart is
// placed.
type CheckoutDetails struct {
	Address         string
	PaymentMethodID *int64
	Note            string
}

func (o *Order) OwnedBy(customerID int64) bool {
	return o.CustomerID == customerID
}

func (o *Order) ensureOpen() error {
	if o.Status != StatusOpen {
		return ErrOrderLocked
	}
	return nil
}

// ChoiceKey is the canonical form of a choice set: sorted ids joined by commas.
func ChoiceKey(choices []SelectedChoice) string {
	ids := make([]int64, 0, len(choices))
	for _, c := range choices {
		ids = append(ids, c.ChoiceID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// SelectChoices resolves the requested choice ids against an item's options.
// Duplicate ids collapse; an id outside the item's options is ErrNotFound and
// two choices within one radio option is a validation error.
func SelectChoices(options []Option, choiceIDs []int64) ([]SelectedChoice, error) {
	type entry struct {
		choice Choice
		option Option
	}
	byID := make(map[int64]entry)
	for _, opt := range options {
		for _, c := range opt.Choices {
			byID[c.ID] = entry{choice: c, option: opt}
		}
	}

	seen := make(map[int64]bool, len(choiceIDs))
	perOption := make(map[int64]int)
	selected := make([]SelectedChoice, 0, len(choiceIDs))
	for _, id := range choiceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("choice %d: %w", id, ErrNotFound)
		}
		if e.option.Type == OptionRadio {
			perOption[e.option.ID]++
			if perOption[e.option.ID] > 1 {
				return nil, NewValidationError("choice_ids", "option %q allows a single choice", e.option.Name)
			}
		}
		selected = append(selected, SelectedChoice{
			ChoiceID:    e.choice.ID,
			Name:        e.choice.Name,
			ExtraCharge: e.choice.ExtraCharge,
		})
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].ChoiceID < selected[j].ChoiceID })
	return selected, nil
}

// CheckItem verifies the item is sold by the order's restaurant for its
// fulfillment type.
func (o *Order) CheckItem(item Item) error {
	if item.RestaurantID != o.RestaurantID {
		return NewValidationError("item_id", "item %d is not on this restaurant's menu", item.ID)
	}
	if !item.OfferedFor(o.OrderFor) {
		return NewValidationError("item_id", "%s is not available for %s", item.Name, o.OrderFor)
	}
	return nil
}

func (o *Order) lineIndex(itemID int64, key string) int {
	for i, li := range o.Items {
		if li.ItemID == itemID && ChoiceKey(li.Choices) == key {
			return i
		}
	}
	return -1
}

func (o *Order) lineIndexByID(id int64) int {
	for i, li := range o.Items {
		if li.ID != 0 && li.ID == id {
			return i
		}
	}
	return -1
}

func (o *Order) Line(id int64) (OrderItem, bool) {
	if i := o.lineIndexByID(id); i >= 0 {
		return o.Items[i], true
	}
	return OrderItem{}, false
}

// setQuantity clamps at zero; a line that reaches zero leaves the cart.
func (o *Order) setQuantity(idx, quantity int) {
	if quantity <= 0 {
		o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		return
	}
	o.Items[idx].Quantity = quantity
}

// AddItem adds delta units of item with the given choices. The line is
// keyed by item and choice set. A non-positive delta against a missing line
// does nothing.
func (o *Order) AddItem(item Item, choices []SelectedChoice, delta int) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.CheckItem(item); err != nil {
		return err
	}

	idx := o.lineIndex(item.ID, ChoiceKey(choices))
	if idx < 0 {
		if delta <= 0 {
			return nil
		}
		o.Items = append(o.Items, OrderItem{
			OrderID:   o.ID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			UnitPrice: item.Price,
			Quantity:  delta,
			Choices:   choices,
		})
		return nil
	}

	o.Items[idx].UnitPrice = item.Price
	o.setQuantity(idx, o.Items[idx].Quantity+delta)
	return nil
}

func (o *Order) AdjustQuantity(lineID int64, delta int) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	idx := o.lineIndexByID(lineID)
	if idx < 0 {
		return fmt.Errorf("order item %d: %w", lineID, ErrNotFound)
	}
	o.setQuantity(idx, o.Items[idx].Quantity+delta)
	return nil
}

func (o *Order) RemoveItem(lineID int64) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	idx := o.lineIndexByID(lineID)
	if idx < 0 {
		return fmt.Errorf("order item %d: %w", lineID, ErrNotFound)
	}
	o.setQuantity(idx, 0)
	return nil
}

// Recompute derives every line sub-total and the order totals from the
// current unit prices. An empty cart costs nothing.
func (o *Order) Recompute(pricer Pricer, fees Fees) {
	var subTotal int64
	for i := range o.Items {
		li := &o.Items[i]
		li.SubTotal = LineSubTotal(li.UnitPrice, li.Choices, li.Quantity)
		subTotal += li.SubTotal
	}
	o.SubTotal = subTotal
	if len(o.Items) == 0 {
		o.Total = 0
		return
	}
	o.Total = pricer.Total(subTotal, o.OrderFor, fees)
}

// Place moves the cart to PLACED and snapshots the checkout details. Totals
// must be recomputed beforehand.
func (o *Order) Place(details CheckoutDetails, restaurant Restaurant, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return ErrCartEmpty
	}
	if o.OrderFor == Delivery {
		if strings.TrimSpace(details.Address) == "" {
			return NewValidationError("address", "delivery orders need an address")
		}
		if o.SubTotal < restaurant.MinimumDeliveryOrder {
			return NewValidationError("sub_total", "minimum delivery order is %d", restaurant.MinimumDeliveryOrder)
		}
	}

	o.Address = strings.TrimSpace(details.Address)
	o.PaymentMethodID = details.PaymentMethodID
	o.Note = details.Note
	o.PlacedAt = &now
	o.setStatus(StatusPlaced, orderevents.TypeOrderPlaced, now)
	return nil
}

// Advance moves the order exactly one step along the fulfillment table.
func (o *Order) Advance(now time.Time) error {
	next, err := NextStatus(o.Status, o.OrderFor)
	if err != nil {
		return err
	}
	o.setStatus(next, orderevents.TypeOrderStatusChanged, now)
	return nil
}

// Transition applies a staff requested target after validating it.
func (o *Order) Transition(target Status, now time.Time) error {
	if err := ValidateTransition(o.Status, target, o.OrderFor); err != nil {
		return err
	}
	o.setStatus(target, orderevents.TypeOrderStatusChanged, now)
	return nil
}

// CancelByCustomer abandons a cart or withdraws an order the restaurant has
// not received yet.
func (o *Order) CancelByCustomer(now time.Time) error {
	switch o.Status {
	case StatusOpen:
		o.Status = StatusCancelled
		o.UpdatedAt = now
		return nil
	case StatusPlaced:
		o.setStatus(StatusCancelled, orderevents.TypeOrderStatusChanged, now)
		return nil
	}
	return NewValidationError("status", "%s order can no longer be cancelled", o.Status)
}

func (o *Order) setStatus(to Status, eventType string, now time.Time) {
	from := o.Status
	o.Status = to
	o.UpdatedAt = now
	o.events = append(o.events, Event{
		Type:         eventType,
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		CustomerID:   o.CustomerID,
		OrderFor:     o.OrderFor.String(),
		From:         from.String(),
		To:           to.String(),
		Total:        o.Total,
		PlacedAt:     o.PlacedAt,
		OccurredAt:   now,
	})
}

// PendingEvents returns the events raised since the order was loaded.
func (o *Order) PendingEvents() []Event {
	return o.events
}

func (o *Order) ClearEvents() {
	o.events = nil
}
