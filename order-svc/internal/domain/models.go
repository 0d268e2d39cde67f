package domain

import "time"

type Restaurant struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	Address              string    `json:"address"`
	ImageURL             string    `json:"image_url"`
	Verified             bool      `json:"verified"`
	Available            bool      `json:"available"`
	DeliveryFee          int64     `json:"delivery_fee"`
	MinimumDeliveryOrder int64     `json:"minimum_delivery_order"`
	CreatedAt            time.Time `json:"created_at"`
}

// Listed reports whether customers may browse and order from the restaurant.
func (r Restaurant) Listed() bool {
	return r.Verified && r.Available
}

type MenuSection struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
}

type Item struct {
	ID            int64  `json:"id"`
	RestaurantID  int64  `json:"restaurant_id"`
	MenuSectionID int64  `json:"menu_section_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	Price         int64  `json:"price"`
	Available     bool   `json:"available"`
	Delivery      bool   `json:"delivery"`
	Takeout       bool   `json:"takeout"`
	Order         int    `json:"order"`
}

// OfferedFor reports whether the item can be ordered for the fulfillment type.
func (i Item) OfferedFor(orderFor OrderFor) bool {
	if !i.Available {
		return false
	}
	switch orderFor {
	case Delivery:
		return i.Delivery
	case Pickup:
		return i.Takeout
	}
	return false
}

type OptionType int

const (
	OptionRadio OptionType = 0
	OptionMulti OptionType = 1
)

type Option struct {
	ID      int64      `json:"id"`
	ItemID  int64      `json:"item_id"`
	Name    string     `json:"name"`
	Type    OptionType `json:"type"`
	Choices []Choice   `json:"choices"`
}

type Choice struct {
	ID          int64  `json:"id"`
	OptionID    int64  `json:"option_id"`
	Name        string `json:"name"`
	ExtraCharge int64  `json:"extra_charge"`
	IsDefault   bool   `json:"is_default"`
}

type PaymentMethod struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customer_id"`
	RestaurantID    int64       `json:"restaurant_id"`
	Address         string      `json:"address"`
	SubTotal        int64       `json:"sub_total"`
	Total           int64       `json:"total"`
	OrderFor        OrderFor    `json:"order_for"`
	Status          Status      `json:"status"`
	PaymentMethodID *int64      `json:"payment_method_id,omitempty"`
	Note            string      `json:"note"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	PlacedAt        *time.Time  `json:"placed_at,omitempty"`
	Items           []OrderItem `json:"items"`

	events []Event
}

type OrderItem struct {
	ID        int64            `json:"id"`
	OrderID   int64            `json:"order_id"`
	ItemID    int64            `json:"item_id"`
	ItemName  string           `json:"item_name"`
	UnitPrice int64            `json:"unit_price"`
	Quantity  int              `json:"quantity"`
	Choices   []SelectedChoice `json:"choices"`
	SubTotal  int64            `json:"sub_total"`
}

type SelectedChoice struct {
	ChoiceID    int64  `json:"choice_id"`
	Name        string `json:"name"`
	ExtraCharge int64  `json:"extra_charge"`
}

// CartKey identifies the single OPEN order a customer may hold per
// restaurant and fulfillment type.
type CartKey struct {
	RestaurantID int64
	CustomerID   int64
	OrderFor     OrderFor
}
