package domain

// Fees are the restaurant specific charges that feed into an order total.
type Fees struct {
	DeliveryFee int64
}

// Pricer turns a cart sub-total into the amount the customer pays.
type Pricer interface {
	Total(subTotal int64, orderFor OrderFor, fees Fees) int64
}

// TaxPricer adds the delivery fee for delivery orders and then applies a
// flat tax rate expressed in basis points, rounding half up to the minor unit.
type TaxPricer struct {
	RateBasisPoints int64
}

func (p TaxPricer) Total(subTotal int64, orderFor OrderFor, fees Fees) int64 {
	base := subTotal
	if orderFor == Delivery {
		base += fees.DeliveryFee
	}
	tax := (base*p.RateBasisPoints + 5000) / 10000
	return base + tax
}

// LineSubTotal is (price + extra charges) * quantity.
func LineSubTotal(price int64, choices []SelectedChoice, quantity int) int64 {
	unit := price
	for _, c := range choices {
		unit += c.ExtraCharge
	}
	return unit * int64(quantity)
}
