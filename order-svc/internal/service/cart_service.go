package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eatplus/order-svc/internal/domain"
	"eatplus/pkg/auth"
)

// CheckoutScope decides which orders count against the one outstanding
// order rule.
type CheckoutScope string

const (
	ScopePlatform   CheckoutScope = "platform"
	ScopeRestaurant CheckoutScope = "restaurant"
)

type AddItemInput struct {
	ItemID    int64
	ChoiceIDs []int64
	Quantity  int
}

type CheckoutInput struct {
	Address         string
	PaymentMethodID *int64
	Note            string
}

type CartService struct {
	orders  OrderRepository
	catalog CatalogRepository
	pricer  domain.Pricer
	qr      QRGenerator
	scope   CheckoutScope
	log     *slog.Logger
	now     func() time.Time
}

func NewCartService(orders OrderRepository, catalog CatalogRepository, pricer domain.Pricer, qr QRGenerator, scope CheckoutScope, log *slog.Logger) *CartService {
	return &CartService{
		orders:  orders,
		catalog: catalog,
		pricer:  pricer,
		qr:      qr,
		scope:   scope,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func requireCustomer(p auth.Principal) error {
	if !p.IsCustomer() {
		return domain.ErrForbidden
	}
	return nil
}

func ownedBy(o *domain.Order, p auth.Principal) error {
	if !o.OwnedBy(p.UserID) {
		return domain.ErrForbidden
	}
	return nil
}

// OpenCart returns the caller's OPEN order for the restaurant and
// fulfillment type, creating it on first use. created reports whether a new
// cart was made.
func (s *CartService) OpenCart(ctx context.Context, p auth.Principal, restaurantID int64, orderFor domain.OrderFor) (*domain.Order, bool, error) {
	if err := requireCustomer(p); err != nil {
		return nil, false, err
	}
	if !orderFor.Valid() {
		return nil, false, domain.NewValidationError("order_for", "must be pickup or delivery")
	}

	r, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, false, fmt.Errorf("restaurant %d: %w", restaurantID, err)
	}
	if !r.Listed() {
		return nil, false, fmt.Errorf("restaurant %d: %w", restaurantID, domain.ErrNotFound)
	}

	order, created, err := s.orders.OpenCart(ctx, domain.CartKey{
		RestaurantID: restaurantID,
		CustomerID:   p.UserID,
		OrderFor:     orderFor,
	})
	if err != nil {
		return nil, false, fmt.Errorf("open cart: %w", err)
	}
	if created {
		s.log.Info("cart opened", "order_id", order.ID, "customer_id", p.UserID, "restaurant_id", restaurantID, "order_for", orderFor.String())
	}
	return order, created, nil
}

// GetOrder is visible to the customer who owns it and to staff of its
// restaurant.
func (s *CartService) GetOrder(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}
	if p.IsCustomer() && order.OwnedBy(p.UserID) {
		if order.Status == domain.StatusOpen {
			// Open carts show live prices, so line and order totals follow them.
			if err := s.recompute(ctx, order); err != nil {
				return nil, err
			}
		}
		return order, nil
	}
	if p.IsStaffOf(order.RestaurantID) && order.Status != domain.StatusOpen {
		return order, nil
	}
	return nil, domain.ErrForbidden
}

func (s *CartService) LatestOrder(ctx context.Context, p auth.Principal) (*domain.Order, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}
	order, err := s.orders.LatestOrder(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("latest order: %w", err)
	}
	return order, nil
}

func (s *CartService) AddItem(ctx context.Context, p auth.Principal, orderID int64, in AddItemInput) (*domain.Order, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}
	if in.Quantity == 0 {
		return nil, domain.NewValidationError("quantity", "must not be zero")
	}

	item, itemErr := s.catalog.GetItem(ctx, in.ItemID)
	if itemErr != nil && !errors.Is(itemErr, domain.ErrNotFound) {
		return nil, fmt.Errorf("get item: %w", itemErr)
	}
	var options []domain.Option
	if itemErr == nil {
		var err error
		if options, err = s.catalog.ListOptions(ctx, item.ID); err != nil {
			return nil, fmt.Errorf("list options: %w", err)
		}
	}

	return s.orders.UpdateOrder(ctx, orderID, func(ctx context.Context, _ OrderTx, o *domain.Order) error {
		if err := ownedBy(o, p); err != nil {
			return err
		}
		if itemErr != nil {
			return fmt.Errorf("item %d: %w", in.ItemID, domain.ErrNotFound)
		}
		choices, err := domain.SelectChoices(options, in.ChoiceIDs)
		if err != nil {
			return err
		}
		if err := o.AddItem(*item, choices, in.Quantity); err != nil {
			return err
		}
		return s.recompute(ctx, o)
	})
}

// AdjustQuantity moves a line up or down by delta; reaching zero removes it.
func (s *CartService) AdjustQuantity(ctx context.Context, p auth.Principal, lineID int64, delta int) (*domain.Order, error) {
	return s.mutateLine(ctx, p, lineID, func(o *domain.Order) error {
		return o.AdjustQuantity(lineID, delta)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, p auth.Principal, lineID int64) (*domain.Order, error) {
	return s.mutateLine(ctx, p, lineID, func(o *domain.Order) error {
		return o.RemoveItem(lineID)
	})
}

func (s *CartService) mutateLine(ctx context.Context, p auth.Principal, lineID int64, apply func(*domain.Order) error) (*domain.Order, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}
	orderID, err := s.orders.OrderIDForLine(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("order item %d: %w", lineID, err)
	}
	return s.orders.UpdateOrder(ctx, orderID, func(ctx context.Context, _ OrderTx, o *domain.Order) error {
		if err := ownedBy(o, p); err != nil {
			return err
		}
		if err := apply(o); err != nil {
			return err
		}
		return s.recompute(ctx, o)
	})
}

// Checkout places the cart. Totals are recomputed from current prices and
// the outstanding order rule is checked under the customer lock so two
// concurrent checkouts cannot both pass it.
func (s *CartService) Checkout(ctx context.Context, p auth.Principal, orderID int64, in CheckoutInput) (*domain.Order, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}

	order, err := s.orders.UpdateOrder(ctx, orderID, func(ctx context.Context, tx OrderTx, o *domain.Order) error {
		if err := ownedBy(o, p); err != nil {
			return err
		}
		if o.Status != domain.StatusOpen {
			return domain.ErrOrderLocked
		}
		if len(o.Items) == 0 {
			return domain.ErrCartEmpty
		}

		r, err := s.catalog.GetRestaurant(ctx, o.RestaurantID)
		if err != nil {
			return fmt.Errorf("restaurant %d: %w", o.RestaurantID, err)
		}
		if !r.Listed() {
			return domain.NewValidationError("restaurant_id", "restaurant is not taking orders")
		}
		if err := s.recheckItems(ctx, o); err != nil {
			return err
		}
		if err := s.checkPaymentMethod(ctx, o, in.PaymentMethodID); err != nil {
			return err
		}

		var scopeRestaurant int64
		if s.scope == ScopeRestaurant {
			scopeRestaurant = o.RestaurantID
		}
		outstanding, err := tx.CountOutstanding(ctx, p.UserID, scopeRestaurant, o.ID)
		if err != nil {
			return fmt.Errorf("count outstanding orders: %w", err)
		}
		if outstanding > 0 {
			return domain.ErrOutstandingOrder
		}

		o.Recompute(s.pricer, domain.Fees{DeliveryFee: r.DeliveryFee})
		return o.Place(domain.CheckoutDetails{
			Address:         in.Address,
			PaymentMethodID: in.PaymentMethodID,
			Note:            in.Note,
		}, *r, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order placed", "order_id", order.ID, "customer_id", order.CustomerID, "restaurant_id", order.RestaurantID, "total", order.Total)
	return order, nil
}

// recheckItems rejects checkout when a line's item was withdrawn or stopped
// being offered for the cart's fulfillment type after it was added.
func (s *CartService) recheckItems(ctx context.Context, o *domain.Order) error {
	for i := range o.Items {
		li := &o.Items[i]
		item, err := s.catalog.GetItem(ctx, li.ItemID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("item_id", "item %d is no longer on the menu", li.ItemID)
		}
		if err != nil {
			return fmt.Errorf("item %d: %w", li.ItemID, err)
		}
		if err := o.CheckItem(*item); err != nil {
			return err
		}
		li.UnitPrice = item.Price
	}
	return nil
}

// checkPaymentMethod only applies when the restaurant lists accepted methods
// for the fulfillment type.
func (s *CartService) checkPaymentMethod(ctx context.Context, o *domain.Order, id *int64) error {
	accepted, err := s.catalog.AcceptedPaymentMethods(ctx, o.RestaurantID, o.OrderFor)
	if err != nil {
		return fmt.Errorf("payment methods: %w", err)
	}
	if len(accepted) == 0 {
		return nil
	}
	if id == nil {
		return domain.NewValidationError("payment_method_id", "is required")
	}
	for _, pm := range accepted {
		if pm.ID == *id {
			return nil
		}
	}
	return domain.NewValidationError("payment_method_id", "is not accepted for %s orders", o.OrderFor)
}

func (s *CartService) Cancel(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}
	order, err := s.orders.UpdateOrder(ctx, orderID, func(ctx context.Context, _ OrderTx, o *domain.Order) error {
		if err := ownedBy(o, p); err != nil {
			return err
		}
		return o.CancelByCustomer(s.now())
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order cancelled by customer", "order_id", order.ID, "customer_id", p.UserID)
	return order, nil
}

// PickupTicket renders the QR code a customer shows at the counter.
func (s *CartService) PickupTicket(ctx context.Context, p auth.Principal, orderID int64) ([]byte, error) {
	if err := requireCustomer(p); err != nil {
		return nil, err
	}
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}
	if err := ownedBy(order, p); err != nil {
		return nil, err
	}
	if !order.Status.Outstanding() && order.Status != domain.StatusCompleted {
		return nil, domain.NewValidationError("status", "%s order has no pickup ticket", order.Status)
	}
	png, err := s.qr.Generate(order.ID)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	return png, nil
}

func (s *CartService) recompute(ctx context.Context, o *domain.Order) error {
	r, err := s.catalog.GetRestaurant(ctx, o.RestaurantID)
	if err != nil {
		return fmt.Errorf("restaurant %d: %w", o.RestaurantID, err)
	}
	o.Recompute(s.pricer, domain.Fees{DeliveryFee: r.DeliveryFee})
	return nil
}
