package service

import (
	"context"
	"time"

	"eatplus/order-svc/internal/domain"
	"eatplus/pkg/auth"
)

type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListMenuSections(ctx context.Context, restaurantID int64) ([]domain.MenuSection, error)
	ListItems(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	ListOptions(ctx context.Context, itemID int64) ([]domain.Option, error)
	AcceptedPaymentMethods(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.PaymentMethod, error)
}

type CatalogCache interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error)
	SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error
}

// OrderTx exposes queries that must run inside the transaction holding the
// order lock.
type OrderTx interface {
	// CountOutstanding serialises on the customer and counts their placed,
	// unfinished orders other than excludeOrderID. restaurantID 0 means all
	// restaurants.
	CountOutstanding(ctx context.Context, customerID, restaurantID, excludeOrderID int64) (int, error)
}

// OrderMutation runs against a locked order; returning an error rolls the
// whole unit of work back.
type OrderMutation func(ctx context.Context, tx OrderTx, order *domain.Order) error

type OrderRepository interface {
	OpenCart(ctx context.Context, key domain.CartKey) (*domain.Order, bool, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	OrderIDForLine(ctx context.Context, lineID int64) (int64, error)
	UpdateOrder(ctx context.Context, id int64, fn OrderMutation) (*domain.Order, error)
	LatestOrder(ctx context.Context, customerID int64) (*domain.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID int64, status domain.Status) ([]domain.Order, error)
	CountPlacedSince(ctx context.Context, restaurantID int64, since time.Time) (int, error)
	CountByStatusSince(ctx context.Context, restaurantID int64, since time.Time) (map[string]int64, error)
}

type StatsReader interface {
	DailyStatusCounts(ctx context.Context, restaurantID int64, day time.Time) (map[string]int64, bool, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListMenuSections(ctx context.Context, restaurantID int64) ([]domain.MenuSection, error)
	ListItems(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.Item, error)
	ListOptions(ctx context.Context, itemID int64) ([]domain.Option, error)
	ListChoices(ctx context.Context, itemID int64) ([]domain.Choice, error)
}

type CartServiceInterface interface {
	OpenCart(ctx context.Context, p auth.Principal, restaurantID int64, orderFor domain.OrderFor) (*domain.Order, bool, error)
	GetOrder(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error)
	LatestOrder(ctx context.Context, p auth.Principal) (*domain.Order, error)
	AddItem(ctx context.Context, p auth.Principal, orderID int64, in AddItemInput) (*domain.Order, error)
	AdjustQuantity(ctx context.Context, p auth.Principal, lineID int64, delta int) (*domain.Order, error)
	RemoveItem(ctx context.Context, p auth.Principal, lineID int64) (*domain.Order, error)
	Checkout(ctx context.Context, p auth.Principal, orderID int64, in CheckoutInput) (*domain.Order, error)
	Cancel(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error)
	PickupTicket(ctx context.Context, p auth.Principal, orderID int64) ([]byte, error)
}

type FulfillmentServiceInterface interface {
	ListOrders(ctx context.Context, p auth.Principal, status domain.Status) ([]domain.Order, error)
	Advance(ctx context.Context, p auth.Principal, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, p auth.Principal, orderID int64, target domain.Status) (*domain.Order, error)
	NotificationCount(ctx context.Context, p auth.Principal, since time.Time) (int, error)
	TodayStats(ctx context.Context, p auth.Principal) (map[string]int64, error)
}

var (
	_ CatalogServiceInterface     = (*CatalogService)(nil)
	_ CartServiceInterface        = (*CartService)(nil)
	_ FulfillmentServiceInterface = (*FulfillmentService)(nil)
)
