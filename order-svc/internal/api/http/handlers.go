package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"eatplus/order-svc/internal/service"
	"eatplus/pkg/auth"
)

type Handler struct {
	Catalog     service.CatalogServiceInterface
	Cart        service.CartServiceInterface
	Fulfillment service.FulfillmentServiceInterface

	verifier *auth.Verifier
	log      *slog.Logger
}

func NewHandler(catalog service.CatalogServiceInterface, cart service.CartServiceInterface, fulfillment service.FulfillmentServiceInterface, verifier *auth.Verifier, log *slog.Logger) *Handler {
	return &Handler{
		Catalog:     catalog,
		Cart:        cart,
		Fulfillment: fulfillment,
		verifier:    verifier,
		log:         log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	authed := auth.Middleware(h.verifier)
	protect := func(fn http.HandlerFunc) http.Handler { return authed(fn) }

	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.listMenuSections).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/items", h.listItems).Methods("GET")
	r.HandleFunc("/api/items/{id:[0-9]+}/options", h.listOptions).Methods("GET")
	r.HandleFunc("/api/items/{id:[0-9]+}/choices", h.listChoices).Methods("GET")

	r.Handle("/api/restaurants/{id:[0-9]+}/cart", protect(h.openCart)).Methods("POST")
	r.Handle("/api/orders/latest", protect(h.latestOrder)).Methods("GET")
	r.Handle("/api/orders/{id:[0-9]+}", protect(h.getOrder)).Methods("GET")
	r.Handle("/api/orders/{id:[0-9]+}/items", protect(h.addItem)).Methods("POST")
	r.Handle("/api/orders/{id:[0-9]+}/checkout", protect(h.checkout)).Methods("POST")
	r.Handle("/api/orders/{id:[0-9]+}/cancel", protect(h.cancelOrder)).Methods("POST")
	r.Handle("/api/orders/{id:[0-9]+}/qrcode", protect(h.pickupTicket)).Methods("GET")
	r.Handle("/api/order-items/{id:[0-9]+}/increment", protect(h.incrementLine)).Methods("POST")
	r.Handle("/api/order-items/{id:[0-9]+}/decrement", protect(h.decrementLine)).Methods("POST")
	r.Handle("/api/order-items/{id:[0-9]+}", protect(h.removeLine)).Methods("DELETE")

	r.Handle("/api/restaurant/orders", protect(h.listRestaurantOrders)).Methods("GET")
	r.Handle("/api/restaurant/orders/notifications", protect(h.notificationCount)).Methods("GET")
	r.Handle("/api/restaurant/orders/{id:[0-9]+}/advance", protect(h.advanceOrder)).Methods("POST")
	r.Handle("/api/restaurant/orders/{id:[0-9]+}/status", protect(h.updateOrderStatus)).Methods("PUT")
	r.Handle("/api/restaurant/stats/today", protect(h.todayStats)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// pathID parses the {id} route variable. The route pattern guarantees digits.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// principal returns the caller placed in the context by auth.Middleware.
func principal(r *http.Request) auth.Principal {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		return auth.Principal{}
	}
	return *p
}
