package httpapi

import (
	"net/http"
	"time"

	"eatplus/order-svc/internal/domain"
)

func (h *Handler) listRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	var status domain.Status
	if v := r.URL.Query().Get("status"); v != "" {
		var err error
		if status, err = domain.ParseStatus(v); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	orders, err := h.Fulfillment.ListOrders(r.Context(), principal(r), status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	order, err := h.Fulfillment.Advance(r.Context(), principal(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	var req updateStatusRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	order, err := h.Fulfillment.UpdateStatus(r.Context(), principal(r), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// notificationCount answers ?since=<RFC3339>; without it the last five minutes are counted.
func (h *Handler) notificationCount(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-5 * time.Minute)
	if v := r.URL.Query().Get("since"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeError(w, r, domain.NewValidationError("since", "must be an RFC3339 timestamp"))
			return
		}
		since = parsed
	}
	n, err := h.Fulfillment.NotificationCount(r.Context(), principal(r), since)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Handler) todayStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Fulfillment.TodayStats(r.Context(), principal(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":   time.Now().UTC().Format("2006-01-02"),
		"counts": counts,
	})
}
