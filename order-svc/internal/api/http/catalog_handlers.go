package httpapi

import (
	"net/http"

	"eatplus/order-svc/internal/domain"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid restaurant id")
		return
	}
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) listMenuSections(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid restaurant id")
		return
	}
	sections, err := h.Catalog.ListMenuSections(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// listItems filters by ?order_for=, defaulting to pickup.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid restaurant id")
		return
	}
	orderFor := domain.Pickup
	if v := r.URL.Query().Get("order_for"); v != "" {
		if orderFor, err = domain.ParseOrderFor(v); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	items, err := h.Catalog.ListItems(r.Context(), id, orderFor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) listOptions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid item id")
		return
	}
	options, err := h.Catalog.ListOptions(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *Handler) listChoices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid item id")
		return
	}
	choices, err := h.Catalog.ListChoices(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, choices)
}
