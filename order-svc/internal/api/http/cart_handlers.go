package httpapi

import (
	"errors"
	"net/http"

	"eatplus/order-svc/internal/service"
)

// decodeBody writes the error response itself and reports whether decoding succeeded.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(r, dst)
	if err == nil {
		return true
	}
	if errors.Is(err, errMalformed) {
		badRequest(w, "invalid request body")
		return false
	}
	h.writeError(w, r, err)
	return false
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid restaurant id")
		return
	}
	var req openCartRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	order, created, err := h.Cart.OpenCart(r.Context(), principal(r), restaurantID, req.OrderFor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	order, err := h.Cart.GetOrder(r.Context(), principal(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) latestOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Cart.LatestOrder(r.Context(), principal(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	var req addItemRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := h.Cart.AddItem(r.Context(), principal(r), id, service.AddItemInput{
		ItemID:    req.ItemID,
		ChoiceIDs: req.ChoiceIDs,
		Quantity:  quantity,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) incrementLine(w http.ResponseWriter, r *http.Request) {
	h.adjustLine(w, r, 1)
}

func (h *Handler) decrementLine(w http.ResponseWriter, r *http.Request) {
	h.adjustLine(w, r, -1)
}

func (h *Handler) adjustLine(w http.ResponseWriter, r *http.Request, delta int) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order item id")
		return
	}
	order, err := h.Cart.AdjustQuantity(r.Context(), principal(r), id, delta)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order item id")
		return
	}
	order, err := h.Cart.RemoveItem(r.Context(), principal(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	var req checkoutRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	order, err := h.Cart.Checkout(r.Context(), principal(r), id, service.CheckoutInput{
		Address:         req.Address,
		PaymentMethodID: req.PaymentMethodID,
		Note:            req.Note,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	order, err := h.Cart.Cancel(r.Context(), principal(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) pickupTicket(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid order id")
		return
	}
	png, err := h.Cart.PickupTicket(r.Context(), principal(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
