package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/service"

	"github.com/gorilla/mux"
)

// CartHandler serves the cart endpoints
type CartHandler struct {
	carts       service.CartService
	reservation service.ReservationService
}

func NewCartHandler(carts service.CartService, reservation service.ReservationService) *CartHandler {
	return &CartHandler{
		carts:       carts,
		reservation: reservation,
	}
}

type upsertCartItemRequest struct {
	ItemID      int32  `json:"item_id"`
	Quantity    int32  `json:"quantity"`
	RentalStart string `json:"rental_start"`
	RentalDays  int32  `json:"rental_days"`
}

// UpsertItem handles POST /cart/item. Repeating the call for the same item
// replaces the entry instead of stacking a second row.
func (h *CartHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req upsertCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	entry, err := h.carts.UpsertItem(r.Context(), userID, req.ItemID, req.Quantity, req.RentalStart, req.RentalDays)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// RemoveItem handles DELETE /cart/item/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemID"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return
	}

	if err := h.carts.RemoveItem(r.Context(), userID, int32(itemID)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListCart handles GET /cart
func (h *CartHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	entries, err := h.carts.ListCart(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	result, err := h.reservation.Checkout(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
