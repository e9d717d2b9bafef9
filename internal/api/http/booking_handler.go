package http

import (
	"net/http"
	"strconv"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler serves availability, booking and revenue endpoints
type BookingHandler struct {
	inventory   service.InventoryService
	reservation service.ReservationService
	revenue     service.RevenueService
}

func NewBookingHandler(inventory service.InventoryService, reservation service.ReservationService, revenue service.RevenueService) *BookingHandler {
	return &BookingHandler{
		inventory:   inventory,
		reservation: reservation,
		revenue:     revenue,
	}
}

// CheckAvailability handles GET /bookings/availability
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	itemID, err := strconv.ParseInt(q.Get("item_id"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item_id"})
		return
	}
	days, err := strconv.ParseInt(q.Get("days"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid days"})
		return
	}
	quantity, err := strconv.ParseInt(q.Get("quantity"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid quantity"})
		return
	}

	availability, err := h.inventory.CheckAvailability(r.Context(), int32(itemID), q.Get("start"), int32(days), int32(quantity))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, availability)
}

// ListBookings handles GET /bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	bookings, err := h.reservation.ListBookings(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	respondJSON(w, http.StatusOK, bookings)
}

// CancelBooking handles POST /bookings/{bookingID}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingID"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.reservation.CancelBooking(r.Context(), userID, int32(bookingID))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// MonthlyRevenue handles GET /bookings/stats/revenue. The response is
// always an array of exactly 12 numbers, January first.
func (h *BookingHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.ParseInt(r.URL.Query().Get("year"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid year"})
		return
	}

	totals, err := h.revenue.MonthlyRevenue(r.Context(), int32(year))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, totals)
}
