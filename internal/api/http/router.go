package http

import (
	"net/http"

	"rentalstore-backend/internal/security"
	"rentalstore-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface. Availability and revenue reporting are
// open; cart and booking routes require an authenticated user.
func NewRouter(
	tokens security.TokenManager,
	inventory service.InventoryService,
	carts service.CartService,
	reservation service.ReservationService,
	revenue service.RevenueService,
) *mux.Router {
	cartHandler := NewCartHandler(carts, reservation)
	bookingHandler := NewBookingHandler(inventory, reservation, revenue)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/bookings/availability", bookingHandler.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/bookings/stats/revenue", bookingHandler.MonthlyRevenue).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/cart/item", cartHandler.UpsertItem).Methods(http.MethodPost)
	authed.HandleFunc("/cart/item/{itemID}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	authed.HandleFunc("/cart", cartHandler.ListCart).Methods(http.MethodGet)
	authed.HandleFunc("/cart/checkout", cartHandler.Checkout).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.ListBookings).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{bookingID}/cancel", bookingHandler.CancelBooking).Methods(http.MethodPost)

	return router
}
