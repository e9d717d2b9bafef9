package service

import (
	"context"

	"rentalstore-backend/internal/domain"
)

type InventoryService interface {
	CheckAvailability(ctx context.Context, itemID int32, start string, days, quantity int32) (*domain.Availability, error)
}

type CartService interface {
	UpsertItem(ctx context.Context, userID, itemID, quantity int32, start string, days int32) (*domain.CartEntry, error)
	RemoveItem(ctx context.Context, userID, itemID int32) error
	ListCart(ctx context.Context, userID int32) ([]domain.CartEntry, error)
}

type ReservationService interface {
	Checkout(ctx context.Context, userID int32) (*domain.CheckoutResult, error)
	ListBookings(ctx context.Context, userID int32) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
}

type RevenueService interface {
	MonthlyRevenue(ctx context.Context, year int32) ([]int64, error)
}
