package service

import (
	"context"
	"database/sql"
	"errors"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/logger"
	"rentalstore-backend/internal/repository"
	"rentalstore-backend/internal/utils"

	"github.com/lib/pq"
)

type reservationService struct {
	db          *sql.DB
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
	cartRepo    repository.CartRepository
	bookingRepo repository.BookingRepository
}

func NewReservationService(
	db *sql.DB,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	cartRepo repository.CartRepository,
	bookingRepo repository.BookingRepository,
) ReservationService {
	return &reservationService{
		db:          db,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		cartRepo:    cartRepo,
		bookingRepo: bookingRepo,
	}
}

// Checkout converts the user's cart into confirmed bookings. Success is
// per item: entries that clear the availability check become bookings and
// leave the cart, the rest stay in the cart and come back in Rejected.
// A storage conflict aborts the whole transaction and is retried once.
func (s *reservationService) Checkout(ctx context.Context, userID int32) (*domain.CheckoutResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	result, err := s.checkoutTx(ctx, userID)
	if err != nil && isRetryableConflict(err) {
		logger.Warn("Checkout hit a storage conflict, retrying once", "user_id", userID, "error", err)
		result, err = s.checkoutTx(ctx, userID)
	}
	return result, err
}

func (s *reservationService) checkoutTx(ctx context.Context, userID int32) (*domain.CheckoutResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	entries, err := s.cartRepo.ListForCheckout(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	result := &domain.CheckoutResult{
		Bookings: []domain.Booking{},
		Rejected: []domain.RejectedItem{},
	}
	// Empty cart is not an error: nothing was locked, nothing changes.
	if len(entries) == 0 {
		return result, nil
	}

	// Entries arrive in item_id order; taking the item locks in that order
	// keeps concurrent checkouts from deadlocking against each other.
	for _, e := range entries {
		item, err := s.itemRepo.GetForUpdate(ctx, tx, e.ItemID)
		if errors.Is(err, domain.ErrItemNotFound) {
			result.Rejected = append(result.Rejected, domain.RejectedItem{
				ItemID: e.ItemID,
				Reason: domain.RejectReasonItemNotFound,
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		endStr, err := utils.RentalEndString(e.RentalStart, e.RentalDays)
		if err != nil {
			return nil, err
		}

		// Re-check availability under the item lock; the read-side answer
		// from before the checkout carries no guarantee.
		reserved, err := s.bookingRepo.ReservedUnitsTx(ctx, tx, e.ItemID, e.RentalStart, endStr)
		if err != nil {
			return nil, err
		}
		if item.TotalStock-reserved < e.Quantity {
			result.Rejected = append(result.Rejected, domain.RejectedItem{
				ItemID: e.ItemID,
				Reason: domain.RejectReasonInsufficientStock,
			})
			continue
		}

		booking := domain.Booking{
			UserID:      userID,
			ItemID:      e.ItemID,
			Quantity:    e.Quantity,
			RentalStart: e.RentalStart,
			RentalEnd:   endStr,
			AmountCents: utils.BookingAmountCents(item.PricePerDayCents, e.Quantity, e.RentalDays),
			Status:      domain.BookingStatusConfirmed,
		}
		if err := s.bookingRepo.Create(ctx, tx, &booking); err != nil {
			return nil, err
		}
		if err := s.cartRepo.DeleteEntry(ctx, tx, userID, e.ItemID); err != nil {
			return nil, err
		}
		result.Bookings = append(result.Bookings, booking)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	logger.Info("Checkout committed", "user_id", userID, "booked", len(result.Bookings), "rejected", len(result.Rejected))
	return result, nil
}

func (s *reservationService) ListBookings(ctx context.Context, userID int32) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// CancelBooking flips the status to CANCELLED; the cancelled quantity stops
// counting against availability as soon as the update commits.
func (s *reservationService) CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	return booking, nil
}

// isRetryableConflict reports serialization failures, deadlocks and unique
// violations surfaced by Postgres. These abort the transaction and are safe
// to retry once from the top.
func isRetryableConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01", "23505":
		return true
	}
	return false
}
