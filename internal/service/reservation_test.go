package service_test

import (
	"context"
	"testing"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReservationService_Checkout(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 1, Name: "Renter", Email: "renter@test.com"}

	t.Run("PartialSuccess", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		cartRepo := new(MockCartRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(db, userRepo, itemRepo, cartRepo, bookingRepo)

		entries := []domain.CartEntry{
			{UserID: 1, ItemID: 3, Quantity: 1, RentalStart: "2026-06-10", RentalDays: 2},
			{UserID: 1, ItemID: 7, Quantity: 2, RentalStart: "2026-06-10", RentalDays: 3},
		}
		kayak := &domain.Item{ID: 3, Name: "Kayak", PricePerDayCents: 2000, TotalStock: 4}
		tent := &domain.Item{ID: 7, Name: "Tent", PricePerDayCents: 1500, TotalStock: 2}

		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return(entries, nil)

		// Item 3: one of four units reserved, one requested -> converts.
		itemRepo.On("GetForUpdate", ctx, mock.Anything, int32(3)).Return(kayak, nil)
		bookingRepo.On("ReservedUnitsTx", ctx, mock.Anything, int32(3), "2026-06-10", "2026-06-12").Return(int32(1), nil)
		bookingRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cartRepo.On("DeleteEntry", ctx, mock.Anything, int32(1), int32(3)).Return(nil)

		// Item 7: one of two units reserved, two requested -> stays in cart.
		itemRepo.On("GetForUpdate", ctx, mock.Anything, int32(7)).Return(tent, nil)
		bookingRepo.On("ReservedUnitsTx", ctx, mock.Anything, int32(7), "2026-06-10", "2026-06-13").Return(int32(1), nil)

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		result, err := svc.Checkout(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, result.Bookings, 1)
		assert.Len(t, result.Rejected, 1)

		booked := result.Bookings[0]
		assert.Equal(t, int32(3), booked.ItemID)
		assert.Equal(t, domain.BookingStatusConfirmed, booked.Status)
		assert.Equal(t, "2026-06-12", booked.RentalEnd)
		assert.Equal(t, int64(4000), booked.AmountCents) // 2000 * 1 * 2

		assert.Equal(t, int32(7), result.Rejected[0].ItemID)
		assert.Equal(t, domain.RejectReasonInsufficientStock, result.Rejected[0].Reason)

		// The rejected entry must not be deleted from the cart.
		cartRepo.AssertNumberOfCalls(t, "DeleteEntry", 1)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("OverlappingWindowRejectsSecondUser", func(t *testing.T) {
		// Stock 2, all 2 units already confirmed for [10,13); a request for
		// 1 unit on the overlapping [11,12) must be rejected.
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		cartRepo := new(MockCartRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(db, userRepo, itemRepo, cartRepo, bookingRepo)

		item := &domain.Item{ID: 5, Name: "Trailer", PricePerDayCents: 5000, TotalStock: 2}
		entries := []domain.CartEntry{
			{UserID: 2, ItemID: 5, Quantity: 1, RentalStart: "2026-06-11", RentalDays: 1},
		}

		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2}, nil)
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(2)).Return(entries, nil)
		itemRepo.On("GetForUpdate", ctx, mock.Anything, int32(5)).Return(item, nil)
		bookingRepo.On("ReservedUnitsTx", ctx, mock.Anything, int32(5), "2026-06-11", "2026-06-12").Return(int32(2), nil)

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		result, err := svc.Checkout(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, result.Bookings)
		assert.Equal(t, []domain.RejectedItem{{ItemID: 5, Reason: domain.RejectReasonInsufficientStock}}, result.Rejected)
		bookingRepo.AssertNotCalled(t, "Create", ctx, mock.Anything, mock.Anything)
	})

	t.Run("EmptyCartIsNotAnError", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		cartRepo := new(MockCartRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(db, userRepo, itemRepo, cartRepo, bookingRepo)

		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return([]domain.CartEntry{}, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		result, err := svc.Checkout(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, result.Bookings)
		assert.NotNil(t, result.Rejected)
		assert.Empty(t, result.Bookings)
		assert.Empty(t, result.Rejected)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		svc := service.NewReservationService(db, userRepo, new(MockItemRepo), new(MockCartRepo), new(MockBookingRepo))

		userRepo.On("GetByID", ctx, int32(42)).Return(nil, domain.ErrUserNotFound)

		_, err = svc.Checkout(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("VanishedItemIsRejectedNotFatal", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		cartRepo := new(MockCartRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(db, userRepo, itemRepo, cartRepo, bookingRepo)

		entries := []domain.CartEntry{
			{UserID: 1, ItemID: 9, Quantity: 1, RentalStart: "2026-06-10", RentalDays: 2},
		}
		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return(entries, nil)
		itemRepo.On("GetForUpdate", ctx, mock.Anything, int32(9)).Return(nil, domain.ErrItemNotFound)

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		result, err := svc.Checkout(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, result.Bookings)
		assert.Equal(t, domain.RejectReasonItemNotFound, result.Rejected[0].Reason)
	})

	t.Run("ConflictRetriesOnce", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		itemRepo := new(MockItemRepo)
		cartRepo := new(MockCartRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(db, userRepo, itemRepo, cartRepo, bookingRepo)

		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		serializationFailure := &pq.Error{Code: "40001"}
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return(nil, serializationFailure).Once()
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return([]domain.CartEntry{}, nil).Once()

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		result, err := svc.Checkout(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, result.Bookings)
		cartRepo.AssertNumberOfCalls(t, "ListForCheckout", 2)
	})

	t.Run("ConflictSurfacedAfterSecondFailure", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		userRepo := new(MockUserRepo)
		cartRepo := new(MockCartRepo)
		svc := service.NewReservationService(db, userRepo, new(MockItemRepo), cartRepo, new(MockBookingRepo))

		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		deadlock := &pq.Error{Code: "40P01"}
		cartRepo.On("ListForCheckout", ctx, mock.Anything, int32(1)).Return(nil, deadlock)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		_, err = svc.Checkout(ctx, 1)
		assert.Error(t, err)
		cartRepo.AssertNumberOfCalls(t, "ListForCheckout", 2)
	})
}

func TestReservationService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(nil, new(MockUserRepo), new(MockItemRepo), new(MockCartRepo), bookingRepo)

		booking := &domain.Booking{ID: 11, UserID: 1, ItemID: 3, Status: domain.BookingStatusConfirmed}
		bookingRepo.On("GetByID", ctx, int32(11)).Return(booking, nil)
		bookingRepo.On("UpdateStatus", ctx, int32(11), domain.BookingStatusCancelled).Return(nil)

		got, err := svc.CancelBooking(ctx, 1, 11)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	})

	t.Run("NotOwner", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(nil, new(MockUserRepo), new(MockItemRepo), new(MockCartRepo), bookingRepo)

		booking := &domain.Booking{ID: 11, UserID: 2, Status: domain.BookingStatusConfirmed}
		bookingRepo.On("GetByID", ctx, int32(11)).Return(booking, nil)

		_, err := svc.CancelBooking(ctx, 1, 11)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReservationService(nil, new(MockUserRepo), new(MockItemRepo), new(MockCartRepo), bookingRepo)

		booking := &domain.Booking{ID: 11, UserID: 1, Status: domain.BookingStatusCancelled}
		bookingRepo.On("GetByID", ctx, int32(11)).Return(booking, nil)

		_, err := svc.CancelBooking(ctx, 1, 11)
		assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	})
}
