package repository

import (
	"context"
	"database/sql"

	"rentalstore-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Item, int32, error)

	// GetForUpdate locks the item row for the duration of tx. Checkout takes
	// this lock before recomputing reserved units so overlapping checkouts
	// for the same item serialize.
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Item, error)
}

type CartRepository interface {
	// Upsert inserts the entry or, when a row for (user_id, item_id) already
	// exists, replaces its quantity and dates. Last write wins.
	Upsert(ctx context.Context, entry *domain.CartEntry) error
	Remove(ctx context.Context, userID, itemID int32) error
	ListByUser(ctx context.Context, userID int32) ([]domain.CartEntry, error)

	// ListForCheckout reads and locks the user's cart rows inside tx.
	ListForCheckout(ctx context.Context, tx *sql.Tx, userID int32) ([]domain.CartEntry, error)
	// DeleteEntry removes one converted entry inside tx.
	DeleteEntry(ctx context.Context, tx *sql.Tx, userID, itemID int32) error
	// DeleteStale removes entries whose rental_start is more than maxAgeDays
	// in the past. Used by the nightly purge job.
	DeleteStale(ctx context.Context, maxAgeDays int32) (int64, error)
}

type BookingRepository interface {
	// Create inserts the booking inside tx and fills in its id.
	Create(ctx context.Context, tx *sql.Tx, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error

	// ReservedUnits sums the quantity of non-cancelled bookings for the item
	// whose [rental_start, rental_end) overlaps [start, end).
	ReservedUnits(ctx context.Context, itemID int32, start, end string) (int32, error)
	// ReservedUnitsTx is the same projection evaluated inside the checkout
	// transaction, after the item row lock is held.
	ReservedUnitsTx(ctx context.Context, tx *sql.Tx, itemID int32, start, end string) (int32, error)

	// MonthlyRevenue returns exactly 12 totals in cents, January first,
	// summing confirmed bookings created in each month of year.
	MonthlyRevenue(ctx context.Context, year int32) ([]int64, error)
}
