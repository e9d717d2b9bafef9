package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, user_id, item_id, quantity, rental_start, rental_end, amount_cents, status, created_on`

func (r *bookingRepository) Create(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, item_id, quantity, rental_start, rental_end, amount_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return tx.QueryRowContext(ctx, query, b.UserID, b.ItemID, b.Quantity, b.RentalStart, b.RentalEnd, b.AmountCents, b.Status, time.Now()).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	var rentalStart, rentalEnd, createdOn time.Time
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.ItemID, &b.Quantity, &rentalStart, &rentalEnd, &b.AmountCents, &b.Status, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	b.RentalStart = rentalStart.Format("2006-01-02")
	b.RentalEnd = rentalEnd.Format("2006-01-02")
	b.CreatedOn = createdOn.Format("2006-01-02")
	return b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var rentalStart, rentalEnd, createdOn time.Time
		if err := rows.Scan(&b.ID, &b.UserID, &b.ItemID, &b.Quantity, &rentalStart, &rentalEnd, &b.AmountCents, &b.Status, &createdOn); err != nil {
			return nil, err
		}
		b.RentalStart = rentalStart.Format("2006-01-02")
		b.RentalEnd = rentalEnd.Format("2006-01-02")
		b.CreatedOn = createdOn.Format("2006-01-02")
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// reservedUnitsQuery sums committed quantity over bookings whose half-open
// window [rental_start, rental_end) overlaps the queried [start, end).
// Overlap test: rental_start < end AND start < rental_end.
const reservedUnitsQuery = `SELECT COALESCE(SUM(quantity), 0) FROM bookings
	WHERE item_id = $1 AND status != 'CANCELLED' AND rental_start < $3 AND $2 < rental_end`

func (r *bookingRepository) ReservedUnits(ctx context.Context, itemID int32, start, end string) (int32, error) {
	var reserved int32
	err := r.db.QueryRowContext(ctx, reservedUnitsQuery, itemID, start, end).Scan(&reserved)
	return reserved, err
}

func (r *bookingRepository) ReservedUnitsTx(ctx context.Context, tx *sql.Tx, itemID int32, start, end string) (int32, error) {
	var reserved int32
	err := tx.QueryRowContext(ctx, reservedUnitsQuery, itemID, start, end).Scan(&reserved)
	return reserved, err
}

// MonthlyRevenue always fills 12 slots; months without confirmed bookings
// stay at zero.
func (r *bookingRepository) MonthlyRevenue(ctx context.Context, year int32) ([]int64, error) {
	query := `SELECT EXTRACT(MONTH FROM created_on)::int, COALESCE(SUM(amount_cents), 0)
	          FROM bookings
	          WHERE status = 'CONFIRMED' AND EXTRACT(YEAR FROM created_on) = $1
	          GROUP BY 1`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]int64, domain.MonthsPerYear)
	for rows.Next() {
		var month int
		var cents int64
		if err := rows.Scan(&month, &cents); err != nil {
			return nil, err
		}
		if month >= 1 && month <= domain.MonthsPerYear {
			totals[month-1] = cents
		}
	}
	return totals, rows.Err()
}
