package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
)

type cartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

const cartColumns = `id, user_id, item_id, quantity, rental_start, rental_days, created_on, updated_on`

// Upsert relies on the unique (user_id, item_id) index: concurrent adds for
// the same key converge to a single row with the last committed write's
// quantity and dates. No accumulation, no duplicate-key error.
func (r *cartRepository) Upsert(ctx context.Context, e *domain.CartEntry) error {
	query := `INSERT INTO cart_entries (user_id, item_id, quantity, rental_start, rental_days, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6)
	          ON CONFLICT (user_id, item_id) DO UPDATE SET
	              quantity = EXCLUDED.quantity,
	              rental_start = EXCLUDED.rental_start,
	              rental_days = EXCLUDED.rental_days,
	              updated_on = EXCLUDED.updated_on
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.UserID, e.ItemID, e.Quantity, e.RentalStart, e.RentalDays, time.Now()).Scan(&e.ID)
}

func (r *cartRepository) Remove(ctx context.Context, userID, itemID int32) error {
	query := `DELETE FROM cart_entries WHERE user_id = $1 AND item_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, itemID)
	return err
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int32) ([]domain.CartEntry, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_entries WHERE user_id = $1 ORDER BY item_id`
	return r.list(ctx, r.db.QueryContext, query, userID)
}

// ListForCheckout locks the cart rows so a concurrent upsert or second
// checkout for the same user waits until this checkout commits. Rows come
// back in item_id order; checkout keeps that order for its item locks.
func (r *cartRepository) ListForCheckout(ctx context.Context, tx *sql.Tx, userID int32) ([]domain.CartEntry, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_entries WHERE user_id = $1 ORDER BY item_id FOR UPDATE`
	return r.list(ctx, tx.QueryContext, query, userID)
}

type queryFunc func(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)

func (r *cartRepository) list(ctx context.Context, q queryFunc, query string, userID int32) ([]domain.CartEntry, error) {
	rows, err := q(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CartEntry
	for rows.Next() {
		var e domain.CartEntry
		var rentalStart, createdOn, updatedOn time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.Quantity, &rentalStart, &e.RentalDays, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		e.RentalStart = rentalStart.Format("2006-01-02")
		e.CreatedOn = createdOn.Format("2006-01-02")
		e.UpdatedOn = updatedOn.Format("2006-01-02")
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *cartRepository) DeleteEntry(ctx context.Context, tx *sql.Tx, userID, itemID int32) error {
	query := `DELETE FROM cart_entries WHERE user_id = $1 AND item_id = $2`
	_, err := tx.ExecContext(ctx, query, userID, itemID)
	return err
}

func (r *cartRepository) DeleteStale(ctx context.Context, maxAgeDays int32) (int64, error) {
	query := `DELETE FROM cart_entries WHERE rental_start < CURRENT_DATE - $1 * INTERVAL '1 day'`
	res, err := r.db.ExecContext(ctx, query, maxAgeDays)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
