package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, COALESCE(description, ''), categories, price_per_day_cents, total_stock, duration_unit, created_on, deleted_on`

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, description, categories, price_per_day_cents, total_stock, duration_unit, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.Name, it.Description, pq.Array(it.Categories), it.PricePerDayCents, it.TotalStock, it.DurationUnit, time.Now()).Scan(&it.ID)
}

// scanItem normalizes the timestamp columns into the domain's string dates.
func scanItem(row *sql.Row) (*domain.Item, error) {
	it := &domain.Item{}
	var createdOn time.Time
	var deletedOn sql.NullTime
	err := row.Scan(&it.ID, &it.Name, &it.Description, pq.Array(&it.Categories), &it.PricePerDayCents, &it.TotalStock, &it.DurationUnit, &createdOn, &deletedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	it.CreatedOn = createdOn.Format("2006-01-02")
	if deletedOn.Valid {
		d := deletedOn.Time.Format("2006-01-02")
		it.DeletedOn = &d
	}
	return it, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND deleted_on IS NULL`
	return scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *itemRepository) GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND deleted_on IS NULL FOR UPDATE`
	return scanItem(tx.QueryRowContext(ctx, query, id))
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name=$1, description=$2, categories=$3, price_per_day_cents=$4, total_stock=$5, duration_unit=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, pq.Array(it.Categories), it.PricePerDayCents, it.TotalStock, it.DurationUnit, it.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE items SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *itemRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Item, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + itemColumns + ` FROM items WHERE deleted_on IS NULL ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM items WHERE deleted_on IS NULL`
	err = r.db.QueryRowContext(ctx, countQuery).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var createdOn time.Time
		var deletedOn sql.NullTime
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, pq.Array(&it.Categories), &it.PricePerDayCents, &it.TotalStock, &it.DurationUnit, &createdOn, &deletedOn); err != nil {
			return nil, 0, err
		}
		it.CreatedOn = createdOn.Format("2006-01-02")
		if deletedOn.Valid {
			d := deletedOn.Time.Format("2006-01-02")
			it.DeletedOn = &d
		}
		items = append(items, it)
	}
	return items, count, rows.Err()
}
