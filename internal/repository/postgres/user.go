package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, created_on) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, time.Now()).Scan(&u.ID)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&u.ID, &u.Name, &u.Email, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, name, email, created_on FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, created_on FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}
