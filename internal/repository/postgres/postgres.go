package postgres

import (
	"database/sql"

	"rentalstore-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.CartRepository
	repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ItemRepository:    NewItemRepository(db),
		CartRepository:    NewCartRepository(db),
		BookingRepository: NewBookingRepository(db),
	}
}

// DB exposes the underlying handle for services that own transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}
