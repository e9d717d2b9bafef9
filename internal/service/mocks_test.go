package service_test

import (
	"context"
	"database/sql"

	"rentalstore-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Item, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Item), args.Get(1).(int32), args.Error(2)
}
func (m *MockItemRepo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Item, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// MockCartRepo
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) Upsert(ctx context.Context, entry *domain.CartEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockCartRepo) Remove(ctx context.Context, userID, itemID int32) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}
func (m *MockCartRepo) ListByUser(ctx context.Context, userID int32) ([]domain.CartEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartEntry), args.Error(1)
}
func (m *MockCartRepo) ListForCheckout(ctx context.Context, tx *sql.Tx, userID int32) ([]domain.CartEntry, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartEntry), args.Error(1)
}
func (m *MockCartRepo) DeleteEntry(ctx context.Context, tx *sql.Tx, userID, itemID int32) error {
	args := m.Called(ctx, tx, userID, itemID)
	return args.Error(0)
}
func (m *MockCartRepo) DeleteStale(ctx context.Context, maxAgeDays int32) (int64, error) {
	args := m.Called(ctx, maxAgeDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, tx *sql.Tx, booking *domain.Booking) error {
	args := m.Called(ctx, tx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) ReservedUnits(ctx context.Context, itemID int32, start, end string) (int32, error) {
	args := m.Called(ctx, itemID, start, end)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) ReservedUnitsTx(ctx context.Context, tx *sql.Tx, itemID int32, start, end string) (int32, error) {
	args := m.Called(ctx, tx, itemID, start, end)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) MonthlyRevenue(ctx context.Context, year int32) ([]int64, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
