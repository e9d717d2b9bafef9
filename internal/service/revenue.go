package service

import (
	"context"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
)

type revenueService struct {
	bookingRepo repository.BookingRepository
}

func NewRevenueService(bookingRepo repository.BookingRepository) RevenueService {
	return &revenueService{bookingRepo: bookingRepo}
}

// MonthlyRevenue returns one total per calendar month, January first.
// The length is always 12; downstream report consumers assert on it.
func (s *revenueService) MonthlyRevenue(ctx context.Context, year int32) ([]int64, error) {
	if year < 1 {
		return nil, domain.Validationf("year must be positive, got %d", year)
	}
	totals, err := s.bookingRepo.MonthlyRevenue(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(totals) != domain.MonthsPerYear {
		padded := make([]int64, domain.MonthsPerYear)
		copy(padded, totals)
		totals = padded
	}
	return totals, nil
}
