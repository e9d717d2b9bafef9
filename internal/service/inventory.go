package service

import (
	"context"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
	"rentalstore-backend/internal/utils"
)

type inventoryService struct {
	itemRepo    repository.ItemRepository
	bookingRepo repository.BookingRepository
}

func NewInventoryService(itemRepo repository.ItemRepository, bookingRepo repository.BookingRepository) InventoryService {
	return &inventoryService{
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
	}
}

// CheckAvailability is a read-side projection over booking rows and the
// item's total stock. It never mutates state; checkout re-runs the same
// computation under the item lock before committing.
func (s *inventoryService) CheckAvailability(ctx context.Context, itemID int32, start string, days, quantity int32) (*domain.Availability, error) {
	if quantity <= 0 {
		return nil, domain.Validationf("quantity must be positive, got %d", quantity)
	}
	if days <= 0 {
		return nil, domain.Validationf("rental days must be positive, got %d", days)
	}
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, domain.Validationf("%v", err)
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	startStr := startDate.Format(utils.DateLayout)
	endStr := utils.RentalEnd(startDate, days).Format(utils.DateLayout)
	reserved, err := s.bookingRepo.ReservedUnits(ctx, itemID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	free := item.TotalStock - reserved
	if free < 0 {
		free = 0
	}
	return &domain.Availability{
		ItemID:    itemID,
		Available: free >= quantity,
		UnitsFree: free,
	}, nil
}
