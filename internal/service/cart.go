package service

import (
	"context"

	"rentalstore-backend/internal/domain"
	"rentalstore-backend/internal/repository"
	"rentalstore-backend/internal/utils"
)

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// UpsertItem replaces any existing entry for (userID, itemID) with the new
// quantity and dates. Adding qty 1 then qty 3 leaves a single row with qty 3.
func (s *cartService) UpsertItem(ctx context.Context, userID, itemID, quantity int32, start string, days int32) (*domain.CartEntry, error) {
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

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	entry := &domain.CartEntry{
		UserID:      userID,
		ItemID:      itemID,
		Quantity:    quantity,
		RentalStart: startDate.Format(utils.DateLayout),
		RentalDays:  days,
	}
	if err := s.cartRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID int32) error {
	return s.cartRepo.Remove(ctx, userID, itemID)
}

func (s *cartService) ListCart(ctx context.Context, userID int32) ([]domain.CartEntry, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}
