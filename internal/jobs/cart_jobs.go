package jobs

import (
	"context"

	"rentalstore-backend/internal/logger"
)

// PurgeStaleCartEntries deletes cart entries whose rental start date is far
// enough in the past that the selection can never convert to a booking.
// This is the only maintenance the cart needs; the (user_id, item_id)
// uniqueness itself is a schema constraint, never cleanup.
func (jr *JobRunner) PurgeStaleCartEntries() {
	jr.runWithRecovery("PurgeStaleCartEntries", func() {
		ctx := context.Background()

		maxAge := jr.config.Cart.StaleAfterDays
		deleted, err := jr.store.CartRepository.DeleteStale(ctx, maxAge)
		if err != nil {
			logger.Error("Failed to purge stale cart entries", "error", err)
			return
		}
		logger.Info("Purged stale cart entries", "count", deleted, "stale_after_days", maxAge)
	})
}
