package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// RejectReason values reported per item on checkout.
const (
	RejectReasonInsufficientStock = "INSUFFICIENT_STOCK"
	RejectReasonItemNotFound      = "ITEM_NOT_FOUND"
)

// Booking is a confirmed (or pending/cancelled) reservation. The rental
// window is the half-open interval [RentalStart, RentalEnd). AmountCents is
// snapshotted from the item price at checkout time and never recomputed.
type Booking struct {
	ID          int32         `json:"id"`
	UserID      int32         `json:"user_id"`
	ItemID      int32         `json:"item_id"`
	Quantity    int32         `json:"quantity"`
	RentalStart string        `json:"rental_start"`
	RentalEnd   string        `json:"rental_end"`
	AmountCents int64         `json:"amount_cents"`
	Status      BookingStatus `json:"status"`
	CreatedOn   string        `json:"created_on"`
}

// RejectedItem reports a cart entry that did not convert on checkout.
type RejectedItem struct {
	ItemID int32  `json:"item_id"`
	Reason string `json:"reason"`
}

// CheckoutResult is the outcome of a checkout: converted bookings plus the
// entries left in the cart. Both slices may be non-empty at once.
type CheckoutResult struct {
	Bookings []Booking      `json:"bookings"`
	Rejected []RejectedItem `json:"rejected"`
}

// MonthsPerYear is the fixed length of a monthly revenue series.
const MonthsPerYear = 12
