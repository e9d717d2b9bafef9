package domain

// CartEntry is a pending selection. At most one entry exists per
// (user_id, item_id); repeated adds replace quantity and dates in place.
type CartEntry struct {
	ID          int32  `json:"id"`
	UserID      int32  `json:"user_id"`
	ItemID      int32  `json:"item_id"`
	Quantity    int32  `json:"quantity"`
	RentalStart string `json:"rental_start"`
	RentalDays  int32  `json:"rental_days"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}
