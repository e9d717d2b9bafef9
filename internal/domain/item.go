package domain

type ItemDurationUnit string

const (
	ItemDurationUnitDay   ItemDurationUnit = "day"
	ItemDurationUnitWeek  ItemDurationUnit = "week"
	ItemDurationUnitMonth ItemDurationUnit = "month"
)

// Item is a rentable catalog entry. TotalStock is the number of physical
// units owned by the store; bookings never mutate it, they only reserve
// against it.
type Item struct {
	ID               int32            `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Categories       []string         `json:"categories"`
	PricePerDayCents int32            `json:"price_per_day_cents"`
	TotalStock       int32            `json:"total_stock"`
	DurationUnit     ItemDurationUnit `json:"duration_unit"`
	CreatedOn        string           `json:"created_on"`
	DeletedOn        *string          `json:"deleted_on,omitempty"`
}

// Availability is the derived projection for one item over a date range.
type Availability struct {
	ItemID    int32 `json:"item_id"`
	Available bool  `json:"available"`
	UnitsFree int32 `json:"units_free"`
}
