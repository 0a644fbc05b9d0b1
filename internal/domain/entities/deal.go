package entities

// DiscountType describes the kind of discount a deal offers.
type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
	DiscountBOGO    DiscountType = "BOGO"
	DiscountOther   DiscountType = "OTHER"
)

// Deal represents a promotional deal owned by a restaurant. The daily window
// [StartTime, EndTime] applies on each weekday in DaysOfWeek (1=Mon..7=Sun);
// ValidFrom/ValidTo bound the calendar date range, either side may be open.
type Deal struct {
	ID            string       `json:"id" db:"id"`
	RestaurantID  string       `json:"restaurant_id" db:"restaurant_id"`
	Title         string       `json:"title" db:"title"`
	Description   *string      `json:"description" db:"description"`
	DiscountType  DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue *float64     `json:"discount_value" db:"discount_value"`
	StartTime     string       `json:"start_time" db:"start_time"`
	EndTime       string       `json:"end_time" db:"end_time"`
	DaysOfWeek    []int        `json:"days_of_week" db:"-"`
	ValidFrom     *string      `json:"valid_from" db:"valid_from"`
	ValidTo       *string      `json:"valid_to" db:"valid_to"`
	IsActive      bool         `json:"is_active" db:"is_active"`
}

// IsLiveAt reports whether the deal is live at the given civil instant.
// A deal is live when its active flag is set, the instant's date falls inside
// the validity range, the weekday is in DaysOfWeek and the time of day is
// inside [StartTime, EndTime] inclusive. ignoreTimeWindow relaxes only the
// weekday and time-of-day checks; the active flag and date range always hold.
func (d *Deal) IsLiveAt(at LocalCivil, ignoreTimeWindow bool) bool {
	if !d.IsActive {
		return false
	}
	if d.ValidFrom != nil && at.Date < *d.ValidFrom {
		return false
	}
	if d.ValidTo != nil && at.Date > *d.ValidTo {
		return false
	}
	if ignoreTimeWindow {
		return true
	}
	onDay := false
	for _, dow := range d.DaysOfWeek {
		if dow == at.Weekday {
			onDay = true
			break
		}
	}
	if !onDay {
		return false
	}
	return d.StartTime <= at.TimeOfDay && at.TimeOfDay <= d.EndTime
}

// DealWithRestaurant is the joined record returned by the deals/today query:
// the full deal plus the owning restaurant's fields, flattened the way the
// API responds.
type DealWithRestaurant struct {
	DealID        string       `json:"deal_id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue *float64     `json:"discount_value"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
	DaysOfWeek    []int        `json:"days_of_week"`

	RestaurantID string      `json:"restaurant_id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Province     string      `json:"province"`
	PostalCode   *string     `json:"postal_code"`
	Lat          float64     `json:"lat"`
	Lng          float64     `json:"lng"`
	PriceRange   *PriceRange `json:"price_range"`
	CuisineTags  []string    `json:"cuisine_tags"`
	Rating       *float64    `json:"rating"`
	ReviewsCount int         `json:"reviews_count"`
	PickupOnly   bool        `json:"pickup_only"`
}
