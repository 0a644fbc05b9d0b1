package entities

// PriceRange is one of the closed set of price buckets shown in the UI.
type PriceRange string

const (
	PriceCheap    PriceRange = "$"
	PriceModerate PriceRange = "$$"
	PriceUpscale  PriceRange = "$$$"
)

// ValidPriceRange reports whether s is a recognized price bucket.
func ValidPriceRange(s string) bool {
	switch PriceRange(s) {
	case PriceCheap, PriceModerate, PriceUpscale:
		return true
	}
	return false
}

// Restaurant represents a restaurant offering deals. The engine treats it as
// read-only; creation and updates belong to the owner-management flow.
type Restaurant struct {
	ID           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Address      string      `json:"address" db:"address"`
	City         string      `json:"city" db:"city"`
	Province     string      `json:"province" db:"province"`
	PostalCode   *string     `json:"postal_code" db:"postal_code"`
	Lat          float64     `json:"lat" db:"lat"`
	Lng          float64     `json:"lng" db:"lng"`
	PriceRange   *PriceRange `json:"price_range" db:"price_range"`
	CuisineTags  []string    `json:"cuisine_tags" db:"-"`
	Rating       *float64    `json:"rating" db:"rating"`
	ReviewsCount int         `json:"reviews_count" db:"reviews_count"`
	PickupOnly   bool        `json:"pickup_only" db:"pickup_only"`
}
