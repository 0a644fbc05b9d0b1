package repositories

import (
	"github.com/munchhq/munch-backend/internal/domain/entities"
)

// Predicate is one validated, typed restriction produced by the filter
// compiler. The storage adapter translates each predicate into whatever
// query form the backend needs; the compiler never builds SQL itself.
type Predicate interface {
	isPredicate()
}

// CityPrefix restricts to restaurants whose city starts with Prefix,
// case-insensitively ("Milton" matches "Milton, ON" and "Miltontown").
type CityPrefix struct {
	Prefix string
}

// CuisineOverlap restricts to restaurants whose cuisine tags share at least
// one value with Tags (set intersection, not containment).
type CuisineOverlap struct {
	Tags []string
}

// PriceEquals restricts to restaurants in exactly one price bucket.
type PriceEquals struct {
	Bucket entities.PriceRange
}

// MinRating restricts to restaurants rated at least Min. Restaurants with no
// rating never match.
type MinRating struct {
	Min float64
}

// BoundingBox restricts to restaurants whose coordinate lies inside the
// south/west/north/east rectangle, borders inclusive.
type BoundingBox struct {
	South, West, North, East float64
}

func (CityPrefix) isPredicate()     {}
func (CuisineOverlap) isPredicate() {}
func (PriceEquals) isPredicate()    {}
func (MinRating) isPredicate()      {}
func (BoundingBox) isPredicate()    {}
