package repositories

import (
	"context"

	"github.com/munchhq/munch-backend/internal/domain/entities"
)

// DealQuery is the fully compiled input to the live-deal lookup: the civil
// instant to evaluate liveness at, the optional debug override, the
// order-independent predicate set and the result cap.
type DealQuery struct {
	At               entities.LocalCivil
	IgnoreTimeWindow bool
	Predicates       []Predicate
	Limit            int
}

// DealRepository defines the read path for deals. The engine never mutates
// deals; ownership flows live elsewhere.
type DealRepository interface {
	// FindLive returns the deals live at q.At that satisfy every predicate,
	// joined with their owning restaurant, ordered by restaurant rating
	// (descending, missing ratings last), review count (descending) and deal
	// start time (ascending), truncated to q.Limit.
	FindLive(ctx context.Context, q DealQuery) ([]*entities.DealWithRestaurant, error)
}
