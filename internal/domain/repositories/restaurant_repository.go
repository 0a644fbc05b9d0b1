package repositories

import (
	"context"

	"github.com/munchhq/munch-backend/internal/domain/entities"
)

// RestaurantQuery carries the compiled predicate set for a restaurant
// listing. Only restaurant-level predicates apply here.
type RestaurantQuery struct {
	Predicates []Predicate
	Limit      int
}

// RestaurantRepository defines the read path for restaurants.
type RestaurantRepository interface {
	// List returns restaurants matching every predicate, ordered by rating
	// (descending, missing ratings last) then review count (descending),
	// truncated to q.Limit.
	List(ctx context.Context, q RestaurantQuery) ([]*entities.Restaurant, error)
}
