package services

import (
	"context"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/domain/repositories"
)

// RestaurantListParams are the raw query parameters of the restaurant
// listing endpoint.
type RestaurantListParams struct {
	City    string
	Cuisine string
	BBox    string
	Limit   string
}

// RestaurantService serves the plain restaurant listing. It shares the
// filter compilation policy with the deal engine but has no temporal
// dimension.
type RestaurantService struct {
	repo         repositories.RestaurantRepository
	defaultLimit int
	maxLimit     int
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(repo repositories.RestaurantRepository, defaultLimit, maxLimit int) *RestaurantService {
	return &RestaurantService{
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// List returns restaurants matching the compiled filters, ranked by rating
// then review count.
func (s *RestaurantService) List(ctx context.Context, params RestaurantListParams) ([]*entities.Restaurant, error) {
	query := repositories.RestaurantQuery{
		Predicates: compileRestaurantPredicates(params.City, params.Cuisine, params.BBox),
		Limit:      clampLimit(params.Limit, s.defaultLimit, s.maxLimit),
	}
	return s.repo.List(ctx, query)
}
