package handlers

import (
	"context"
	"net/http"

	"github.com/munchhq/munch-backend/internal/application/services"
	"github.com/munchhq/munch-backend/internal/domain/entities"
)

// RestaurantLister is the slice of the restaurant service the handler needs.
type RestaurantLister interface {
	List(ctx context.Context, params services.RestaurantListParams) ([]*entities.Restaurant, error)
}

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	service RestaurantLister
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service RestaurantLister) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
	}
}

// ListRestaurants handles GET /v1/restaurants
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := services.RestaurantListParams{
		City:    q.Get("city"),
		Cuisine: q.Get("cuisine"),
		BBox:    q.Get("bbox"),
		Limit:   q.Get("limit"),
	}

	restaurants, err := h.service.List(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if restaurants == nil {
		restaurants = []*entities.Restaurant{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": restaurants,
		"count": len(restaurants),
	})
}
