package routes

import (
	"net/http"

	"github.com/munchhq/munch-backend/internal/api/handlers"
	"github.com/munchhq/munch-backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	dealHandler       *handlers.DealHandler
	restaurantHandler *handlers.RestaurantHandler
	healthHandler     *handlers.HealthHandler
}

// NewRouter creates a new router
func NewRouter(
	dealHandler *handlers.DealHandler,
	restaurantHandler *handlers.RestaurantHandler,
	healthHandler *handlers.HealthHandler,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		dealHandler:       dealHandler,
		restaurantHandler: restaurantHandler,
		healthHandler:     healthHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health probes
	r.mux.HandleFunc("GET /health", r.healthHandler.Live)
	r.mux.HandleFunc("GET /health/ready", r.healthHandler.Ready)

	// Deal endpoints
	r.mux.HandleFunc("GET /v1/deals/today", r.dealHandler.DealsToday)

	// Restaurant endpoints
	r.mux.HandleFunc("GET /v1/restaurants", r.restaurantHandler.ListRestaurants)

	// CORS wraps everything so headers are set even on error responses.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
