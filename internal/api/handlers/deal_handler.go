package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/munchhq/munch-backend/internal/application/services"
	"github.com/munchhq/munch-backend/internal/domain/entities"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

// DealFinder is the slice of the deal query service the handler needs.
type DealFinder interface {
	DealsToday(ctx context.Context, params services.DealQueryParams) ([]*entities.DealWithRestaurant, error)
}

// DealHandler handles deal-related HTTP requests
type DealHandler struct {
	service DealFinder
}

// NewDealHandler creates a new deal handler
func NewDealHandler(service DealFinder) *DealHandler {
	return &DealHandler{
		service: service,
	}
}

// DealsToday handles GET /v1/deals/today
func (h *DealHandler) DealsToday(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := services.DealQueryParams{
		City:            q.Get("city"),
		Cuisine:         q.Get("cuisine"),
		Price:           q.Get("price"),
		MinRating:       q.Get("minRating"),
		BBox:            q.Get("bbox"),
		Now:             q.Get("now"),
		Limit:           q.Get("limit"),
		DebugIgnoreTime: q.Get("debugIgnoreTime"),
	}

	deals, err := h.service.DealsToday(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	// An empty match is a valid result, not an error.
	if deals == nil {
		deals = []*entities.DealWithRestaurant{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": deals,
		"count": len(deals),
	})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, kind apperrors.ErrorType, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error":   string(kind),
		"message": message,
	})
}

// respondWithAppError maps the engine's error taxonomy onto HTTP statuses.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeInvalidTimestamp, apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Type, appErr.Message)
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Type, appErr.Message)
		case apperrors.ErrorTypeBackendUnavailable:
			respondWithError(w, http.StatusServiceUnavailable, appErr.Type, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, apperrors.ErrorTypeInternal, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, apperrors.ErrorTypeInternal, "internal server error")
}
