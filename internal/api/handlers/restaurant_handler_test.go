package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munchhq/munch-backend/internal/api/handlers"
	"github.com/munchhq/munch-backend/internal/application/services"
	"github.com/munchhq/munch-backend/internal/domain/entities"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

type stubRestaurantLister struct {
	gotParams   services.RestaurantListParams
	restaurants []*entities.Restaurant
	err         error
}

func (s *stubRestaurantLister) List(_ context.Context, params services.RestaurantListParams) ([]*entities.Restaurant, error) {
	s.gotParams = params
	return s.restaurants, s.err
}

func performRestaurantsRequest(t *testing.T, lister handlers.RestaurantLister, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := handlers.NewRestaurantHandler(lister)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ListRestaurants(rec, req)
	return rec
}

func TestListRestaurants_ReturnsItemsAndCount(t *testing.T) {
	rating := 4.2
	lister := &stubRestaurantLister{restaurants: []*entities.Restaurant{{
		ID:           "r1",
		Name:         "Taco Norte",
		Address:      "221 Main St E",
		City:         "Milton, ON",
		Province:     "ON",
		Lat:          43.52,
		Lng:          -79.87,
		CuisineTags:  []string{"Mexican", "Tacos"},
		Rating:       &rating,
		ReviewsCount: 87,
	}}}

	rec := performRestaurantsRequest(t, lister, "/v1/restaurants?city=Milton")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []map[string]interface{} `json:"items"`
		Count int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Taco Norte", body.Items[0]["name"])
}

func TestListRestaurants_ForwardsQueryParams(t *testing.T) {
	lister := &stubRestaurantLister{}

	performRestaurantsRequest(t, lister, "/v1/restaurants?city=Toronto&cuisine=Pizza&bbox=43,-80,44,-79&limit=5")

	assert.Equal(t, services.RestaurantListParams{
		City:    "Toronto",
		Cuisine: "Pizza",
		BBox:    "43,-80,44,-79",
		Limit:   "5",
	}, lister.gotParams)
}

func TestListRestaurants_EmptyResultIsAnEmptyArray(t *testing.T) {
	lister := &stubRestaurantLister{}

	rec := performRestaurantsRequest(t, lister, "/v1/restaurants")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
}

func TestListRestaurants_BackendFaultIsServiceUnavailable(t *testing.T) {
	lister := &stubRestaurantLister{err: apperrors.NewBackendUnavailableError("failed to list restaurants", nil)}

	rec := performRestaurantsRequest(t, lister, "/v1/restaurants")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
