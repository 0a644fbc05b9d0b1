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

type stubDealFinder struct {
	gotParams services.DealQueryParams
	deals     []*entities.DealWithRestaurant
	err       error
}

func (s *stubDealFinder) DealsToday(_ context.Context, params services.DealQueryParams) ([]*entities.DealWithRestaurant, error) {
	s.gotParams = params
	return s.deals, s.err
}

func sampleDeal() *entities.DealWithRestaurant {
	value := 20.0
	rating := 4.8
	return &entities.DealWithRestaurant{
		DealID:        "d1",
		Title:         "Lunch combo",
		DiscountType:  entities.DiscountPercent,
		DiscountValue: &value,
		StartTime:     "11:00",
		EndTime:       "14:00",
		DaysOfWeek:    []int{1, 2, 3, 4, 5},
		RestaurantID:  "r1",
		Name:          "Saffron House",
		Address:       "88 Bronte Rd",
		City:          "Milton, ON",
		Province:      "ON",
		Lat:           43.51,
		Lng:           -79.88,
		CuisineTags:   []string{"Indian"},
		Rating:        &rating,
		ReviewsCount:  120,
	}
}

func performDealsRequest(t *testing.T, finder handlers.DealFinder, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := handlers.NewDealHandler(finder)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.DealsToday(rec, req)
	return rec
}

func TestDealsToday_ReturnsItemsAndCount(t *testing.T) {
	finder := &stubDealFinder{deals: []*entities.DealWithRestaurant{sampleDeal()}}

	rec := performDealsRequest(t, finder, "/v1/deals/today")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Items []map[string]interface{} `json:"items"`
		Count int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "d1", body.Items[0]["deal_id"])
	assert.Equal(t, "Saffron House", body.Items[0]["name"])
}

func TestDealsToday_EmptyResultIsAnEmptyArray(t *testing.T) {
	finder := &stubDealFinder{}

	rec := performDealsRequest(t, finder, "/v1/deals/today?city=Nowhere")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
}

func TestDealsToday_ForwardsQueryParams(t *testing.T) {
	finder := &stubDealFinder{}

	performDealsRequest(t, finder,
		"/v1/deals/today?city=Milton&cuisine=Tacos,Mexican&price=%24%24&minRating=4&bbox=43,-80,44,-79&now=2025-09-10T12:00:00Z&limit=10&debugIgnoreTime=true")

	assert.Equal(t, services.DealQueryParams{
		City:            "Milton",
		Cuisine:         "Tacos,Mexican",
		Price:           "$$",
		MinRating:       "4",
		BBox:            "43,-80,44,-79",
		Now:             "2025-09-10T12:00:00Z",
		Limit:           "10",
		DebugIgnoreTime: "true",
	}, finder.gotParams)
}

func TestDealsToday_InvalidTimestampIsBadRequest(t *testing.T) {
	finder := &stubDealFinder{err: apperrors.NewInvalidTimestampError("now", "not-a-time")}

	rec := performDealsRequest(t, finder, "/v1/deals/today?now=not-a-time")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.ErrorTypeInvalidTimestamp), body["error"])
}

func TestDealsToday_BackendFaultIsServiceUnavailable(t *testing.T) {
	finder := &stubDealFinder{err: apperrors.NewBackendUnavailableError("failed to query live deals", nil)}

	rec := performDealsRequest(t, finder, "/v1/deals/today")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.ErrorTypeBackendUnavailable), body["error"])
}

func TestDealsToday_UnknownErrorIsInternal(t *testing.T) {
	finder := &stubDealFinder{err: assert.AnError}

	rec := performDealsRequest(t, finder, "/v1/deals/today")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.ErrorTypeInternal), body["error"])
	assert.Equal(t, "internal server error", body["message"], "internal details must not leak")
}
