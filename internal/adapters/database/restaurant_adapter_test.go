package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/domain/repositories"
	"github.com/munchhq/munch-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

var restaurantColumns = []string{
	"id", "name", "address", "city", "province", "postal_code",
	"lat", "lng", "price_range", "cuisine_tags", "rating", "reviews_count", "pickup_only",
}

func setupRestaurantAdapter(t *testing.T) (repositories.RestaurantRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRestaurantAdapter(postgres.NewClientFromDB(db)), mock
}

func TestRestaurantList_ScansRecords(t *testing.T) {
	adapter, mock := setupRestaurantAdapter(t)

	rows := sqlmock.NewRows(restaurantColumns).
		AddRow(
			"r1", "Saffron House", "88 Bronte Rd", "Milton, ON", "ON", "L9T 0A1",
			43.51, -79.88, "$$", []byte(`{"Indian","Curry"}`), 4.8, 120, false,
		).
		AddRow(
			"r2", "Slice Society", "40 Queen St W", "Toronto, ON", "ON", nil,
			43.65, -79.38, nil, []byte(`{"Pizza"}`), nil, 0, true,
		)

	mock.ExpectQuery("SELECT .+ FROM .*restaurant").WillReturnRows(rows)

	restaurants, err := adapter.List(context.Background(), repositories.RestaurantQuery{Limit: 50})
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	first := restaurants[0]
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, []string{"Indian", "Curry"}, first.CuisineTags)
	require.NotNil(t, first.PriceRange)
	assert.Equal(t, entities.PriceModerate, *first.PriceRange)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.8, *first.Rating)

	second := restaurants[1]
	assert.Nil(t, second.PostalCode)
	assert.Nil(t, second.PriceRange)
	assert.Nil(t, second.Rating)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantList_TranslatesPredicates(t *testing.T) {
	adapter, mock := setupRestaurantAdapter(t)

	q := repositories.RestaurantQuery{
		Predicates: []repositories.Predicate{
			repositories.CityPrefix{Prefix: "Toronto"},
			repositories.CuisineOverlap{Tags: []string{"Pizza"}},
			repositories.BoundingBox{South: 43.0, West: -80.0, North: 44.0, East: -79.0},
		},
		Limit: 50,
	}

	mock.ExpectQuery(`ILIKE.+Toronto%.+cuisine_tags.+lat.+BETWEEN.+lng.+BETWEEN`).
		WillReturnRows(sqlmock.NewRows(restaurantColumns))

	_, err := adapter.List(context.Background(), q)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantList_BackendFault(t *testing.T) {
	adapter, mock := setupRestaurantAdapter(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := adapter.List(context.Background(), repositories.RestaurantQuery{Limit: 50})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeBackendUnavailable, apperrors.TypeOf(err))
}
