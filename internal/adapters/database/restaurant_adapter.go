package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/domain/repositories"
	"github.com/munchhq/munch-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

// RestaurantAdapter implements RestaurantRepository against PostgreSQL
type RestaurantAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRestaurantAdapter creates a new restaurant adapter
func NewRestaurantAdapter(client *postgres.Client) repositories.RestaurantRepository {
	return &RestaurantAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves restaurants matching the compiled predicates
func (a *RestaurantAdapter) List(ctx context.Context, q repositories.RestaurantQuery) ([]*entities.Restaurant, error) {
	ds := a.db.Select(
		goqu.I("r.id"),
		goqu.I("r.name"),
		goqu.I("r.address"),
		goqu.I("r.city"),
		goqu.I("r.province"),
		goqu.I("r.postal_code"),
		goqu.I("r.lat"),
		goqu.I("r.lng"),
		goqu.I("r.price_range"),
		goqu.I("r.cuisine_tags"),
		goqu.I("r.rating"),
		goqu.I("r.reviews_count"),
		goqu.I("r.pickup_only"),
	).
		From(goqu.T("restaurant").As("r")).
		Where(translatePredicates(q.Predicates)...).
		Order(
			goqu.I("r.rating").Desc().NullsLast(),
			goqu.I("r.reviews_count").Desc(),
		).
		Limit(uint(q.Limit))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build restaurant query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewBackendUnavailableError("failed to list restaurants", err)
	}
	defer rows.Close()

	var restaurants []*entities.Restaurant
	for rows.Next() {
		restaurant := &entities.Restaurant{}
		var (
			postalCode sql.NullString
			priceRange sql.NullString
			rating     sql.NullFloat64
		)

		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.City,
			&restaurant.Province,
			&postalCode,
			&restaurant.Lat,
			&restaurant.Lng,
			&priceRange,
			pq.Array(&restaurant.CuisineTags),
			&rating,
			&restaurant.ReviewsCount,
			&restaurant.PickupOnly,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan restaurant", err)
		}

		if postalCode.Valid {
			restaurant.PostalCode = &postalCode.String
		}
		if priceRange.Valid {
			pr := entities.PriceRange(priceRange.String)
			restaurant.PriceRange = &pr
		}
		if rating.Valid {
			restaurant.Rating = &rating.Float64
		}

		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewBackendUnavailableError("error iterating restaurants", err)
	}

	return restaurants, nil
}
