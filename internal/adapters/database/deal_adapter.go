package database

import (
	"database/sql"

	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/domain/repositories"
	"github.com/munchhq/munch-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

// DealAdapter implements DealRepository against PostgreSQL
type DealAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDealAdapter creates a new deal adapter
func NewDealAdapter(client *postgres.Client) repositories.DealRepository {
	return &DealAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// FindLive evaluates the liveness invariant and the compiled predicate set in
// a single joined query. Stored days_of_week uses the 1=Mon..7=Sun
// convention; the compiler's weekday matches it directly.
func (a *DealAdapter) FindLive(ctx context.Context, q repositories.DealQuery) ([]*entities.DealWithRestaurant, error) {
	conds := []goqu.Expression{
		goqu.I("d.is_active").IsTrue(),
		goqu.Or(goqu.I("d.valid_from").IsNull(), goqu.I("d.valid_from").Lte(q.At.Date)),
		goqu.Or(goqu.I("d.valid_to").IsNull(), goqu.I("d.valid_to").Gte(q.At.Date)),
	}

	// Weekday and time-of-day checks are skippable only under the explicit
	// debug override; the active flag and date range always apply.
	if !q.IgnoreTimeWindow {
		conds = append(conds,
			goqu.L("? = ANY(d.days_of_week)", q.At.Weekday),
			goqu.I("d.start_time").Lte(q.At.TimeOfDay),
			goqu.I("d.end_time").Gte(q.At.TimeOfDay),
		)
	}

	conds = append(conds, translatePredicates(q.Predicates)...)

	ds := a.db.Select(
		goqu.I("d.id").As("deal_id"),
		goqu.I("d.title"),
		goqu.I("d.description"),
		goqu.I("d.discount_type"),
		goqu.I("d.discount_value"),
		goqu.I("d.start_time"),
		goqu.I("d.end_time"),
		goqu.I("d.days_of_week"),
		goqu.I("r.id").As("restaurant_id"),
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
		From(goqu.T("deal").As("d")).
		Join(goqu.T("restaurant").As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("d.restaurant_id")))).
		Where(conds...).
		Order(
			goqu.I("r.rating").Desc().NullsLast(),
			goqu.I("r.reviews_count").Desc(),
			goqu.I("d.start_time").Asc(),
		).
		Limit(uint(q.Limit))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build live deals query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewBackendUnavailableError("failed to query live deals", err)
	}
	defer rows.Close()

	var deals []*entities.DealWithRestaurant
	for rows.Next() {
		record, err := scanDealWithRestaurant(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan live deal", err)
		}
		deals = append(deals, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewBackendUnavailableError("error iterating live deals", err)
	}

	return deals, nil
}

func scanDealWithRestaurant(rows *sql.Rows) (*entities.DealWithRestaurant, error) {
	record := &entities.DealWithRestaurant{}
	var (
		description   sql.NullString
		discountValue sql.NullFloat64
		daysOfWeek    pq.Int64Array
		postalCode    sql.NullString
		priceRange    sql.NullString
		rating        sql.NullFloat64
	)

	err := rows.Scan(
		&record.DealID,
		&record.Title,
		&description,
		&record.DiscountType,
		&discountValue,
		&record.StartTime,
		&record.EndTime,
		&daysOfWeek,
		&record.RestaurantID,
		&record.Name,
		&record.Address,
		&record.City,
		&record.Province,
		&postalCode,
		&record.Lat,
		&record.Lng,
		&priceRange,
		pq.Array(&record.CuisineTags),
		&rating,
		&record.ReviewsCount,
		&record.PickupOnly,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		record.Description = &description.String
	}
	if discountValue.Valid {
		record.DiscountValue = &discountValue.Float64
	}
	record.DaysOfWeek = make([]int, len(daysOfWeek))
	for i, dow := range daysOfWeek {
		record.DaysOfWeek[i] = int(dow)
	}
	if postalCode.Valid {
		record.PostalCode = &postalCode.String
	}
	if priceRange.Valid {
		pr := entities.PriceRange(priceRange.String)
		record.PriceRange = &pr
	}
	if rating.Valid {
		record.Rating = &rating.Float64
	}

	return record, nil
}
