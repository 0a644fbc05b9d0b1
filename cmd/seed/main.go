package main

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/munchhq/munch-backend/internal/application/services"
	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/infrastructure/clients/postgres"
	"github.com/munchhq/munch-backend/internal/infrastructure/observability"
	"github.com/munchhq/munch-backend/pkg/config"
)

type seedRestaurant struct {
	restaurant entities.Restaurant
	deals      []entities.Deal
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("munch-seed", cfg.App.Environment)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	resolver, err := services.NewTimeResolver(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid reference time zone")
	}

	db := goqu.New("postgres", pgClient.DB())

	seeds := sampleData()
	live := 0
	total := 0

	civil, err := resolver.Resolve("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve current instant")
	}

	for _, seed := range seeds {
		r := seed.restaurant
		record := goqu.Record{
			"id":            r.ID,
			"name":          r.Name,
			"address":       r.Address,
			"city":          r.City,
			"province":      r.Province,
			"postal_code":   nullString(r.PostalCode),
			"lat":           r.Lat,
			"lng":           r.Lng,
			"price_range":   nullPriceRange(r.PriceRange),
			"cuisine_tags":  pq.Array(r.CuisineTags),
			"rating":        nullFloat(r.Rating),
			"reviews_count": r.ReviewsCount,
			"pickup_only":   r.PickupOnly,
		}
		query, args, err := db.Insert("restaurant").Rows(record).ToSQL()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build restaurant insert")
		}
		if _, err := pgClient.DB().Exec(query, args...); err != nil {
			log.Fatal().Err(err).Str("restaurant", r.Name).Msg("failed to insert restaurant")
		}

		for _, d := range seed.deals {
			record := goqu.Record{
				"id":             d.ID,
				"restaurant_id":  r.ID,
				"title":          d.Title,
				"description":    nullString(d.Description),
				"discount_type":  string(d.DiscountType),
				"discount_value": nullFloat(d.DiscountValue),
				"start_time":     d.StartTime,
				"end_time":       d.EndTime,
				"days_of_week":   pq.Array(d.DaysOfWeek),
				"valid_from":     nullString(d.ValidFrom),
				"valid_to":       nullString(d.ValidTo),
				"is_active":      d.IsActive,
			}
			query, args, err := db.Insert("deal").Rows(record).ToSQL()
			if err != nil {
				log.Fatal().Err(err).Msg("failed to build deal insert")
			}
			if _, err := pgClient.DB().Exec(query, args...); err != nil {
				log.Fatal().Err(err).Str("deal", d.Title).Msg("failed to insert deal")
			}
			total++
			if d.IsLiveAt(civil, false) {
				live++
			}
		}
	}

	log.Info().
		Int("restaurants", len(seeds)).
		Int("deals", total).
		Int("live_now", live).
		Str("local_date", civil.Date).
		Str("local_time", civil.TimeOfDay).
		Msg("seed complete")
}

func sampleData() []seedRestaurant {
	allWeek := []int{1, 2, 3, 4, 5, 6, 7}
	weekdays := []int{1, 2, 3, 4, 5}

	return []seedRestaurant{
		{
			restaurant: restaurant("Taco Norte", "221 Main St E", "Milton, ON", "$", []string{"Mexican", "Tacos"}, ptrF(4.6), 210),
			deals: []entities.Deal{
				deal("Taco Tuesday 2-for-1", entities.DiscountBOGO, nil, "11:00", "21:00", []int{2}),
				deal("Lunch combo 20% off", entities.DiscountPercent, ptrF(20), "11:00", "14:00", weekdays),
			},
		},
		{
			restaurant: restaurant("Saffron House", "88 Bronte Rd", "Milton, ON", "$$", []string{"Indian"}, ptrF(4.8), 120),
			deals: []entities.Deal{
				deal("Dinner thali $5 off", entities.DiscountFixed, ptrF(5), "17:00", "21:30", allWeek),
			},
		},
		{
			restaurant: restaurant("Slice Society", "14 Ontario St", "Toronto, ON", "$$", []string{"Pizza", "Italian"}, ptrF(4.3), 560),
			deals: []entities.Deal{
				deal("Happy hour slices", entities.DiscountPercent, ptrF(30), "15:00", "18:00", weekdays),
				deal("Weekend family special", entities.DiscountOther, nil, "12:00", "20:00", []int{6, 7}),
			},
		},
	}
}

func restaurant(name, address, city string, price entities.PriceRange, tags []string, rating *float64, reviews int) entities.Restaurant {
	return entities.Restaurant{
		ID:           uuid.NewString(),
		Name:         name,
		Address:      address,
		City:         city,
		Province:     "ON",
		Lat:          43.51,
		Lng:          -79.88,
		PriceRange:   &price,
		CuisineTags:  tags,
		Rating:       rating,
		ReviewsCount: reviews,
	}
}

func deal(title string, kind entities.DiscountType, value *float64, start, end string, days []int) entities.Deal {
	return entities.Deal{
		ID:            uuid.NewString(),
		Title:         title,
		DiscountType:  kind,
		DiscountValue: value,
		StartTime:     start,
		EndTime:       end,
		DaysOfWeek:    days,
		IsActive:      true,
	}
}

func ptrF(v float64) *float64 {
	return &v
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullPriceRange(p *entities.PriceRange) interface{} {
	if p == nil {
		return nil
	}
	return string(*p)
}
