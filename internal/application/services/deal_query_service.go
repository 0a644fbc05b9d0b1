package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	"github.com/munchhq/munch-backend/internal/domain/repositories"
)

// maxRating is the top of the rating scale; minRating filters clamp into
// [0, maxRating].
const maxRating = 5.0

// DealQueryParams are the raw, string-typed query parameters of the
// deals/today endpoint, before validation.
type DealQueryParams struct {
	City            string
	Cuisine         string
	Price           string
	MinRating       string
	BBox            string
	Now             string
	Limit           string
	DebugIgnoreTime string
}

// DealQueryService is the deal-matching engine's entry point: it resolves the
// instant, compiles the filter and hands the compiled query to storage. It is
// stateless; every call is an independent computation.
type DealQueryService struct {
	repo         repositories.DealRepository
	resolver     *TimeResolver
	defaultLimit int
	maxLimit     int
}

// NewDealQueryService creates a new deal query service
func NewDealQueryService(repo repositories.DealRepository, resolver *TimeResolver, defaultLimit, maxLimit int) *DealQueryService {
	return &DealQueryService{
		repo:         repo,
		resolver:     resolver,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// DealsToday returns the deals live at the requested instant, filtered,
// ranked and truncated. The only fatal parameter error is an unparseable
// instant; every other malformed parameter is treated as absent.
func (s *DealQueryService) DealsToday(ctx context.Context, params DealQueryParams) ([]*entities.DealWithRestaurant, error) {
	civil, err := s.resolver.Resolve(params.Now)
	if err != nil {
		return nil, err
	}

	query := s.Compile(params, civil)

	log.Debug().
		Str("date", civil.Date).
		Int("weekday", civil.Weekday).
		Str("time", civil.TimeOfDay).
		Int("predicates", len(query.Predicates)).
		Bool("ignore_time", query.IgnoreTimeWindow).
		Msg("compiled deal query")

	return s.repo.FindLive(ctx, query)
}

// Compile turns raw parameters plus a resolved civil instant into a fully
// specified DealQuery. Malformed optional values are dropped, never errors.
func (s *DealQueryService) Compile(params DealQueryParams, civil entities.LocalCivil) repositories.DealQuery {
	predicates := compileRestaurantPredicates(params.City, params.Cuisine, params.BBox)

	if entities.ValidPriceRange(strings.TrimSpace(params.Price)) {
		predicates = append(predicates, repositories.PriceEquals{
			Bucket: entities.PriceRange(strings.TrimSpace(params.Price)),
		})
	}

	if min, ok := parseMinRating(params.MinRating); ok {
		predicates = append(predicates, repositories.MinRating{Min: min})
	}

	return repositories.DealQuery{
		At:               civil,
		IgnoreTimeWindow: params.DebugIgnoreTime == "true",
		Predicates:       predicates,
		Limit:            clampLimit(params.Limit, s.defaultLimit, s.maxLimit),
	}
}

// compileRestaurantPredicates handles the parameters shared between the deal
// and restaurant listings: city prefix, cuisine overlap and bounding box.
func compileRestaurantPredicates(city, cuisine, bbox string) []repositories.Predicate {
	var predicates []repositories.Predicate

	if c := strings.TrimSpace(city); c != "" {
		predicates = append(predicates, repositories.CityPrefix{Prefix: c})
	}

	if tags := splitCuisine(cuisine); len(tags) > 0 {
		predicates = append(predicates, repositories.CuisineOverlap{Tags: tags})
	}

	if box, ok := parseBBox(bbox); ok {
		predicates = append(predicates, box)
	}

	return predicates
}

// splitCuisine splits a comma-separated cuisine list, trimming entries and
// dropping empties.
func splitCuisine(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseBBox parses "south,west,north,east". The box is rejected unless all
// four parts are finite numbers with south < north and west < east; a
// rejected box imposes no restriction.
func parseBBox(raw string) (repositories.BoundingBox, bool) {
	if raw == "" {
		return repositories.BoundingBox{}, false
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return repositories.BoundingBox{}, false
	}
	nums := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return repositories.BoundingBox{}, false
		}
		nums[i] = v
	}
	box := repositories.BoundingBox{South: nums[0], West: nums[1], North: nums[2], East: nums[3]}
	if !(box.South < box.North) || !(box.West < box.East) {
		return repositories.BoundingBox{}, false
	}
	return box, true
}

// parseMinRating parses a minimum rating, clamped into [0, maxRating].
// Non-numeric or non-finite values impose no restriction.
func parseMinRating(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 {
		v = 0
	}
	if v > maxRating {
		v = maxRating
	}
	return v, true
}

// clampLimit parses the limit parameter, falling back to def and clamping
// into [1, max].
func clampLimit(raw string, def, max int) int {
	limit := def
	if raw != "" {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}
