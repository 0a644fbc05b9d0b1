package database

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/munchhq/munch-backend/internal/domain/repositories"
)

// translatePredicates maps the compiler's typed predicates onto SQL
// expressions. The restaurant relation is aliased "r" in every query that
// carries these predicates. Validation already happened in the compiler; a
// predicate that reaches this point is well formed by construction.
func translatePredicates(predicates []repositories.Predicate) []goqu.Expression {
	exprs := make([]goqu.Expression, 0, len(predicates))
	for _, p := range predicates {
		switch p := p.(type) {
		case repositories.CityPrefix:
			exprs = append(exprs, goqu.I("r.city").ILike(p.Prefix+"%"))
		case repositories.CuisineOverlap:
			exprs = append(exprs, goqu.L("r.cuisine_tags && ?", pq.Array(p.Tags)))
		case repositories.PriceEquals:
			exprs = append(exprs, goqu.I("r.price_range").Eq(string(p.Bucket)))
		case repositories.MinRating:
			// NULL ratings are excluded by SQL comparison semantics.
			exprs = append(exprs, goqu.I("r.rating").Gte(p.Min))
		case repositories.BoundingBox:
			exprs = append(exprs,
				goqu.I("r.lat").Between(goqu.Range(p.South, p.North)),
				goqu.I("r.lng").Between(goqu.Range(p.West, p.East)),
			)
		}
	}
	return exprs
}
