package services

import (
	"fmt"
	"time"

	"github.com/munchhq/munch-backend/internal/domain/entities"
	apperrors "github.com/munchhq/munch-backend/pkg/errors"
)

// instantLayouts are the accepted shapes for a caller-supplied instant.
// Offset-less forms are interpreted in the reference zone.
var instantLayouts = []struct {
	layout string
	inZone bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
}

// TimeResolver converts instants into the reference zone's civil calendar.
// The zone is fixed at construction; it is deliberately not the host's local
// zone and never varies per request.
type TimeResolver struct {
	loc   *time.Location
	nowFn func() time.Time
}

// NewTimeResolver creates a resolver for the named IANA zone.
func NewTimeResolver(zone string) (*TimeResolver, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}
	return &TimeResolver{loc: loc, nowFn: time.Now}, nil
}

// Resolve converts the optional ISO-8601 instant raw into the reference
// zone's (date, weekday, time-of-day) triple. An empty raw means the current
// wall-clock instant. A non-empty raw that does not parse is a fatal
// InvalidTimestamp error; there is no silent fallback to now.
func (r *TimeResolver) Resolve(raw string) (entities.LocalCivil, error) {
	instant := r.nowFn()
	if raw != "" {
		parsed, err := r.parseInstant(raw)
		if err != nil {
			return entities.LocalCivil{}, apperrors.NewInvalidTimestampError("now", raw)
		}
		instant = parsed
	}
	return r.toCivil(instant), nil
}

func (r *TimeResolver) parseInstant(raw string) (time.Time, error) {
	var lastErr error
	for _, l := range instantLayouts {
		var t time.Time
		var err error
		if l.inZone {
			t, err = time.ParseInLocation(l.layout, raw, r.loc)
		} else {
			t, err = time.Parse(l.layout, raw)
		}
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// toCivil projects the instant into the reference zone. Go numbers Sunday as
// 0; the canonical contract here is 1=Monday..7=Sunday.
func (r *TimeResolver) toCivil(instant time.Time) entities.LocalCivil {
	local := instant.In(r.loc)
	weekday := int(local.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return entities.LocalCivil{
		Date:      local.Format("2006-01-02"),
		Weekday:   weekday,
		TimeOfDay: local.Format("15:04"),
	}
}
