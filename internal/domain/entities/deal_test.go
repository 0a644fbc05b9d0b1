package entities

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func lunchDeal() Deal {
	return Deal{
		ID:           "d1",
		RestaurantID: "r1",
		Title:        "Lunch special",
		DiscountType: DiscountPercent,
		StartTime:    "11:00",
		EndTime:      "14:00",
		DaysOfWeek:   []int{1, 2, 3, 4, 5},
		IsActive:     true,
	}
}

func at(weekday int, timeOfDay string) LocalCivil {
	return LocalCivil{Date: "2025-09-10", Weekday: weekday, TimeOfDay: timeOfDay}
}

func TestIsLiveAt_WeekdayMembership(t *testing.T) {
	for day := 1; day <= 7; day++ {
		t.Run(fmt.Sprintf("deal on day %d", day), func(t *testing.T) {
			d := lunchDeal()
			d.DaysOfWeek = []int{day}

			for probe := 1; probe <= 7; probe++ {
				got := d.IsLiveAt(at(probe, "12:00"), false)
				assert.Equal(t, probe == day, got, "probe weekday %d against deal weekday %d", probe, day)
			}
		})
	}
}

func TestIsLiveAt_TimeWindowBoundariesInclusive(t *testing.T) {
	d := lunchDeal()

	assert.True(t, d.IsLiveAt(at(3, "11:00"), false), "start boundary is inclusive")
	assert.True(t, d.IsLiveAt(at(3, "14:00"), false), "end boundary is inclusive")
	assert.False(t, d.IsLiveAt(at(3, "10:59"), false))
	assert.False(t, d.IsLiveAt(at(3, "14:01"), false))
}

func TestIsLiveAt_InactiveNeverLive(t *testing.T) {
	d := lunchDeal()
	d.IsActive = false

	assert.False(t, d.IsLiveAt(at(3, "12:00"), false))
	assert.False(t, d.IsLiveAt(at(3, "12:00"), true), "debug override does not resurrect inactive deals")
}

func TestIsLiveAt_ValidityDateRange(t *testing.T) {
	d := lunchDeal()
	d.ValidFrom = strPtr("2025-09-01")
	d.ValidTo = strPtr("2025-09-30")

	inside := LocalCivil{Date: "2025-09-10", Weekday: 3, TimeOfDay: "12:00"}
	onStart := LocalCivil{Date: "2025-09-01", Weekday: 1, TimeOfDay: "12:00"}
	onEnd := LocalCivil{Date: "2025-09-30", Weekday: 2, TimeOfDay: "12:00"}
	before := LocalCivil{Date: "2025-08-31", Weekday: 7, TimeOfDay: "12:00"}
	after := LocalCivil{Date: "2025-10-01", Weekday: 3, TimeOfDay: "12:00"}

	assert.True(t, d.IsLiveAt(inside, false))
	assert.True(t, d.IsLiveAt(onStart, false), "validity start date is inclusive")
	assert.True(t, d.IsLiveAt(onEnd, false), "validity end date is inclusive")
	assert.False(t, d.IsLiveAt(before, false))
	assert.False(t, d.IsLiveAt(after, false))
}

func TestIsLiveAt_OpenEndedValidity(t *testing.T) {
	d := lunchDeal()

	assert.True(t, d.IsLiveAt(at(3, "12:00"), false), "no validity range means always in range")

	d.ValidFrom = strPtr("2025-01-01")
	assert.True(t, d.IsLiveAt(at(3, "12:00"), false), "open-ended validity end")
}

func TestIsLiveAt_IgnoreTimeWindow(t *testing.T) {
	d := lunchDeal()
	d.DaysOfWeek = []int{6, 7}

	// Wrong weekday and outside the window: excluded normally, included
	// under the debug override.
	probe := at(3, "09:00")
	assert.False(t, d.IsLiveAt(probe, false))
	assert.True(t, d.IsLiveAt(probe, true))

	// The override never relaxes the date range.
	d.ValidTo = strPtr("2025-09-01")
	assert.False(t, d.IsLiveAt(probe, true))
}
