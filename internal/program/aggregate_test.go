package program

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

func TestDenominator(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    int
	}{
		{time.Sunday, 13},
		{time.Monday, 14},
		{time.Tuesday, 14},
		{time.Wednesday, 15},
		{time.Thursday, 14},
		{time.Friday, 15},
		{time.Saturday, 14},
	}
	for _, tt := range tests {
		t.Run(tt.weekday.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Denominator(tt.weekday))
		})
	}
}

func TestApplicable(t *testing.T) {
	assert.True(t, Applicable(types.Fasting, time.Wednesday))
	assert.True(t, Applicable(types.Fasting, time.Friday))
	assert.False(t, Applicable(types.Fasting, time.Monday))
	assert.False(t, Applicable(types.Fasting, time.Sunday))
	assert.True(t, Applicable(types.Exercise, time.Sunday))
	assert.False(t, Applicable(types.DisciplineKey(99), time.Monday))
}

func TestScore(t *testing.T) {
	state := DefaultState(anchor2026)
	day := state.Days[2] // Wednesday, Jan 7
	day.Results[types.Sleep] = true
	day.Results[types.Fasting] = true
	day.Results[types.Reading] = true

	got := Score(day)
	assert.Equal(t, 3, got.Completed)
	assert.Equal(t, 15, got.OutOf)
	assert.Equal(t, day.Date, got.Date)
	assert.Equal(t, 3, CompletedCount(day))
}

func TestSummaries(t *testing.T) {
	state := DefaultState(anchor2026)
	state.Days[6].Results[types.Sleep] = true // Sunday, Jan 11

	got := Summaries(&state)
	assert.Len(t, got, types.ProgramLength)
	assert.Equal(t, 1, got[6].Completed)
	assert.Equal(t, 13, got[6].OutOf)
	assert.Equal(t, 0, got[0].Completed)
	assert.Equal(t, 14, got[0].OutOf)
}

func TestWeekTotals(t *testing.T) {
	state := DefaultState(anchor2026)
	state.Days[0].Results[types.Exercise] = true  // week1
	state.Days[2].Results[types.Exercise] = true  // week1
	state.Days[9].Results[types.Exercise] = true  // week2
	state.Days[10].Results[types.ColdShower] = true

	totals := WeekTotals(&state.Days, types.Exercise)
	assert.Equal(t, map[string]int{"week1": 2, "week2": 1}, totals)
	assert.Empty(t, WeekTotals(&state.Days, types.DisciplineKey(-1)))
}

func TestWeeklyTotalFollowsCursor(t *testing.T) {
	state := DefaultState(anchor2026)
	for _, i := range []int{0, 1, 3} {
		state.Days[i].Results[types.Exercise] = true
	}
	state.Days[9].Results[types.Exercise] = true

	state.CurrentIndex = 4
	assert.Equal(t, 3, WeeklyTotal(&state, types.Exercise))
	assert.Equal(t, WeeklySufficient, ClassifyWeekly(WeeklyTotal(&state, types.Exercise)))

	state.CurrentIndex = 12
	assert.Equal(t, 1, WeeklyTotal(&state, types.Exercise))
	assert.Equal(t, WeeklyInsufficient, ClassifyWeekly(WeeklyTotal(&state, types.Exercise)))

	// Recomputed on every call, never cached.
	state.Days[1].Results[types.Exercise] = false
	state.CurrentIndex = 4
	assert.Equal(t, 2, WeeklyTotal(&state, types.Exercise))
}

func TestClassifyWeekly(t *testing.T) {
	assert.Equal(t, WeeklyInsufficient, ClassifyWeekly(0))
	assert.Equal(t, WeeklyInsufficient, ClassifyWeekly(2))
	assert.Equal(t, WeeklySufficient, ClassifyWeekly(3))
	assert.Equal(t, WeeklySufficient, ClassifyWeekly(7))
}
