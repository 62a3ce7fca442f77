package program

import (
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// WeeklyThreshold is the number of days per week a tracked discipline must
// be completed to count as sufficient.
const WeeklyThreshold = 3

// WeeklyClass classifies a weekly total for display.
type WeeklyClass string

// Weekly classifications.
const (
	WeeklySufficient   WeeklyClass = "sufficient"
	WeeklyInsufficient WeeklyClass = "insufficient"
)

// DayScore is a day's completion ratio.
type DayScore struct {
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	OutOf     int       `json:"out_of"`
}

// CompletedCount returns the number of disciplines completed on day.
func CompletedCount(day types.Day) int {
	return day.Results.Completed()
}

// Denominator returns how many disciplines apply on weekday: two fewer on
// Sunday, all of them on Wednesday and Friday (fast days), one fewer on any
// other day.
func Denominator(weekday time.Weekday) int {
	switch weekday {
	case time.Sunday:
		return types.DisciplineCount - 2
	case time.Wednesday, time.Friday:
		return types.DisciplineCount
	default:
		return types.DisciplineCount - 1
	}
}

// Applicable reports whether key can be checked on weekday. Fasting is only
// tracked on Wednesday and Friday.
func Applicable(key types.DisciplineKey, weekday time.Weekday) bool {
	if key == types.Fasting {
		return weekday == time.Wednesday || weekday == time.Friday
	}
	return key.Valid()
}

// Score returns the completion ratio of day.
func Score(day types.Day) DayScore {
	return DayScore{
		Date:      day.Date,
		Completed: CompletedCount(day),
		OutOf:     Denominator(day.Date.Weekday()),
	}
}

// Summaries returns the score of every day, in timeline order.
func Summaries(state *types.ProgramState) []DayScore {
	out := make([]DayScore, len(state.Days))
	for i, d := range state.Days {
		out[i] = Score(d)
	}
	return out
}

// WeekTotals counts, per week bucket, the days with key completed.
func WeekTotals(days *types.Timeline, key types.DisciplineKey) map[string]int {
	totals := make(map[string]int)
	if !key.Valid() {
		return totals
	}
	for _, d := range days {
		if d.Results[key] {
			totals[d.Week]++
		}
	}
	return totals
}

// WeeklyTotal returns how many days in the current day's week bucket have
// key completed. It is recomputed from the whole timeline on every call.
func WeeklyTotal(state *types.ProgramState, key types.DisciplineKey) int {
	return WeekTotals(&state.Days, key)[state.Current().Week]
}

// ClassifyWeekly returns WeeklySufficient when total reaches WeeklyThreshold.
func ClassifyWeekly(total int) WeeklyClass {
	if total < WeeklyThreshold {
		return WeeklyInsufficient
	}
	return WeeklySufficient
}
