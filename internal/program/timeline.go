package program

import (
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// Jan1 returns January 1 of t's year in t's location.
func Jan1(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// GenerateTimeline builds the program days starting at start. Each day gets
// its own all-false results record.
func GenerateTimeline(start, jan1 time.Time) types.Timeline {
	start = Midnight(start)
	var days types.Timeline
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = types.Day{
			Date:    date,
			Week:    WeekLabel(jan1, date),
			Results: types.NewResults(),
		}
	}
	return days
}

// DefaultState returns the canonical state for the program anchored at
// anchor: cursor on day one and every result unchecked.
func DefaultState(anchor time.Time) types.ProgramState {
	start := StartDate(anchor)
	return types.ProgramState{
		CurrentIndex: 0,
		StartDate:    start,
		Days:         GenerateTimeline(start, Jan1(anchor)),
	}
}
