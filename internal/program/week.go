package program

import (
	"fmt"
	"time"
)

// wrapWeek is the bucket for days before the first Monday of the year; they
// belong to the tail of the previous year's last week.
const wrapWeek = 52

// AnchorMonday returns the first Monday on or after jan1.
func AnchorMonday(jan1 time.Time) time.Time {
	jan1 = Midnight(jan1)
	offset := (int(time.Monday) - int(jan1.Weekday()) + 7) % 7
	return jan1.AddDate(0, 0, offset)
}

// WeekOf returns the week bucket number of date. Days before the anchor
// Monday are week 52, the anchor Monday is week 1, and later days are the
// whole-day distance from it divided by seven, rounded up.
func WeekOf(jan1, date time.Time) int {
	diff := civilDay(date) - civilDay(AnchorMonday(jan1))
	switch {
	case diff < 0:
		return wrapWeek
	case diff == 0:
		return 1
	default:
		return (diff + 6) / 7
	}
}

// WeekLabel returns the bucket key for date, e.g. "week3".
func WeekLabel(jan1, date time.Time) string {
	return fmt.Sprintf("week%d", WeekOf(jan1, date))
}
