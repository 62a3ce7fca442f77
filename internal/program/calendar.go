package program

import "time"

// Midnight returns the start of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// civilDay returns the number of days between 1970-01-01 and t's calendar
// date. It ignores time of day and zone offsets, so DST hours never round.
func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// sameDay reports whether a and b fall on the same calendar day in the
// location of a.
func sameDay(a, b time.Time) bool {
	return civilDay(a) == civilDay(b.In(a.Location()))
}

// dayKey formats t's calendar date for map lookups.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
