package program

import "fmt"

// NoReading is returned by ReadingFor for days without an assigned chapter.
const NoReading = "No reading"

// gospels lists the books read in order with their chapter counts.
var gospels = []struct {
	book     string
	chapters int
}{
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
}

// readings is the flat chapter list, one entry per program day from day one.
var readings = buildReadings()

func buildReadings() []string {
	var out []string
	for _, g := range gospels {
		for ch := 1; ch <= g.chapters; ch++ {
			out = append(out, fmt.Sprintf("%s Chapter %d", g.book, ch))
		}
	}
	return out
}

// ReadingFor returns the reading for the zero-based day index, or NoReading
// when the index is outside the plan.
func ReadingFor(dayIndex int) string {
	if dayIndex < 0 || dayIndex >= len(readings) {
		return NoReading
	}
	return readings[dayIndex]
}

// Readings returns a copy of the whole plan.
func Readings() []string {
	out := make([]string, len(readings))
	copy(out, readings)
	return out
}
