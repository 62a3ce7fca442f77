package types

import (
	"errors"
	"time"
)

// ProgramLength is the fixed number of days in a program.
const ProgramLength = 90

// LastIndex is the highest valid timeline index.
const LastIndex = ProgramLength - 1

// Program state errors.
var (
	ErrFutureDay    = errors.New("day is in the future")
	ErrInvalidIndex = errors.New("index out of range")
)

// Day is one calendar day of the program.
type Day struct {
	Date    time.Time     // Local midnight of the day.
	Week    string        // Week bucket label, "week<N>".
	Results ResultsRecord // Checklist state; the only mutable field.
}

// Timeline is the ordered program days. Its length is fixed by the type.
type Timeline [ProgramLength]Day

// First returns the first day.
func (t *Timeline) First() Day { return t[0] }

// Last returns the last day.
func (t *Timeline) Last() Day { return t[LastIndex] }

// ProgramState is the whole persisted program: the navigation cursor, the
// start date, and the timeline.
type ProgramState struct {
	CurrentIndex int
	StartDate    time.Time
	Days         Timeline
}

// Current returns a pointer to the day under the cursor.
func (s *ProgramState) Current() *Day {
	return &s.Days[s.CurrentIndex]
}

// ValidIndex reports whether i addresses a day of the timeline.
func ValidIndex(i int) bool {
	return i >= 0 && i < ProgramLength
}
