package program

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// Tracker holds the program state for one session. Every mutation is saved
// before it returns; a mutation whose save fails is undone so memory and
// store never disagree.
type Tracker struct {
	state   types.ProgramState
	persist *Persistence
	now     func() time.Time
}

// Status is the view of the current day.
type Status struct {
	Index       int
	DayNumber   int
	Date        time.Time
	Week        string
	Results     types.ResultsRecord
	Applicable  []types.DisciplineKey
	Score       DayScore
	Reading     string
	Exercise    int
	ExerciseFit WeeklyClass
}

// Open loads the persisted state for the program described by defaults.
func Open(persist *Persistence, defaults types.ProgramState) *Tracker {
	return &Tracker{
		state:   persist.Load(defaults),
		persist: persist,
		now:     persist.now,
	}
}

// State returns a copy of the current program state.
func (t *Tracker) State() types.ProgramState {
	return t.state
}

// Toggle flips key on the current day and saves. Returns the new value.
func (t *Tracker) Toggle(key types.DisciplineKey) (bool, error) {
	day := t.state.Current()
	if err := t.checkEditable(day, key); err != nil {
		return false, err
	}
	return t.set(day, key, !day.Results[key])
}

// Set marks key on the current day as value and saves.
func (t *Tracker) Set(key types.DisciplineKey, value bool) error {
	day := t.state.Current()
	if err := t.checkEditable(day, key); err != nil {
		return err
	}
	_, err := t.set(day, key, value)
	return err
}

func (t *Tracker) set(day *types.Day, key types.DisciplineKey, value bool) (bool, error) {
	prev := day.Results[key]
	day.Results[key] = value
	if err := t.persist.Save(&t.state); err != nil {
		day.Results[key] = prev
		return prev, err
	}
	return value, nil
}

// checkEditable rejects unknown keys, keys that do not apply on the day's
// weekday, and days after today.
func (t *Tracker) checkEditable(day *types.Day, key types.DisciplineKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %d", types.ErrUnknownDiscipline, int(key))
	}
	if !Applicable(key, day.Date.Weekday()) {
		return fmt.Errorf("%s on %s: %w", key, day.Date.Weekday(), types.ErrNotApplicable)
	}
	if civilDay(day.Date) > civilDay(t.now().In(day.Date.Location())) {
		return fmt.Errorf("%s: %w", dayKey(day.Date), types.ErrFutureDay)
	}
	return nil
}

// GoTo moves the cursor to the day resolved from query and saves. Returns
// the new index.
func (t *Tracker) GoTo(query time.Time) (int, error) {
	prev := t.state.CurrentIndex
	t.state.CurrentIndex = ResolveIndex(&t.state.Days, query, prev)
	if err := t.persist.Save(&t.state); err != nil {
		t.state.CurrentIndex = prev
		return prev, err
	}
	return t.state.CurrentIndex, nil
}

// GoToIndex moves the cursor to the zero-based index i and saves. Unlike
// GoTo it does not clamp.
func (t *Tracker) GoToIndex(i int) error {
	if !types.ValidIndex(i) {
		return fmt.Errorf("%w: %d", types.ErrInvalidIndex, i)
	}
	prev := t.state.CurrentIndex
	t.state.CurrentIndex = i
	if err := t.persist.Save(&t.state); err != nil {
		t.state.CurrentIndex = prev
		return err
	}
	return nil
}

// GoToToday moves the cursor to today's calendar day, clamped to the
// program range.
func (t *Tracker) GoToToday() (int, error) {
	loc := t.state.StartDate.Location()
	return t.GoTo(Midnight(t.now().In(loc)))
}

// Status summarizes the current day.
func (t *Tracker) Status() Status {
	day := t.state.Current()
	weekday := day.Date.Weekday()

	var applicable []types.DisciplineKey
	for _, k := range types.AllDisciplines() {
		if Applicable(k, weekday) {
			applicable = append(applicable, k)
		}
	}

	exercise := WeeklyTotal(&t.state, types.Exercise)
	return Status{
		Index:       t.state.CurrentIndex,
		DayNumber:   t.state.CurrentIndex + 1,
		Date:        day.Date,
		Week:        day.Week,
		Results:     day.Results,
		Applicable:  applicable,
		Score:       Score(*day),
		Reading:     ReadingFor(t.state.CurrentIndex),
		Exercise:    exercise,
		ExerciseFit: ClassifyWeekly(exercise),
	}
}
