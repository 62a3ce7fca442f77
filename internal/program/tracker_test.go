package program

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

func openTestTracker(t *testing.T) (*Tracker, *Persistence) {
	t.Helper()
	p, _ := newTestPersistence(t)
	return Open(p, DefaultState(anchor2026)), p
}

func TestTrackerToggleSaves(t *testing.T) {
	tr, p := openTestTracker(t)

	on, err := tr.Toggle(types.Sleep)
	require.NoError(t, err)
	assert.True(t, on)

	reloaded := p.Load(DefaultState(anchor2026))
	assert.True(t, reloaded.Days[0].Results[types.Sleep])

	on, err = tr.Toggle(types.Sleep)
	require.NoError(t, err)
	assert.False(t, on)

	reloaded = p.Load(DefaultState(anchor2026))
	assert.False(t, reloaded.Days[0].Results[types.Sleep])
}

func TestTrackerToggleOnlyTouchesCurrentDay(t *testing.T) {
	tr, _ := openTestTracker(t)
	_, err := tr.GoTo(date(2026, time.January, 20))
	require.NoError(t, err)

	_, err = tr.Toggle(types.Exercise)
	require.NoError(t, err)

	state := tr.State()
	for i, d := range state.Days {
		assert.Equal(t, i == 15, d.Results[types.Exercise], "day %d", i)
	}
}

func TestTrackerSet(t *testing.T) {
	tr, p := openTestTracker(t)
	require.NoError(t, tr.Set(types.ColdShower, true))
	require.NoError(t, tr.Set(types.ColdShower, true))
	assert.True(t, p.Load(DefaultState(anchor2026)).Days[0].Results[types.ColdShower])
}

func TestTrackerRejectsFasting(t *testing.T) {
	tr, _ := openTestTracker(t)

	// Jan 5 is a Monday.
	_, err := tr.Toggle(types.Fasting)
	assert.ErrorIs(t, err, types.ErrNotApplicable)

	// Jan 7 is a Wednesday.
	_, err = tr.GoTo(date(2026, time.January, 7))
	require.NoError(t, err)
	on, err := tr.Toggle(types.Fasting)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestTrackerRejectsFutureDay(t *testing.T) {
	tr, _ := openTestTracker(t)
	_, err := tr.GoTo(date(2026, time.March, 1))
	require.NoError(t, err)

	_, err = tr.Toggle(types.Sleep)
	assert.ErrorIs(t, err, types.ErrFutureDay)
}

func TestTrackerRejectsUnknownKey(t *testing.T) {
	tr, _ := openTestTracker(t)
	err := tr.Set(types.DisciplineKey(42), true)
	assert.ErrorIs(t, err, types.ErrUnknownDiscipline)
}

func TestTrackerRollsBackOnSaveFailure(t *testing.T) {
	p, store := newTestPersistence(t)
	tr := Open(p, DefaultState(anchor2026))

	store.PutErr = errors.New("read-only filesystem")
	_, err := tr.Toggle(types.Sleep)
	require.Error(t, err)
	assert.False(t, tr.State().Days[0].Results[types.Sleep])

	idx, err := tr.GoTo(date(2026, time.January, 20))
	require.Error(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, tr.State().CurrentIndex)
}

func TestTrackerGoToClampsAndSaves(t *testing.T) {
	tr, p := openTestTracker(t)

	idx, err := tr.GoTo(date(2027, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, types.LastIndex, idx)
	assert.Equal(t, types.LastIndex, p.Load(DefaultState(anchor2026)).CurrentIndex)

	idx, err = tr.GoTo(date(2020, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, p.Load(DefaultState(anchor2026)).CurrentIndex)
}

func TestTrackerGoToIndex(t *testing.T) {
	tr, p := openTestTracker(t)

	require.NoError(t, tr.GoToIndex(42))
	assert.Equal(t, 42, p.Load(DefaultState(anchor2026)).CurrentIndex)

	for _, i := range []int{-1, types.ProgramLength} {
		err := tr.GoToIndex(i)
		assert.ErrorIs(t, err, types.ErrInvalidIndex)
		assert.Equal(t, 42, tr.State().CurrentIndex)
	}
}

func TestTrackerGoToToday(t *testing.T) {
	tr, _ := openTestTracker(t)
	idx, err := tr.GoToToday()
	require.NoError(t, err)
	assert.Equal(t, 27, idx)
}

func TestTrackerStatus(t *testing.T) {
	tr, _ := openTestTracker(t)
	_, err := tr.GoTo(date(2026, time.January, 7)) // Wednesday, week1
	require.NoError(t, err)
	require.NoError(t, tr.Set(types.Exercise, true))
	require.NoError(t, tr.Set(types.Fasting, true))

	st := tr.Status()
	assert.Equal(t, 2, st.Index)
	assert.Equal(t, 3, st.DayNumber)
	assert.Equal(t, "week1", st.Week)
	assert.Equal(t, "Matthew Chapter 3", st.Reading)
	assert.Equal(t, 2, st.Score.Completed)
	assert.Equal(t, 15, st.Score.OutOf)
	assert.Equal(t, 1, st.Exercise)
	assert.Equal(t, WeeklyInsufficient, st.ExerciseFit)
	assert.Len(t, st.Applicable, types.DisciplineCount)

	_, err = tr.GoTo(date(2026, time.January, 8)) // Thursday
	require.NoError(t, err)
	assert.Len(t, tr.Status().Applicable, types.DisciplineCount-1)
}
