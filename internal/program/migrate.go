package program

import (
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// MigrateResults backfills canonical keys missing from persisted results.
// For each canonical key absent from any record, the key is added as false
// to every record that lacks it; keys already present keep their values.
// A nil record is replaced by an empty map first. Returns the keys that were
// added, in canonical order.
func MigrateResults(records []map[string]bool) []types.DisciplineKey {
	missing := make(map[types.DisciplineKey]bool)
	for i := range records {
		if records[i] == nil {
			records[i] = make(map[string]bool, types.DisciplineCount)
		}
		for _, k := range types.MissingKeys(records[i]) {
			missing[k] = true
		}
	}

	var added []types.DisciplineKey
	for _, k := range types.AllDisciplines() {
		if !missing[k] {
			continue
		}
		code := k.Code()
		for _, r := range records {
			if _, ok := r[code]; !ok {
				r[code] = false
			}
		}
		added = append(added, k)
	}
	return added
}

// RepairFuture resets the results of every day after now's calendar day to
// a fresh all-false record. Future days can never hold completions. Returns
// the indexes of days that held at least one completion.
func RepairFuture(state *types.ProgramState, now time.Time) []int {
	var repaired []int
	for i := range state.Days {
		d := &state.Days[i]
		if civilDay(d.Date) <= civilDay(now.In(d.Date.Location())) {
			continue
		}
		if d.Results.Completed() > 0 {
			repaired = append(repaired, i)
		}
		d.Results = types.NewResults()
	}
	return repaired
}
