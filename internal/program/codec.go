package program

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// JSON record structures for the persisted program state. Dates are epoch
// milliseconds; results are keyed by discipline wire code.

// savedState is the persisted ProgramState as Save writes it.
type savedState struct {
	CurIndex  int        `json:"curIndex"`
	StartDate int64      `json:"startDate"`
	Days      []savedDay `json:"days"`
}

type savedDay struct {
	Date    int64               `json:"date"`
	Week    string              `json:"week"`
	Results types.ResultsRecord `json:"results"`
}

// stateJSON is a persisted value as Load reads it. Each top-level field is
// kept raw so one unusable field falls back to its default without losing
// the others.
type stateJSON struct {
	CurIndex  json.RawMessage   `json:"curIndex"`
	StartDate json.RawMessage   `json:"startDate"`
	Days      []json.RawMessage `json:"days"`
}

// dayJSON is one persisted Day. Results stay a map so migration can see
// which keys were written.
type dayJSON struct {
	Date    int64           `json:"date"`
	Week    string          `json:"week"`
	Results map[string]bool `json:"results"`
}

// Encode serializes the whole state in the persisted format.
func Encode(state *types.ProgramState) ([]byte, error) {
	rec := savedState{
		CurIndex:  state.CurrentIndex,
		StartDate: state.StartDate.UnixMilli(),
		Days:      make([]savedDay, len(state.Days)),
	}
	for i, d := range state.Days {
		rec.Days[i] = savedDay{
			Date:    d.Date.UnixMilli(),
			Week:    d.Week,
			Results: d.Results,
		}
	}
	return json.Marshal(rec)
}

// decodeState parses a persisted value. Unknown fields are ignored.
func decodeState(data []byte) (*stateJSON, error) {
	var rec stateJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// present reports whether a raw field was written with a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// decodeCursor reads a persisted cursor. Older versions stored the last Day
// object instead of an index once the cursor ran past the end; such a value
// is resolved through its date. Reports false when raw holds neither.
func decodeCursor(raw json.RawMessage, days *types.Timeline, current int, loc *time.Location) (int, bool) {
	var idx int
	if err := json.Unmarshal(raw, &idx); err == nil {
		return idx, true
	}
	var day struct {
		Date *int64 `json:"date"`
	}
	if err := json.Unmarshal(raw, &day); err == nil && day.Date != nil {
		return ResolveIndex(days, dateOf(*day.Date, loc), current), true
	}
	return 0, false
}

// dateOf converts an epoch-millisecond timestamp to a time in loc.
func dateOf(ms int64, loc *time.Location) time.Time {
	return time.UnixMilli(ms).In(loc)
}
