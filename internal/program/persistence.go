package program

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// Persistence loads and saves one program's state under its namespace in a
// Store. Loading never fails: unusable data falls back to the defaults.
type Persistence struct {
	store     types.Store
	namespace string
	now       func() time.Time
	logger    *slog.Logger
}

// NewPersistence returns a Persistence for namespace. A nil logger uses
// slog.Default and a nil now uses time.Now.
func NewPersistence(store types.Store, namespace string, logger *slog.Logger, now func() time.Time) *Persistence {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Persistence{
		store:     store,
		namespace: namespace,
		now:       now,
		logger:    logger.With(slog.String("namespace", namespace)),
	}
}

// Namespace returns the storage key this Persistence reads and writes.
func (p *Persistence) Namespace() string {
	return p.namespace
}

// Load returns defaults overlaid with the persisted state, after migrating
// missing discipline keys and clearing results on future days. When nothing
// is stored, or the stored value cannot be read or parsed, defaults is
// returned unchanged.
func (p *Persistence) Load(defaults types.ProgramState) types.ProgramState {
	raw, err := p.store.Get(p.namespace)
	if errors.Is(err, types.ErrNotFound) {
		p.logger.Info("no saved program state, using defaults")
		return defaults
	}
	if err != nil {
		p.logger.Warn("reading saved program state failed, using defaults", slog.String("error", err.Error()))
		return defaults
	}

	rec, err := decodeState(raw)
	if err != nil {
		p.logger.Warn("saved program state is malformed, using defaults", slog.String("error", err.Error()))
		return defaults
	}

	state := defaults
	p.overlay(&state, rec)

	for _, i := range RepairFuture(&state, p.now()) {
		p.logger.Debug("reset future day", slog.String("date", dayKey(state.Days[i].Date)))
	}
	return state
}

// overlay copies the persisted fields of rec onto state field by field. The
// timeline shape always comes from state; persisted days are matched to it
// by calendar day. A field that cannot be read keeps its default.
func (p *Persistence) overlay(state *types.ProgramState, rec *stateJSON) {
	loc := state.StartDate.Location()

	if present(rec.CurIndex) {
		idx, ok := decodeCursor(rec.CurIndex, &state.Days, state.CurrentIndex, loc)
		switch {
		case !ok:
			p.logger.Warn("saved cursor is unreadable, keeping default", slog.String("curIndex", string(rec.CurIndex)))
		case !types.ValidIndex(idx):
			p.logger.Info("saved cursor out of range, clamping", slog.Int("index", idx))
			state.CurrentIndex = clampIndex(idx)
		default:
			state.CurrentIndex = idx
		}
	}

	if present(rec.StartDate) {
		var ms int64
		if err := json.Unmarshal(rec.StartDate, &ms); err != nil {
			p.logger.Warn("saved start date is unreadable, ignoring", slog.String("startDate", string(rec.StartDate)))
		} else if saved := dateOf(ms, loc); !sameDay(state.StartDate, saved) {
			p.logger.Info("saved start date differs from program start, keeping program start",
				slog.String("saved", dayKey(saved)),
				slog.String("start", dayKey(state.StartDate)))
		}
	}

	days := make([]dayJSON, 0, len(rec.Days))
	for i, raw := range rec.Days {
		var d dayJSON
		if err := json.Unmarshal(raw, &d); err != nil {
			p.logger.Warn("saved day is unreadable, dropping", slog.Int("position", i), slog.String("error", err.Error()))
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return
	}

	records := make([]map[string]bool, len(days))
	for i, d := range days {
		records[i] = d.Results
	}
	for _, k := range MigrateResults(records) {
		p.logger.Info("discipline key missing from saved state, adding", slog.String("key", k.Code()))
	}

	index := make(map[string]int, len(state.Days))
	for i, d := range state.Days {
		index[dayKey(d.Date)] = i
	}

	seen := make(map[int]bool, len(days))
	for i, d := range days {
		idx, ok := matchDay(index, dateOf(d.Date, loc))
		if !ok {
			p.logger.Info("saved day is outside the program, dropping", slog.Int64("date", d.Date))
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if unknown := types.UnknownCodes(records[i]); len(unknown) > 0 {
			p.logger.Debug("dropping unknown discipline keys", slog.Any("keys", unknown))
		}
		state.Days[idx].Results = types.ResultsFromMap(records[i])
	}
}

// matchDay finds the timeline index of a persisted date. A timestamp one
// hour before midnight, left by a daylight-saving shift, belongs to the
// following day.
func matchDay(index map[string]int, date time.Time) (int, bool) {
	if date.Hour() == 23 && date.Minute() == 0 && date.Second() == 0 {
		date = date.Add(time.Hour)
	}
	i, ok := index[dayKey(date)]
	return i, ok
}

// Save writes the whole state under the namespace.
func (p *Persistence) Save(state *types.ProgramState) error {
	data, err := Encode(state)
	if err != nil {
		return fmt.Errorf("encoding program state: %w", err)
	}
	if err := p.store.Put(p.namespace, data); err != nil {
		return fmt.Errorf("saving %s: %w", p.namespace, err)
	}
	return nil
}

// clampIndex limits i to the valid timeline range.
func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > types.LastIndex {
		return types.LastIndex
	}
	return i
}
