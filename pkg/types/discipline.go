package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// DisciplineKey identifies one checklist item. The numeric value is the
// item's position in the canonical order; new keys are only ever appended.
type DisciplineKey int

// Canonical discipline keys, in order.
const (
	Sleep DisciplineKey = iota
	ColdShower
	Exercise
	NoComputer
	NoTV
	NoAlcohol
	NoSnacks
	NoMusic
	NoPurchases
	Fasting
	HolyHour
	MorningOffering
	NoNews
	Reading
	CheckIn

	// DisciplineCount is the number of canonical keys.
	DisciplineCount int = iota
)

// disciplineInfo holds the wire code and long name of each key, indexed by
// DisciplineKey. Wire codes are stable identifiers in persisted state.
var disciplineInfo = [DisciplineCount]struct {
	code string
	name string
}{
	Sleep:           {"sl", "sleep"},
	ColdShower:      {"cs", "cold-shower"},
	Exercise:        {"ex", "exercise"},
	NoComputer:      {"pc", "no-computer"},
	NoTV:            {"tv", "no-tv"},
	NoAlcohol:       {"al", "no-alcohol"},
	NoSnacks:        {"sn", "no-snacks"},
	NoMusic:         {"mu", "no-music"},
	NoPurchases:     {"pu", "no-purchases"},
	Fasting:         {"fa", "fasting"},
	HolyHour:        {"hh", "holy-hour"},
	MorningOffering: {"mo", "morning-offering"},
	NoNews:          {"ne", "no-news"},
	Reading:         {"re", "reading"},
	CheckIn:         {"ci", "check-in"},
}

// Discipline lookup errors.
var (
	ErrUnknownDiscipline = errors.New("unknown discipline")
	ErrNotApplicable     = errors.New("discipline does not apply on this weekday")
)

// AllDisciplines returns the canonical keys in order.
func AllDisciplines() []DisciplineKey {
	keys := make([]DisciplineKey, DisciplineCount)
	for i := range keys {
		keys[i] = DisciplineKey(i)
	}
	return keys
}

// Valid reports whether k is a canonical key.
func (k DisciplineKey) Valid() bool {
	return k >= 0 && int(k) < DisciplineCount
}

// Code returns the stable wire identifier, e.g. "ex".
func (k DisciplineKey) Code() string {
	if !k.Valid() {
		return ""
	}
	return disciplineInfo[k].code
}

// String returns the long name, e.g. "exercise".
func (k DisciplineKey) String() string {
	if !k.Valid() {
		return fmt.Sprintf("DisciplineKey(%d)", int(k))
	}
	return disciplineInfo[k].name
}

// ParseDisciplineKey resolves a wire code or a long name to its key.
func ParseDisciplineKey(s string) (DisciplineKey, error) {
	for i, info := range disciplineInfo {
		if s == info.code || s == info.name {
			return DisciplineKey(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownDiscipline, s)
}

// DisciplineByCode resolves a wire code only.
func DisciplineByCode(code string) (DisciplineKey, bool) {
	for i, info := range disciplineInfo {
		if code == info.code {
			return DisciplineKey(i), true
		}
	}
	return -1, false
}

// ResultsRecord maps every canonical key to "completed today". It is an
// array so that assignment copies it and no two days can share one.
type ResultsRecord [DisciplineCount]bool

// NewResults returns a canonical all-false record.
func NewResults() ResultsRecord {
	return ResultsRecord{}
}

// Completed returns the number of keys marked true.
func (r ResultsRecord) Completed() int {
	n := 0
	for _, v := range r {
		if v {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the record as an object keyed by wire code, every
// canonical key included.
func (r ResultsRecord) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, DisciplineCount)
	for i, v := range r {
		m[disciplineInfo[i].code] = v
	}
	return json.Marshal(m)
}

// ResultsFromMap builds a record from a wire-code map.
func ResultsFromMap(m map[string]bool) ResultsRecord {
	var r ResultsRecord
	for code, v := range m {
		if k, ok := DisciplineByCode(code); ok {
			r[k] = v
		}
	}
	return r
}

// MissingKeys returns the canonical keys absent from a wire-code map, in
// canonical order.
func MissingKeys(m map[string]bool) []DisciplineKey {
	var missing []DisciplineKey
	for i, info := range disciplineInfo {
		if _, ok := m[info.code]; !ok {
			missing = append(missing, DisciplineKey(i))
		}
	}
	return missing
}

// UnknownCodes returns the codes in m that are not canonical, sorted.
func UnknownCodes(m map[string]bool) []string {
	var unknown []string
	for code := range m {
		if _, ok := DisciplineByCode(code); !ok {
			unknown = append(unknown, code)
		}
	}
	sort.Strings(unknown)
	return unknown
}
