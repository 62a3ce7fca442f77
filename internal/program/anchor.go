package program

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// anchorLayout is the accepted anchor date format.
const anchorLayout = "2006-01-02"

// StartDate returns the calendar day ProgramLength days before anchor.
func StartDate(anchor time.Time) time.Time {
	return Midnight(anchor).AddDate(0, 0, -types.ProgramLength)
}

// Easter returns Western Easter Sunday of year at midnight in loc, using the
// anonymous Gregorian algorithm.
func Easter(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// ParseAnchor parses a YYYY-MM-DD anchor date as local midnight in loc.
func ParseAnchor(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(anchorLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidAnchor, s)
	}
	return t, nil
}

// AnchorFor returns the anchor date described by cfg: the literal Anchor when
// set, otherwise Easter of cfg.Year, otherwise Easter of now's year.
func AnchorFor(cfg types.Config, loc *time.Location, now time.Time) (time.Time, error) {
	if cfg.Anchor != "" {
		return ParseAnchor(cfg.Anchor, loc)
	}
	year := cfg.Year
	if year == 0 {
		year = now.In(loc).Year()
	}
	return Easter(year, loc), nil
}

// Namespace returns the storage key for the program anchored in year.
func Namespace(year int, suffix string) string {
	if suffix == "" {
		suffix = types.DefaultNamespaceSuffix
	}
	return fmt.Sprintf("%d%s", year, suffix)
}
