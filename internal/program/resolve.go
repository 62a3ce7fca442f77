package program

import (
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// dstTolerance absorbs a one-hour daylight-saving shift in stored dates.
const dstTolerance = time.Hour

// ResolveIndex maps query to a timeline index. Queries at or before the
// first day resolve to 0 and queries at or after the last day to LastIndex.
// Inside the range the first day whose date equals query wins, or whose
// stored date runs one hour ahead of query (date - 1h == query); failing
// that, the first day on query's calendar day.
// When nothing matches, current is returned, clamped to the valid range.
func ResolveIndex(days *types.Timeline, query time.Time, current int) int {
	if !query.After(days.First().Date) {
		return 0
	}
	if !query.Before(days.Last().Date) {
		return types.LastIndex
	}
	for i := range days {
		d := days[i].Date
		// A day stored one hour ahead of query after a DST shift.
		if d.Equal(query) || d.Add(-dstTolerance).Equal(query) {
			return i
		}
	}
	for i := range days {
		if sameDay(days[i].Date, query) {
			return i
		}
	}
	return clampIndex(current)
}
