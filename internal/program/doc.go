// Package program implements the 90-day program engine: the start date
// computed from the anchor, week buckets, timeline generation, loading and
// repairing persisted state, date-to-index navigation, and the day and week
// aggregates shown to the user.
//
// The engine is synchronous and holds no global state. A Tracker owns the
// single mutable ProgramState and writes it through a Persistence after
// every mutation.
package program
