package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newGotoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <YYYY-MM-DD|day>",
		Short: "Move the current day to a calendar date or day number",
		Long: "Move the current day to a calendar date or a day number from 1 to 90. Dates\n" +
			"before or after the program land on its first or last day.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n, err := strconv.Atoi(args[0]); err == nil {
				return a.withSession(cmd, func(s *session) error {
					if err := s.tracker.GoToIndex(n - 1); err != nil {
						return classify(err)
					}
					return a.printMoved(cmd.OutOrStdout(), s)
				})
			}

			query, err := time.ParseInLocation(dateLayout, args[0], time.Local)
			if err != nil {
				return userError(fmt.Errorf("invalid date %q: want YYYY-MM-DD or a day number", args[0]))
			}
			return a.withSession(cmd, func(s *session) error {
				if _, err := s.tracker.GoTo(query); err != nil {
					return classify(err)
				}
				return a.printMoved(cmd.OutOrStdout(), s)
			})
		},
	}
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Move the current day to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(s *session) error {
				if _, err := s.tracker.GoToToday(); err != nil {
					return classify(err)
				}
				return a.printMoved(cmd.OutOrStdout(), s)
			})
		},
	}
}

// printMoved reports the cursor position after navigation. JSON mode prints
// the full status.
func (a *app) printMoved(w io.Writer, s *session) error {
	if a.flags.jsonMode {
		return a.printStatus(w, s)
	}
	st := s.tracker.Status()
	fmt.Fprintf(w, "Day %d: %s\n", st.DayNumber, st.Date.Format("Monday "+dateLayout))
	return nil
}
