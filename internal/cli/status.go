package cli

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/reditus/internal/program"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

// statusJSON is the --json form of the status command.
type statusJSON struct {
	Namespace   string          `json:"namespace"`
	Index       int             `json:"index"`
	Day         int             `json:"day"`
	Date        string          `json:"date"`
	Week        string          `json:"week"`
	Results     map[string]bool `json:"results"`
	Completed   int             `json:"completed"`
	OutOf       int             `json:"out_of"`
	Reading     string          `json:"reading"`
	Exercise    int             `json:"exercise"`
	ExerciseFit string          `json:"exercise_fit"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the checklist and progress of the current day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(s *session) error {
				return a.printStatus(cmd.OutOrStdout(), s)
			})
		},
	}
}

// printStatus writes the current day's view, as text or JSON.
func (a *app) printStatus(w io.Writer, s *session) error {
	st := s.tracker.Status()
	if a.flags.jsonMode {
		results := make(map[string]bool, len(st.Applicable))
		for _, k := range st.Applicable {
			results[k.Code()] = st.Results[k]
		}
		return writeJSON(w, statusJSON{
			Namespace:   s.persist.Namespace(),
			Index:       st.Index,
			Day:         st.DayNumber,
			Date:        st.Date.Format(dateLayout),
			Week:        st.Week,
			Results:     results,
			Completed:   st.Score.Completed,
			OutOf:       st.Score.OutOf,
			Reading:     st.Reading,
			Exercise:    st.Exercise,
			ExerciseFit: string(st.ExerciseFit),
		})
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Day %d of %d", st.DayNumber, types.ProgramLength)),
		st.Date.Format("Monday "+dateLayout), st.Week)
	for _, k := range st.Applicable {
		fmt.Fprintf(w, "  %s %s  %s\n", checkMark(st.Results[k]), k.Code(), k)
	}
	fmt.Fprintf(w, "Completed: %d of %d\n", st.Score.Completed, st.Score.OutOf)
	fmt.Fprintf(w, "Reading: %s\n", st.Reading)
	fmt.Fprintf(w, "Exercise this week: %s\n",
		weeklyStyle(st.ExerciseFit).Render(fmt.Sprintf("%d of %d (%s)", st.Exercise, program.WeeklyThreshold, st.ExerciseFit)))
	return nil
}
