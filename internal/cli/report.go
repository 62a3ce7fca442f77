package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/reditus/internal/program"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

// reportDayJSON is one heatmap cell in the --json report.
type reportDayJSON struct {
	Date      string `json:"date"`
	Week      string `json:"week"`
	Completed int    `json:"completed"`
	OutOf     int    `json:"out_of"`
}

type reportJSON struct {
	Namespace string          `json:"namespace"`
	Days      []reportDayJSON `json:"days"`
	Exercise  map[string]int  `json:"exercise_by_week"`
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the per-day completion ratios and weekly exercise totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(s *session) error {
				state := s.tracker.State()
				scores := program.Summaries(&state)
				exercise := program.WeekTotals(&state.Days, types.Exercise)
				w := cmd.OutOrStdout()

				if a.flags.jsonMode {
					rep := reportJSON{
						Namespace: s.persist.Namespace(),
						Days:      make([]reportDayJSON, len(scores)),
						Exercise:  exercise,
					}
					for i, sc := range scores {
						rep.Days[i] = reportDayJSON{
							Date:      sc.Date.Format(dateLayout),
							Week:      state.Days[i].Week,
							Completed: sc.Completed,
							OutOf:     sc.OutOf,
						}
					}
					return writeJSON(w, rep)
				}

				for i, sc := range scores {
					marker := " "
					if i == state.CurrentIndex {
						marker = ">"
					}
					fmt.Fprintf(w, "%s %s %-6s %2d/%d\n", marker, sc.Date.Format(dateLayout),
						state.Days[i].Week, sc.Completed, sc.OutOf)
				}

				fmt.Fprintln(w)
				fmt.Fprintln(w, titleStyle.Render("Exercise by week"))
				for _, week := range sortedWeeks(exercise) {
					total := exercise[week]
					class := program.ClassifyWeekly(total)
					fmt.Fprintf(w, "  %-6s %s\n", week, weeklyStyle(class).Render(fmt.Sprintf("%d (%s)", total, class)))
				}
				return nil
			})
		},
	}
}

// sortedWeeks orders "week<N>" labels numerically.
func sortedWeeks(totals map[string]int) []string {
	weeks := make([]string, 0, len(totals))
	for w := range totals {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weekNumber(weeks[i]) < weekNumber(weeks[j])
	})
	return weeks
}

func weekNumber(label string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(label, "week"))
	if err != nil {
		return 0
	}
	return n
}
