package cli

import (
	"fmt"

	"github.com/mesh-intelligence/reditus/internal/program"
	"github.com/spf13/cobra"
)

type readingJSON struct {
	Day     int    `json:"day"`
	Reading string `json:"reading"`
}

func newReadingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "readings",
		Short: "Print the daily reading plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			readings := program.Readings()
			if a.flags.jsonMode {
				out := make([]readingJSON, len(readings))
				for i, r := range readings {
					out[i] = readingJSON{Day: i + 1, Reading: r}
				}
				return writeJSON(w, out)
			}
			for i, r := range readings {
				fmt.Fprintf(w, "Day %2d  %s\n", i+1, r)
			}
			return nil
		},
	}
}
