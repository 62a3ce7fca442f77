package cli

import (
	"fmt"

	"github.com/mesh-intelligence/reditus/pkg/reditus"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/reditus"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the reditus version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "reditus v%s (%s)\nmodule: %s\n", reditus.Version, reditus.Revision, modulePath)
			return nil
		},
	}
}
