package cli

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <key>...",
		Short: "Flip disciplines on the current day",
		Long:  "Flip one or more disciplines on the current day. Keys are wire codes (ex) or\nlong names (exercise).",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(s *session) error {
				for _, k := range keys {
					done, err := s.tracker.Toggle(k)
					if err != nil {
						return classify(err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", checkMark(done), k.Code(), k)
				}
				return nil
			})
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Mark a discipline on the current day done or not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := types.ParseDisciplineKey(args[0])
			if err != nil {
				return userError(err)
			}
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return userError(fmt.Errorf("invalid value %q: want true or false", args[1]))
			}
			return a.withSession(cmd, func(s *session) error {
				if err := s.tracker.Set(k, value); err != nil {
					return classify(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", checkMark(value), k.Code(), k)
				return nil
			})
		},
	}
}

// parseKeys resolves every argument before any state is touched.
func parseKeys(args []string) ([]types.DisciplineKey, error) {
	keys := make([]types.DisciplineKey, 0, len(args))
	for _, arg := range args {
		k, err := types.ParseDisciplineKey(arg)
		if err != nil {
			return nil, userError(err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
