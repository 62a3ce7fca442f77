// Package cli implements the reditus command-line interface.
package cli

import (
	"errors"
	"os"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/reditus"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app carries the state shared by one command invocation.
type app struct {
	flags    rootFlags
	now      func() time.Time
	file     configFile
	config   types.Config
	logLevel string
}

// NewRootCmd creates the top-level "reditus" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:     "reditus",
		Short:   "Track a 90-day discipline program",
		Long:    "Reditus keeps the daily checklist of a 90-day discipline program that ends on an\nanchor date, and reports daily and weekly progress.",
		Version: reditus.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "init":
				return nil
			}
			return a.loadSettings()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.flags.verbose, "verbose", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newToggleCmd(a))
	root.AddCommand(newSetCmd(a))
	root.AddCommand(newGotoCmd(a))
	root.AddCommand(newTodayCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newReadingsCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitError attaches an exit code to a command error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// userErrors are sentinels caused by bad input rather than a failing system.
var userErrors = []error{
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
	types.ErrInvalidAnchor,
	types.ErrInvalidYear,
	types.ErrUnknownDiscipline,
	types.ErrNotApplicable,
	types.ErrFutureDay,
	types.ErrInvalidIndex,
	types.ErrInvalidNamespace,
}

// classify wraps err as a user or system error based on its sentinel.
func classify(err error) error {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return userError(err)
		}
	}
	return sysError(err)
}

// exitCode maps a command error to a process exit code. Errors raised by
// cobra itself (unknown command, bad arguments) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
