package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/reditus/internal/paths"
	"github.com/mesh-intelligence/reditus/internal/program"
	"github.com/mesh-intelligence/reditus/pkg/store"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

type initFlags struct {
	backend string
	anchor  string
	year    int
}

func newInitCmd(a *app) *cobra.Command {
	var f initFlags
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize reditus configuration and storage",
		Long: "Create the configuration and data directories, write config.yaml if it is\n" +
			"missing, then initialize the storage backend.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.backend, "backend", defaultBackend, "storage backend (sqlite, file, memory)")
	cmd.Flags().StringVar(&f.anchor, "anchor", "", "program end date, YYYY-MM-DD (default: Easter Sunday)")
	cmd.Flags().IntVar(&f.year, "year", 0, "use Easter of this year as the anchor")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, f initFlags) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	if err := (types.Config{Backend: f.backend, Year: f.year}).Validate(); err != nil {
		return userError(err)
	}
	if f.anchor != "" {
		if _, err := program.ParseAnchor(f.anchor, time.Local); err != nil {
			return userError(err)
		}
	}

	cfg := defaultConfigFile()
	cfg.Backend = f.backend
	cfg.Anchor = f.anchor
	cfg.Year = f.year
	if a.flags.dataDir != "" {
		dir, err := filepath.Abs(a.flags.dataDir)
		if err != nil {
			return sysError(fmt.Errorf("resolve data dir: %w", err))
		}
		cfg.DataDir = dir
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	// An existing config.yaml wins over init flags.
	if err := a.loadSettings(); err != nil {
		return err
	}
	anchor, err := program.AnchorFor(a.config, time.Local, a.now())
	if err != nil {
		return userError(err)
	}

	st, err := store.Open(a.config)
	if err != nil {
		return classify(fmt.Errorf("initialize storage: %w", err))
	}
	if err := st.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	}
	fmt.Fprintf(out, "Program %s starts %s, anchor %s (%s backend, data in %s)\n",
		program.Namespace(anchor.Year(), a.config.GetNamespaceSuffix()),
		program.StartDate(anchor).Format(dateLayout), anchor.Format(dateLayout),
		a.config.Backend, a.config.DataDir)
	fmt.Fprintln(out, "Reditus initialized successfully")
	return nil
}
