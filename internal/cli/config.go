package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/reditus/internal/paths"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyAnchor          = "anchor"
	cfgKeyYear            = "year"
	cfgKeyNamespaceSuffix = "namespace_suffix"
	cfgKeyLogLevel        = "log_level"

	defaultBackend  = types.BackendSQLite
	defaultLogLevel = "warn"
)

// configHeader is written above the generated config.yaml body.
const configHeader = `# reditus configuration
#
# backend:          sqlite, file or memory
# data_dir:         data directory (overridable by --data-dir)
# anchor:           program end date, YYYY-MM-DD (default: Easter Sunday)
# year:             year whose Easter anchors the program when anchor is empty
# namespace_suffix: appended to the anchor year to name the stored program
# log_level:        debug, info, warn or error

`

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend         string `yaml:"backend"`
	DataDir         string `yaml:"data_dir,omitempty"`
	Anchor          string `yaml:"anchor,omitempty"`
	Year            int    `yaml:"year,omitempty"`
	NamespaceSuffix string `yaml:"namespace_suffix,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:         defaultBackend,
		NamespaceSuffix: types.DefaultNamespaceSuffix,
		LogLevel:        defaultLogLevel,
	}
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if _, err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultConfigFile()); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether the file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func configFromViper(v *viper.Viper) configFile {
	return configFile{
		Backend:         v.GetString(cfgKeyBackend),
		DataDir:         v.GetString(cfgKeyDataDir),
		Anchor:          anchorString(v.Get(cfgKeyAnchor)),
		Year:            v.GetInt(cfgKeyYear),
		NamespaceSuffix: v.GetString(cfgKeyNamespaceSuffix),
		LogLevel:        v.GetString(cfgKeyLogLevel),
	}
}

// anchorString normalizes the anchor value. YAML decodes an unquoted
// 2026-04-05 as a timestamp.
func anchorString(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case time.Time:
		return a.Format(dateLayout)
	default:
		return fmt.Sprint(a)
	}
}

// loadSettings resolves the directories, reads config.yaml, and fills in
// a.config for the store and program.
func (a *app) loadSettings() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.file = configFromViper(v)

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.file.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	a.config = types.Config{
		Backend:         a.file.Backend,
		DataDir:         dataDir,
		Anchor:          a.file.Anchor,
		Year:            a.file.Year,
		NamespaceSuffix: a.file.NamespaceSuffix,
	}
	a.logLevel = a.file.LogLevel
	if err := a.config.Validate(); err != nil {
		return userError(fmt.Errorf("%s: %w", filepath.Join(configDir, configFileExt), err))
	}
	return nil
}

// logger returns a text logger on w at the configured level. --verbose
// forces debug output.
func (a *app) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if a.logLevel != "" {
		_ = level.UnmarshalText([]byte(a.logLevel))
	}
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
