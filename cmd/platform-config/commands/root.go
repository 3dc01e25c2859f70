// Package commands provides the CLI commands for platform-config.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"platform-config/internal/config"
	"platform-config/internal/logging"
	"platform-config/internal/project"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	fs  afero.Fs
	cfg *config.Config

	configPath string
	logLevel   string
	pretty     bool
	root       string
}

// Execute runs the root command against the OS filesystem.
func Execute() error {
	return newRootCmd(afero.NewOsFs()).Execute()
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	cmd := &cobra.Command{
		Use:   "platform-config",
		Short: "Merge config.xml overrides into native platform files",
		Long: `platform-config applies the preferences and config-file blocks declared in a
project's config.xml to AndroidManifest.xml and <App>-Info.plist of every
prepared platform under platforms/.

Settings are read from .platform-config.yaml (or --config), a .env file and
PLATFORM_CONFIG_* environment variables; flags win over all of them.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (yaml, toml, json or jsonc)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR|OFF)")
	cmd.PersistentFlags().BoolVar(&a.pretty, "pretty", true, "Human readable log output")
	cmd.PersistentFlags().StringVar(&a.root, "root", "", "Project root (defaults to the nearest directory holding config.xml)")

	cmd.SetVersionTemplate(fmt.Sprintf("platform-config %s (%s)\n", Version, BuildTime))

	cmd.AddCommand(newApplyCmd(a))
	cmd.AddCommand(newPlanCmd(a))
	cmd.AddCommand(newWatchCmd(a))

	return cmd
}

// setup loads settings, applies flag overrides, initializes logging and
// locates the project root.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.fs, a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if flags.Changed("pretty") {
		cfg.Pretty = a.pretty
	}

	if flags.Changed("root") {
		cfg.Root = a.root
	}

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: cmd.ErrOrStderr(),
		Pretty: cfg.Pretty,
	})

	dir, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	root, err := project.FindRoot(a.fs, dir, cfg.Layout().SourceFile)
	if err != nil {
		return err
	}

	cfg.Root = root
	a.cfg = cfg

	logging.Debug().Str("root", root).Msg("Project root")

	return nil
}
