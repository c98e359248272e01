package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"marine-guardian/internal/config"
	"marine-guardian/internal/logger"
	"marine-guardian/internal/services"
	"marine-guardian/internal/store"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Database   string
	LogLevel   string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// GUILauncher starts the desktop window and blocks until it closes.
type GUILauncher func(ctx context.Context, cfg *config.Config, log logger.Logger) error

// NewRootCommand creates the root command. Running it without a subcommand
// calls launch; a nil launch prints help instead.
func NewRootCommand(launch GUILauncher) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "marine-guardian",
		Short: "MarineGuardian - marine species sighting logger",
		Long: `MarineGuardian records sightings of marine species together with their
conservation status, and summarises how many sightings fall in each status.

Run without a subcommand to open the desktop window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if launch == nil {
				return cmd.Help()
			}
			cfg, err := opts.LoadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load configuration", err)
			}
			log, err := opts.newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "configure logging", err)
			}
			return launch(cmd.Context(), cfg, log)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./marine-guardian.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite database")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error|disabled)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// Execute runs cmd and reports a failure through OutputFormatter, so
// --format json yields an error document on stdout. It returns the process
// exit code.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := "text"
	if flag := cmd.PersistentFlags().Lookup("format"); flag != nil && isValidFormat(flag.Value.String()) {
		format = flag.Value.String()
	}
	out := &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
	_ = out.Error(err)

	return GetExitCode(err)
}

// LoadConfig reads .env, the config file and the environment, then applies
// flag overrides on top.
func (o *RootOptions) LoadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(config.DefaultDotEnv); err != nil {
		return nil, err
	}
	v := config.New(o.ConfigFile)
	if o.Database != "" {
		v.Set("database.path", o.Database)
	}
	if o.LogLevel != "" {
		v.Set("log.level", o.LogLevel)
	}
	return config.Load(v)
}

func (o *RootOptions) newLogger(cfg *config.Config, w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logger.New(w, level, cfg.Log.JSON), nil
}

// openService loads configuration and opens the record store behind a
// SightingService. Logs go to the command's stderr.
func (o *RootOptions) openService(cmd *cobra.Command) (*services.SightingService, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return o.serviceFor(cmd, cfg)
}

func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load configuration", err)
	}
	return cfg, nil
}

// serviceFor opens the record store named by an already loaded cfg
func (o *RootOptions) serviceFor(cmd *cobra.Command, cfg *config.Config) (*services.SightingService, error) {
	log, err := o.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configure logging", err)
	}

	st, err := store.Open(cmd.Context(), cfg.Database.Path, store.WithLogger(log))
	if err != nil {
		return nil, WrapExitError(ExitFailure, "open database", err)
	}
	return services.NewSightingService(st, log), nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
