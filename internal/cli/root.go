package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the fleettco CLI.
// It loads configuration, wires up logging and tracing, and registers the subcommands
// (calculate, tui, sweep, profiles, config, setup).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "fleettco",
		Short: "Fleet total cost of ownership calculator",
		Long: `fleettco compares the total cost of ownership of a diesel or gasoline fleet with
an equivalent electric fleet: acquisition, energy and maintenance costs, CO2 avoided
and the horizon at which the electric fleet breaks even.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $FLEETTCO_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "",
		"project directory whose .fleettco/config.yaml overlays the global config")
	cmd.AddCommand(
		NewCalculateCmd(), NewTUICmd(), NewSweepCmd(), NewProfilesCmd(),
		newConfigCmd(), NewSetupCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Compare the default diesel fleet with its electric equivalent
  fleettco calculate

  # 10 gasoline vehicles, 4.500 km/month each, over 5 years, pt-BR prices
  fleettco calculate --fuel-type gasoline --fleet 10 --mileage 4500 --years 5 \
    --fuel-price 6,25 --energy-price 0,73

  # Find the break-even horizon
  fleettco sweep --max-years 10

  # Open the interactive calculator
  fleettco tui

  # Initialize configuration
  fleettco config init

  # Set configuration values
  fleettco config set defaults.diesel_price 6,18`

// loadConfig loads the global configuration (or --config), overlays the project config
// and installs the result as the global configuration for the running command.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var cfg *config.Config
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.New()
	}

	projectFlag, _ := cmd.Flags().GetString("project-dir")
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, wd)
	config.SetResolvedProjectDir(projectDir)

	config.SetGlobalConfig(config.WithProjectOverlay(ctx, cfg, projectDir))
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
