package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/locale"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file (or --config), the project
overlay and FLEETTCO_* environment overrides.

This includes:
- Schema version compatibility
- Default fuel type and non-negative numeric defaults
- Output format and CO2 unit
- Logging level and format`,
		Example: `  # Validate current configuration
  fleettco config validate

  # Validate and show detailed information
  fleettco config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	d := cfg.Defaults
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project overlay: %s\n", dir)
	}
	cmd.Printf("  Fleet: %d vehicle(s), %s km/month, %d year(s), %s\n",
		d.Fleet, locale.FormatDecimal(d.Mileage, 0), d.Years, d.Fuel().DisplayName())
	cmd.Printf("  Prices: diesel %s/l, gasoline %s/l, energy %s/kWh\n",
		locale.FormatCurrency(d.DieselPrice),
		locale.FormatCurrency(d.GasolinePrice),
		locale.FormatCurrency(d.EnergyPrice))
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  CO2 unit: %s\n", cfg.Output.CO2Unit)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
