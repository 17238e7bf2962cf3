package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
)

// NewConfigGetCmd creates the config get command. It prints the effective value, after
// the project overlay and environment overrides.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Example: `  fleettco config get defaults.diesel_price
  fleettco config get output.default_format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

// NewConfigSetCmd creates the config set command. It edits the global config file (or
// --config) rather than the effective configuration, so environment overrides and the
// project overlay are never written back.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Sets a value in the configuration file and saves it. Numbers accept both "6.18" and
"6,18". The change is rejected if it leaves the configuration invalid.`,
		Example: `  fleettco config set defaults.diesel_price 6,18
  fleettco config set defaults.fuel_type gasoline
  fleettco config set output.default_format json`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := globalConfigPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			value, _ := cfg.Get(args[0])
			cmd.Printf("Set %s = %s in %s\n", args[0], value, path)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command that prints every key with its
// effective value.
func NewConfigListCmd() *cobra.Command {
	var output OutputOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			format, err := output.resolveFormat(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format != config.FormatTable {
				values := make(map[string]string, len(config.Keys()))
				for _, key := range config.Keys() {
					values[key], _ = cfg.Get(key)
				}
				return writeJSON(w, values)
			}

			tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
			for _, key := range config.Keys() {
				value, _ := cfg.Get(key)
				fmt.Fprintf(tw, "%s\t%s\n", key, value)
			}
			return tw.Flush()
		},
	}

	bindOutputFlags(cmd, &output)
	return cmd
}
