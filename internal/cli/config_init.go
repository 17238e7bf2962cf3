package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
)

var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// When a project directory is known (--project-dir, FLEETTCO_PROJECT_DIR or an existing
// .fleettco/config.yaml above the working directory) and --global is not set, it writes
// the project overlay. Otherwise it writes the global config file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project (see --project-dir), creates $PROJECT/.fleettco/config.yaml, which
overlays the global configuration for commands run in that project. Use --global to
initialize the global configuration instead.`,
		Example: `  # Create the global configuration
  fleettco config init

  # Create a project overlay
  fleettco --project-dir ./depot-sul config init

  # Create configuration, overwriting existing
  fleettco config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()
			if projectDir != "" && !global {
				return initConfigAt(cmd, filepath.Join(projectDir, "config.yaml"), force)
			}

			path, err := globalConfigPath(cmd)
			if err != nil {
				return err
			}
			return initConfigAt(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "initialize the global configuration even inside a project")

	return cmd
}

// initConfigAt writes the default configuration to path. An existing file is only
// replaced with --force or after confirmation on a terminal.
func initConfigAt(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if !isTerminal(os.Stdin) {
				return errConfigExists
			}
			if answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path); !answer.Accepted {
				return errConfigExists
			}
		case !os.IsNotExist(err):
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// globalConfigPath returns --config when set, or the default global config path.
func globalConfigPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}
