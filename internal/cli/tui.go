package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/tui"
)

// NewTUICmd creates the "tui" command that opens the interactive calculator seeded with
// the configured defaults and any parameter flags.
func NewTUICmd() *cobra.Command {
	var flags ParamFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive fleet calculator",
		Long: `Opens the interactive calculator. Move between fields with up/down or tab, adjust
sliders and the fuel type with left/right, type prices directly, press enter to
calculate and r to reset to the starting values.`,
		Example: `  # Start from the configured defaults
  fleettco tui

  # Start from a 10-vehicle gasoline fleet
  fleettco tui --fuel-type gasoline --fleet 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTerminal(stdoutFile(cmd)) {
				return errors.New("the interactive calculator needs a terminal; use 'fleettco calculate' instead")
			}

			cfg := config.GetGlobalConfig()
			p, err := ResolveParams(cmd, flags, cfg.Defaults)
			if err != nil {
				return err
			}
			return runCalculatorTUI(cmd.Context(), p, cfg.Defaults)
		},
	}

	bindParamFlags(cmd, &flags)
	return cmd
}
