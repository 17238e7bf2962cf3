package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
)

// NewProfilesCmd creates the "profiles" command that prints the vehicle reference table
// every calculation uses.
func NewProfilesCmd() *cobra.Command {
	var output OutputOptions

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Show the vehicle reference table",
		Long: `Prints the reference data for the diesel, gasoline and electric vehicle classes:
efficiency, maintenance cost per km, acquisition cost and CO2 per litre burnt.`,
		Example: `  fleettco profiles
  fleettco profiles --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.resolveFormat(config.GetGlobalConfig())
			if err != nil {
				return err
			}

			profiles := engine.Profiles()
			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, profiles)
			case config.FormatNDJSON:
				return writeNDJSON(w, profiles)
			default:
				return renderPlainProfiles(w, profiles)
			}
		},
	}

	bindOutputFlags(cmd, &output)
	return cmd
}
