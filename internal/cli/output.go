package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/tui"
)

// OutputOptions selects the output format and presentation of a command.
type OutputOptions struct {
	Format  string
	CO2Unit string
	Plain   bool
	NoColor bool
}

// bindOutputFlags registers --output on cmd.
func bindOutputFlags(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVar(&o.Format, "output", "", "output format: table, json or ndjson (default from config)")
}

// bindStyleFlags registers the flags that turn off styled table output.
func bindStyleFlags(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.Plain, "plain", false, "print unstyled text even on a terminal")
	cmd.Flags().BoolVar(&o.NoColor, "no-color", false, "disable colors")
}

// resolveFormat returns the requested format, or the configured default when empty.
func (o OutputOptions) resolveFormat(cfg *config.Config) (string, error) {
	format := strings.ToLower(o.Format)
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !config.IsValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return format, nil
}

// resolveCO2Unit returns the requested CO2 unit, or the configured one when empty.
func (o OutputOptions) resolveCO2Unit(cfg *config.Config) string {
	if o.CO2Unit != "" {
		return o.CO2Unit
	}
	return cfg.Output.CO2Unit
}

// RenderCalculationOutput routes a calculation to the renderer for the format and the
// detected output mode (Plain or Styled). JSON and NDJSON bypass the terminal detection.
func RenderCalculationOutput(w io.Writer, format string, o OutputOptions, report CalculationReport) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, report)
	case config.FormatNDJSON:
		return writeNDJSON(w, []CalculationReport{report})
	}

	switch tui.DetectOutputMode(o.Plain, o.NoColor, false) {
	case tui.OutputModeStyled, tui.OutputModeInteractive:
		return renderStyledOutput(w, report)
	default:
		return renderPlainReport(w, report)
	}
}

// renderStyledOutput renders the boxed Lip Gloss result sized to the terminal.
func renderStyledOutput(w io.Writer, report CalculationReport) error {
	_, err := fmt.Fprintln(w, tui.RenderResult(report.Params, report.Result, tui.TerminalWidth()))
	return err
}

// runCalculatorTUI runs the interactive calculator seeded with p. Switching fuel type
// picks up the configured price for the new type.
func runCalculatorTUI(ctx context.Context, p engine.Params, defaults config.DefaultsConfig) error {
	model := tui.NewCalculatorModel(ctx, p, tui.WithFuelPrices(defaults.FuelPrice))
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

// stdoutFile returns the command's output when it is a file, or nil for buffers.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}
