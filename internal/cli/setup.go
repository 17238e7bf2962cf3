package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/fleettco/internal/config"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/locale"
	"github.com/rshade/fleettco/internal/logging"
	"github.com/rshade/fleettco/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipConfig     bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// dirPermBase is the permission mode for the base and log directories.
const dirPermBase = 0o700

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the top-level setup command that bootstraps the fleettco
// environment.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the fleettco environment",
		Long: `Sets up the fleettco environment by creating the configuration and log
directories, writing the default configuration and checking that the calculator
runs with it.

This command is idempotent. Existing configuration files are preserved.`,
		Example: `  # Full setup
  fleettco setup

  # CI/CD setup (no TTY-dependent output)
  fleettco setup --non-interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols, color)")
	cmd.Flags().BoolVar(&opts.SkipConfig, "skip-config", false,
		"Do not write a configuration file")

	return cmd
}

// runSetup runs every step in order, collecting results. A failing step does not stop
// the following ones; the command fails only if a critical step failed.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	result := &SetupResult{}
	record := func(steps ...StepResult) {
		for _, s := range steps {
			printStep(cmd, s, opts.NonInteractive)
			result.Steps = append(result.Steps, s)
		}
	}

	record(stepDisplayVersion())
	record(stepCreateDirectories()...)

	if opts.SkipConfig {
		record(StepResult{
			Name:    "Config initialization",
			Status:  StepSkipped,
			Message: "Skipped config initialization",
		})
	} else {
		record(stepInitConfig())
	}
	record(stepCheckCalculation())

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "setup").
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'fleettco calculate' to compare your fleet.")
	}
}

// stepDisplayVersion reports the fleettco version and Go runtime.
func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("fleettco %s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the configuration directory and its logs directory.
// Returns one StepResult per directory.
func stepCreateDirectories() []StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return []StepResult{{
			Name:     "Directory creation",
			Status:   StepError,
			Message:  fmt.Sprintf("Cannot resolve config directory: %v\n  Try: export %s=/path/to/dir", err, config.EnvHome),
			Critical: true,
			Err:      err,
		}}
	}

	dirs := []string{baseDir, filepath.Join(baseDir, "logs")}

	results := make([]StepResult, 0, len(dirs))
	for _, dir := range dirs {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(dir, dirPermBase); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export %s=/path/to/writable/directory",
					dir, mkErr, config.EnvHome,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig writes the default config file if none exists. An existing file is
// kept and validated; an invalid one is reported as a warning.
func stepInitConfig() StepResult {
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Cannot resolve config path: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		return checkExistingConfig(configPath)
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err = cfg.Save(); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", configPath),
		Critical: true,
	}
}

func checkExistingConfig(configPath string) StepResult {
	cfg, err := config.LoadFile(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return StepResult{
			Name:   "Config initialization",
			Status: StepWarning,
			Message: fmt.Sprintf("Config already exists but is invalid (%s): %v\n  Try: fleettco config init --force",
				configPath, err),
			Err: err,
		}
	}
	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Config already exists (%s)", configPath),
		Critical: true,
	}
}

// stepCheckCalculation runs the default scenario from the configuration on disk.
func stepCheckCalculation() StepResult {
	cfg := config.New()
	p := cfg.Defaults.Params(cfg.Defaults.Fuel())
	if err := p.Validate(); err != nil {
		return StepResult{
			Name:    "Calculation check",
			Status:  StepWarning,
			Message: fmt.Sprintf("Configured defaults are not usable: %v", err),
			Err:     err,
		}
	}

	r := engine.Compute(p)
	return StepResult{
		Name:   "Calculation check",
		Status: StepSuccess,
		Message: fmt.Sprintf("Default scenario computed: %s vs electric, savings %s",
			r.FuelType.DisplayName(), locale.FormatCurrency(r.TotalSavings)),
	}
}
