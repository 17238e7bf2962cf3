package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/cli"
	"github.com/rshade/fleettco/internal/config"
)

// setupCLITest isolates a test from the user's configuration: FLEETTCO_HOME points at a
// fresh directory, the working directory has no project config and global state is reset
// afterwards. It returns the home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvOutputFormat, "")
	chdir(t, t.TempDir())
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home
}

// executeRoot runs the root command with args and returns what it wrote to stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "fleettco", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, flag := range []string{"debug", "config", "project-dir"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"calculate", "tui", "sweep", "profiles", "config", "setup"})
}

func TestRoot_Version(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestRoot_ExplicitConfigFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	writeFile(t, path, "version: 1.0.0\ndefaults:\n  fuel_type: gasoline\n  fleet: 7\n")

	out, err := executeRoot(t, "--config", path, "calculate", "--output", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, "gasoline", report.Params.FuelType.String())
	assert.Equal(t, 7, report.Params.FleetSize)
}

func TestRoot_ExplicitConfigUnsupportedVersion(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	writeFile(t, path, "version: 2.0.0\n")

	_, err := executeRoot(t, "--config", path, "profiles")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestRoot_ProjectOverlay(t *testing.T) {
	home := setupCLITest(t)
	writeFile(t, filepath.Join(home, "config.yaml"), "version: 1.0.0\ndefaults:\n  fleet: 4\n  years: 2\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".fleettco", "config.yaml"), "defaults:\n  fleet: 12\n")

	out, err := executeRoot(t, "--project-dir", project, "calculate", "--output", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, 12, report.Params.FleetSize, "overlay wins")
	assert.Equal(t, 2, report.Params.UsageYears, "keys the overlay omits keep the global value")
}

func TestRoot_ProjectFoundFromWorkingDirectory(t *testing.T) {
	setupCLITest(t)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".fleettco", "config.yaml"), "defaults:\n  fuel_type: gasoline\n")
	nested := filepath.Join(project, "depots", "south")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	chdir(t, nested)

	out, err := executeRoot(t, "calculate", "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, "gasoline", decodeReport(t, out).Params.FuelType.String())
}

func TestRoot_EnvOutputFormat(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvOutputFormat, "json")

	out, err := executeRoot(t, "calculate")
	require.NoError(t, err)
	assert.InDelta(t, -348968.57, decodeReport(t, out).Result.TotalSavings, 0.01)
}

// chdir changes the working directory for the duration of the test and restores it
// afterwards, mirroring testing.T.Chdir for toolchains that predate it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
