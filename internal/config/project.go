package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/fleettco/internal/logging"
)

// EnvProjectDir points at a project directory holding a .fleettco/config.yaml overlay.
const EnvProjectDir = "FLEETTCO_PROJECT_DIR"

const projectDirName = ".fleettco"

// ResolveProjectDir determines the project-local .fleettco directory. It checks, in order:
//  1. flagValue (--project-dir)
//  2. FLEETTCO_PROJECT_DIR
//  3. a walk up from startDir to the first directory containing .fleettco/config.yaml
//
// The global configuration directory never counts as a project. The result is absolute,
// or empty when no project is found.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	root, err := findProjectRoot(startDir)
	if err != nil {
		return ""
	}
	return filepath.Join(root, projectDirName)
}

var errNoProject = errors.New("no project configuration found")

func findProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	globalDir, _ := GetConfigDir()

	for {
		candidate := filepath.Join(dir, projectDirName)
		if candidate != globalDir {
			if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoProject
		}
		dir = parent
	}
}

// WithProjectOverlay returns a copy of base with projectDir/config.yaml merged on
// top. A missing overlay returns base unchanged; a broken one is logged and ignored.
func WithProjectOverlay(ctx context.Context, base *Config, projectDir string) *Config {
	if projectDir == "" {
		return base
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return base
	}

	merged := *base
	if err := MergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return base
	}
	merged.applyEnvOverrides()

	logging.FromContext(ctx).Debug().
		Str("component", "config").
		Str("overlay_path", overlayPath).
		Msg("applied project config overlay")
	return &merged
}

// toAbsProjectDir makes dir absolute and appends .fleettco unless already present.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}
	return filepath.Join(abs, projectDirName)
}
