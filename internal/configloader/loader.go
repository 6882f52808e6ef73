// Package configloader discovers and loads the sufftree configuration.
// Precedence, lowest to highest: built-in defaults, discovered project file,
// SUFFTREE_CONFIG, --config, CLI flags (applied by the command itself).
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/sufftree/internal/logging"
	"github.com/yaklabco/sufftree/pkg/config"
)

// EnvConfigPath is the environment variable naming a config file to load.
const EnvConfigPath = "SUFFTREE_CONFIG"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where project config discovery starts.
	WorkingDir string

	// ExplicitPath is a config file named via --config; it must exist.
	ExplicitPath string
}

// Result is the outcome of loading.
type Result struct {
	// Config is the merged configuration, starting from defaults.
	Config *config.Config

	// LoadedFrom is the path of the file that was applied, if any.
	LoadedFrom string
}

// Load resolves which config file to use, parses it and merges it over the
// defaults. A missing discovered file is not an error; a missing explicit or
// env-named file is.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	path, required, err := resolvePath(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Config: config.Default()}
	if path == "" {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	fileCfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	result.Config.Merge(fileCfg)
	result.LoadedFrom = path

	logging.FromContext(ctx).Debug("configuration loaded",
		logging.FieldPath, path)
	return result, nil
}

// resolvePath picks the config file to read. required reports whether the
// path came from an explicit source that must exist.
func resolvePath(ctx context.Context, opts LoadOptions) (path string, required bool, err error) {
	if opts.ExplicitPath != "" {
		if !fileExists(opts.ExplicitPath) {
			return "", false, fmt.Errorf("config file not found: %s", opts.ExplicitPath)
		}
		return opts.ExplicitPath, true, nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if !fileExists(envPath) {
			return "", false, fmt.Errorf("config file named by %s not found: %s", EnvConfigPath, envPath)
		}
		return envPath, true, nil
	}

	discovered, err := FindProjectConfig(ctx, opts.WorkingDir)
	if err != nil {
		return "", false, err
	}
	return discovered, false, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
