package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// sufftreeConfigFiles are the project config file names we search for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sufftreeConfigFiles = []string{
	".sufftree.yaml",
	".sufftree.yml",
	"sufftree.yaml",
	"sufftree.yml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from startDir for a project config file.
// Returns the path of the first file found, or an empty string if none.
// The search stops after a directory containing a VCS root marker, or at the
// filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range sufftreeConfigFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", nil
		}
		currentDir = parent
	}
}

func isVCSRoot(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() && slices.Contains(vcsRootMarkers, entry.Name()) {
			return true
		}
	}
	return false
}
