package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sufftree/internal/configloader"
	"github.com/yaklabco/sufftree/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_NoConfigAnywhere(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, config.Default(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".sufftree.yaml")
	writeFile(t, path, "format: dot\nsuffix_links: true\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, config.FormatDOT, result.Config.Format)
	assert.True(t, result.Config.SuffixLinksEnabled())
	assert.Equal(t, "$", result.Config.Terminator, "defaults survive the merge")
}

func TestLoad_ExplicitFalseOverridesDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".sufftree.yaml"), "suffix_starts: false\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.False(t, result.Config.SuffixStartsEnabled(),
		"a file-level false must beat the true default")
}

func TestLoad_DiscoversUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".sufftree.yml"), "format: text\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: nested})
	require.NoError(t, err)

	assert.Equal(t, config.FormatText, result.Config.Format)
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".sufftree.yaml"), "format: text\n")
	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: project})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom, "config above the VCS root must not apply")
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".sufftree.yaml"), "format: text\n")
	explicit := filepath.Join(dir, "other.yaml")
	writeFile(t, explicit, "format: stats\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatStats, result.Config.Format)
	assert.Equal(t, explicit, result.LoadedFrom)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	assert.Error(t, err)
}

func TestLoad_EnvPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	envFile := filepath.Join(dir, "env.yaml")
	writeFile(t, envFile, "lowercase: true\n")

	t.Setenv(configloader.EnvConfigPath, envFile)

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.True(t, result.Config.LowercaseEnabled())
	assert.Equal(t, envFile, result.LoadedFrom)
}

func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".sufftree.yaml"), "format: [broken\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}
