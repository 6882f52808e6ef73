package export_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sufftree/pkg/export"
)

func TestText_Export(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "aab")
	var buf strings.Builder

	exporter := export.NewText(export.Runes, export.Options{Writer: &buf, SuffixStarts: true})
	require.NoError(t, exporter.Export(context.Background(), tree))

	// Children of every node are emitted in first-symbol order, so the
	// outline is fully deterministic.
	want := strings.Join([]string{
		".",
		"├── $  [suffix 3]",
		"├── a",
		"│   ├── ab$  [suffix 0]",
		"│   └── b$  [suffix 1]",
		"└── b$  [suffix 2]",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestText_NoAnnotations(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "aab")
	var buf strings.Builder

	exporter := export.NewText(export.Runes, export.Options{Writer: &buf})
	require.NoError(t, exporter.Export(context.Background(), tree))

	assert.NotContains(t, buf.String(), "[suffix")
}

func TestText_EmptyInput(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "")
	var buf strings.Builder

	exporter := export.NewText(export.Runes, export.Options{Writer: &buf})
	require.NoError(t, exporter.Export(context.Background(), tree))

	want := ".\n└── $\n"
	assert.Equal(t, want, buf.String())
}
