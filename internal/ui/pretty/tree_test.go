package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sufftree/internal/ui/pretty"
	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

func renderPlain(t *testing.T, input string, configure func(*pretty.TreeRenderer)) string {
	t.Helper()

	tree, err := suffixtree.BuildString(input)
	require.NoError(t, err)

	renderer := pretty.NewTreeRenderer(pretty.NewStyles(false))
	if configure != nil {
		configure(renderer)
	}

	var buf strings.Builder
	require.NoError(t, renderer.Render(&buf, tree))
	return buf.String()
}

func TestTreeRenderer_Plain(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "aab", func(r *pretty.TreeRenderer) {
		r.SuffixStarts = true
	})

	want := strings.Join([]string{
		".",
		"├── $  [suffix 3]",
		"├── a",
		"│   ├── ab$  [suffix 0]",
		"│   └── b$  [suffix 1]",
		"└── b$  [suffix 2]",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestTreeRenderer_SuffixLinks(t *testing.T) {
	t.Parallel()

	out := renderPlain(t, "aab", func(r *pretty.TreeRenderer) {
		r.SuffixLinks = true
	})

	// "a" is the only internal node and its link targets the root (n0).
	assert.Contains(t, out, "~> n0")
	assert.Equal(t, 1, strings.Count(out, "~>"))
}

func TestTreeRenderer_TruncatesLongLabels(t *testing.T) {
	t.Parallel()

	// All-distinct symbols put every suffix on a single root edge, so the
	// longest labels exceed any sane terminal width.
	long := "abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGH"
	out := renderPlain(t, long, func(r *pretty.TreeRenderer) {
		r.Width = 40
	})

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long+"$", "the full-length label must not survive truncation")

	// Column accounting counts runes: the branch prefix "├── " occupies
	// four columns, leaving 40-4-2 = 34 for the label.
	assert.Contains(t, out, "├── "+long[:33]+"…")
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	tree, err := suffixtree.BuildString("banana")
	require.NoError(t, err)

	var buf strings.Builder
	err = pretty.RenderSummary(&buf, pretty.NewStyles(false), suffixtree.Summarize(tree), tree.Len())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "suffix tree")
	assert.Contains(t, out, "leaves")
	assert.Contains(t, out, "7")
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}
