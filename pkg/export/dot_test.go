package export_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sufftree/pkg/export"
	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

func buildTestTree(t *testing.T, input string) *suffixtree.Tree[rune] {
	t.Helper()
	tree, err := suffixtree.BuildString(input)
	require.NoError(t, err)
	return tree
}

func TestDOT_Export(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "banana")
	var buf strings.Builder

	exporter := export.NewDOT(export.Runes, export.Options{Writer: &buf})
	require.NoError(t, exporter.Export(context.Background(), tree))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph suffixtree {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	assert.Contains(t, out, "rankdir=LR")
	assert.Contains(t, out, `[label="banana$"]`)
	assert.Contains(t, out, `[label="na"]`)
	assert.NotContains(t, out, "style=dashed", "suffix links are off by default")

	// One edge line per non-root node.
	assert.Equal(t, tree.NodeCount()-1, strings.Count(out, " -> "))
}

func TestDOT_SuffixLinks(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "banana")
	var buf strings.Builder

	exporter := export.NewDOT(export.Runes, export.Options{Writer: &buf, SuffixLinks: true})
	require.NoError(t, exporter.Export(context.Background(), tree))

	internal := suffixtree.FindAll(tree, tree.IsInternal)
	assert.Equal(t, len(internal), strings.Count(buf.String(), "style=dashed"))
}

func TestDOT_SuffixStarts(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "ab")
	var buf strings.Builder

	exporter := export.NewDOT(export.Runes, export.Options{Writer: &buf, SuffixStarts: true})
	require.NoError(t, exporter.Export(context.Background(), tree))

	out := buf.String()
	for _, want := range []string{`label="0"`, `label="1"`, `label="2"`} {
		assert.Contains(t, out, want)
	}
}

func TestDOT_CancelledContext(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "ab")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exporter := export.NewDOT(export.Runes, export.Options{Writer: &strings.Builder{}})
	assert.Error(t, exporter.Export(ctx, tree))
}

func TestDOT_GenericLabelFallback(t *testing.T) {
	t.Parallel()

	tree, err := suffixtree.Build([]int{7, 7, 9}, -1)
	require.NoError(t, err)

	var buf strings.Builder
	exporter := export.NewDOT[int](nil, export.Options{Writer: &buf})
	require.NoError(t, exporter.Export(context.Background(), tree))

	assert.Contains(t, buf.String(), `"9 -1"`)
}
