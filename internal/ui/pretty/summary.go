package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

// RenderSummary writes a short styled report of a tree's shape.
func RenderSummary(w io.Writer, styles *Styles, stats suffixtree.Stats, inputLen int) error {
	rows := []struct {
		key   string
		value int
	}{
		{"input length", inputLen},
		{"nodes", stats.Nodes},
		{"leaves", stats.Leaves},
		{"internal nodes", stats.Internal},
		{"max depth", stats.MaxDepth},
		{"label symbols", stats.LabelSymbols},
	}

	if _, err := fmt.Fprintln(w, styles.SummaryTitle.Render("suffix tree")); err != nil {
		return err
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "  %s %s\n",
			styles.SummaryKey.Render(fmt.Sprintf("%-16s", row.key)),
			styles.SummaryValue.Render(fmt.Sprintf("%d", row.value)))
		if err != nil {
			return err
		}
	}
	return nil
}
