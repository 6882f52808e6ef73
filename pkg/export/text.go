package export

import (
	"bufio"
	"cmp"
	"context"
	"fmt"

	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

// TextExporter renders a suffix tree as an indented outline, one edge per
// line, children in first-symbol order.
type TextExporter[S cmp.Ordered] struct {
	opts   Options
	format LabelFunc[S]
}

// NewText creates a plain-text exporter. A nil format falls back to
// %v-formatted, space-separated symbols.
func NewText[S cmp.Ordered](format LabelFunc[S], opts Options) *TextExporter[S] {
	if format == nil {
		format = genericLabel[S]
	}
	return &TextExporter[S]{opts: opts, format: format}
}

// Export writes the outline. The root renders as a lone dot.
func (e *TextExporter[S]) Export(ctx context.Context, t *suffixtree.Tree[S]) (err error) {
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	bw := bufio.NewWriterSize(e.opts.Writer, bufWriterSize)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", ferr)
		}
	}()

	fmt.Fprintln(bw, ".")
	e.writeChildren(bw, t, t.Root(), "")
	return nil
}

func (e *TextExporter[S]) writeChildren(bw *bufio.Writer, t *suffixtree.Tree[S], id suffixtree.NodeID, prefix string) {
	kids := t.Children(id)
	for i, edge := range kids {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(kids)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		line := prefix + connector + e.format(t.EdgeLabel(edge))
		if start, ok := t.SuffixStart(edge.Child); ok && e.opts.SuffixStarts {
			line += fmt.Sprintf("  [suffix %d]", start)
		}
		fmt.Fprintln(bw, line)

		e.writeChildren(bw, t, edge.Child, childPrefix)
	}
}
