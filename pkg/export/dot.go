package export

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

// DOTExporter renders a suffix tree in graphviz DOT format. Feed the output
// to `dot -Tsvg` (or any graphviz frontend); running graphviz itself stays
// outside this package.
type DOTExporter[S cmp.Ordered] struct {
	opts   Options
	format LabelFunc[S]
}

// NewDOT creates a DOT exporter. A nil format falls back to %v-formatted,
// space-separated symbols; rune and byte trees should pass Runes or Bytes.
func NewDOT[S cmp.Ordered](format LabelFunc[S], opts Options) *DOTExporter[S] {
	if format == nil {
		format = genericLabel[S]
	}
	return &DOTExporter[S]{opts: opts, format: format}
}

// Export writes the whole tree as a digraph. Internal nodes render as small
// unlabeled circles, leaves as points (optionally annotated with their suffix
// start), edges carry their materialized labels.
func (e *DOTExporter[S]) Export(ctx context.Context, t *suffixtree.Tree[S]) (err error) {
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

	fmt.Fprintln(bw, "digraph suffixtree {")
	fmt.Fprintln(bw, "\tgraph [rankdir=LR bgcolor=transparent];")
	fmt.Fprintln(bw, "\tnode [shape=circle width=0.3 fixedsize=true fontsize=10];")
	fmt.Fprintln(bw, "\tedge [fontsize=11];")
	fmt.Fprintf(bw, "\tn%d [shape=doublecircle label=\"\"];\n", t.Root())

	walkErr := suffixtree.Walk(t, func(id suffixtree.NodeID, _ int) error {
		if id != t.Root() {
			e.writeNode(bw, t, id)
		}
		for _, edge := range t.Children(id) {
			label := strconv.Quote(e.format(t.EdgeLabel(edge)))
			fmt.Fprintf(bw, "\tn%d -> n%d [label=%s];\n", id, edge.Child, label)
		}
		if e.opts.SuffixLinks {
			if link, ok := t.SuffixLink(id); ok {
				fmt.Fprintf(bw, "\tn%d -> n%d [style=dashed constraint=false];\n", id, link)
			}
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	fmt.Fprintln(bw, "}")
	return nil
}

func (e *DOTExporter[S]) writeNode(bw *bufio.Writer, t *suffixtree.Tree[S], id suffixtree.NodeID) {
	start, isLeaf := t.SuffixStart(id)
	switch {
	case isLeaf && e.opts.SuffixStarts:
		fmt.Fprintf(bw, "\tn%d [shape=plaintext label=\"%d\"];\n", id, start)
	case isLeaf:
		fmt.Fprintf(bw, "\tn%d [shape=point];\n", id)
	default:
		fmt.Fprintf(bw, "\tn%d [label=\"\"];\n", id)
	}
}
