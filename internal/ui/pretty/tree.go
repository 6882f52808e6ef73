package pretty

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

// minLabelWidth is the narrowest we will squeeze an edge label before giving
// up on truncation entirely.
const minLabelWidth = 8

// TreeRenderer draws a suffix tree as a styled outline.
type TreeRenderer struct {
	styles *Styles

	// Width is the terminal width used to truncate long edge labels;
	// 0 disables truncation.
	Width int

	// SuffixStarts annotates each leaf with the suffix it represents.
	SuffixStarts bool

	// SuffixLinks annotates internal nodes with their suffix link target.
	SuffixLinks bool
}

// NewTreeRenderer creates a renderer using the given styles.
func NewTreeRenderer(styles *Styles) *TreeRenderer {
	return &TreeRenderer{styles: styles}
}

// Render writes the styled outline of the tree.
func (r *TreeRenderer) Render(w io.Writer, t *suffixtree.Tree[rune]) error {
	if _, err := fmt.Fprintln(w, r.styles.Bold.Render(".")); err != nil {
		return err
	}
	return r.renderChildren(w, t, t.Root(), "")
}

func (r *TreeRenderer) renderChildren(w io.Writer, t *suffixtree.Tree[rune], id suffixtree.NodeID, prefix string) error {
	kids := t.Children(id)
	for i, edge := range kids {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(kids)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		// Box-drawing runes are multi-byte; column accounting must
		// count runes, not bytes.
		line := r.styles.Branch.Render(prefix+connector) +
			r.renderLabel(t, edge, utf8.RuneCountInString(prefix+connector))

		if r.SuffixStarts {
			if start, ok := t.SuffixStart(edge.Child); ok {
				line += "  " + r.styles.SuffixTag.Render(fmt.Sprintf("[suffix %d]", start))
			}
		}
		if r.SuffixLinks && t.IsInternal(edge.Child) {
			if link, ok := t.SuffixLink(edge.Child); ok {
				line += "  " + r.styles.LinkTag.Render(fmt.Sprintf("~> n%d", link))
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := r.renderChildren(w, t, edge.Child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

// renderLabel styles one edge label, highlighting the terminator and
// truncating what will not fit on the line.
func (r *TreeRenderer) renderLabel(t *suffixtree.Tree[rune], edge suffixtree.Edge[rune], used int) string {
	label := t.EdgeLabel(edge)

	if r.Width > 0 {
		room := max(r.Width-used-2, minLabelWidth)
		if len(label) > room {
			label = append(label[:room-1], '…')
		}
	}

	term := t.Terminator()
	if label[len(label)-1] == term {
		return r.styles.EdgeLabel.Render(string(label[:len(label)-1])) +
			r.styles.Terminator.Render(string(term))
	}
	return r.styles.EdgeLabel.Render(string(label))
}
