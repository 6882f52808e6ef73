package suffixtree

import (
	"cmp"
	"fmt"
	"slices"
)

// Validate exhaustively checks the structural invariants of the tree:
//
//   - every edge range is a non-empty slice of the terminated text and its
//     first symbol matches its key in the parent's child map;
//   - no two sibling edges share a first symbol;
//   - every internal node has at least two children and a suffix link whose
//     target's path label equals this node's path label minus its first
//     symbol;
//   - the leaves cover every suffix start in [0, n] exactly once, and each
//     leaf's root-to-leaf label equals the suffix it represents.
//
// Build output always passes; Validate exists for tests and for consumers
// that layer algorithms on top of the raw node accessors.
func (t *Tree[S]) Validate() error {
	n := t.Len()
	seen := make(map[int]bool, n+1)

	var check func(id NodeID, path []S) error
	check = func(id NodeID, path []S) error {
		nd := t.nodes[id]

		if len(nd.children) == 0 {
			return t.validateLeaf(id, path, seen)
		}
		if id != RootID {
			if err := t.validateInternal(id, path); err != nil {
				return err
			}
		}

		for first, e := range nd.children {
			if e.Start < 0 || e.Start >= e.End || e.End > len(t.text) {
				return fmt.Errorf("%w: edge range [%d,%d) out of bounds under node %d",
					ErrInvariant, e.Start, e.End, id)
			}
			if t.text[e.Start] != first {
				return fmt.Errorf("%w: edge under node %d keyed %v but labeled %v",
					ErrInvariant, id, first, t.text[e.Start])
			}
			if err := check(e.Child, append(path, t.text[e.Start:e.End]...)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := check(RootID, nil); err != nil {
		return err
	}

	for i := 0; i <= n; i++ {
		if !seen[i] {
			return fmt.Errorf("%w: no leaf for suffix start %d", ErrInvariant, i)
		}
	}
	return nil
}

func (t *Tree[S]) validateLeaf(id NodeID, path []S, seen map[int]bool) error {
	start, ok := t.SuffixStart(id)
	if !ok || start < 0 || start > t.Len() {
		return fmt.Errorf("%w: leaf %d has suffix start %d outside [0,%d]",
			ErrInvariant, id, start, t.Len())
	}
	if seen[start] {
		return fmt.Errorf("%w: suffix start %d claimed by two leaves", ErrInvariant, start)
	}
	seen[start] = true

	if !slices.Equal(path, t.text[start:]) {
		return fmt.Errorf("%w: leaf %d path label does not spell the suffix at %d",
			ErrInvariant, id, start)
	}
	return nil
}

func (t *Tree[S]) validateInternal(id NodeID, path []S) error {
	if len(t.nodes[id].children) < 2 {
		return fmt.Errorf("%w: internal node %d has fewer than two children",
			ErrInvariant, id)
	}

	link, ok := t.SuffixLink(id)
	if !ok {
		return fmt.Errorf("%w: internal node %d has no suffix link", ErrInvariant, id)
	}
	if !slices.Equal(t.PathLabel(link), path[1:]) {
		return fmt.Errorf("%w: suffix link of node %d does not drop exactly the first symbol",
			ErrInvariant, id)
	}
	return nil
}

// Stats summarizes the shape of a tree.
type Stats struct {
	// Nodes is the total node count, root and leaves included.
	Nodes int
	// Leaves is the leaf count; always Len()+1 for a valid tree.
	Leaves int
	// Internal is the count of non-root branching nodes.
	Internal int
	// MaxDepth is the number of edges on the deepest root-to-leaf path.
	MaxDepth int
	// LabelSymbols is the sum of all edge label lengths.
	LabelSymbols int
}

// Summarize walks the tree once and returns its Stats.
func Summarize[S cmp.Ordered](t *Tree[S]) Stats {
	var s Stats

	//nolint:errcheck // the callback never returns an error
	Walk(t, func(id NodeID, depth int) error {
		s.Nodes++
		switch {
		case t.IsLeaf(id):
			s.Leaves++
			s.MaxDepth = max(s.MaxDepth, depth)
		case id != RootID:
			s.Internal++
		}
		if e, ok := t.ParentEdge(id); ok {
			s.LabelSymbols += e.Len()
		}
		return nil
	})

	return s
}
