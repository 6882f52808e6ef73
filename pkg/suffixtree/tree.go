// Package suffixtree builds suffix trees in time linear in the input length
// using Ukkonen's on-line construction algorithm.
//
// A suffix tree is a compressed trie of every suffix of a string. Edge labels
// are never copied: each edge carries a half-open index range into the
// terminated input text. A terminator symbol that does not occur in the input
// is appended during construction so that every suffix ends at a distinct
// leaf.
//
// The tree returned by Build is immutable and safe for concurrent readers.
package suffixtree

import (
	"cmp"
	"slices"
)

// NodeID addresses a node in the tree's arena. IDs are stable for the
// lifetime of the tree and dense in [0, NodeCount).
type NodeID int32

// RootID is the id of the root node of every tree.
const RootID NodeID = 0

// noNode marks an absent node reference (no parent, no suffix link).
const noNode NodeID = -1

// openEnd marks a leaf edge that still grows with the builder's global end.
// Frozen to the terminated text length before a tree is handed out.
const openEnd = -1

// Edge is a labeled connection to a child node. The label is the half-open
// range [Start, End) of the terminated text.
type Edge[S cmp.Ordered] struct {
	Start int
	End   int
	Child NodeID
}

// Len returns the label length of the edge.
func (e Edge[S]) Len() int {
	return e.End - e.Start
}

// node is an arena entry. Nodes reference each other by index rather than by
// pointer, which keeps the child edges, parent back-references and suffix
// links free of ownership cycles.
type node[S cmp.Ordered] struct {
	// children maps the first symbol of each outgoing edge label to the
	// edge. Nil for leaves.
	children map[S]Edge[S]

	// link is the suffix link for internal nodes, noNode otherwise.
	link NodeID

	// parent and parentFirst locate the incoming edge inside the parent's
	// children map. noNode for the root.
	parent      NodeID
	parentFirst S

	// suffixStart is the starting index of the suffix a leaf represents,
	// -1 for the root and internal nodes.
	suffixStart int32
}

// Tree is an immutable suffix tree over a terminated text.
type Tree[S cmp.Ordered] struct {
	text  []S
	nodes []node[S]
}

// Root returns the id of the root node.
func (t *Tree[S]) Root() NodeID {
	return RootID
}

// Len returns the length of the original input, excluding the terminator.
func (t *Tree[S]) Len() int {
	return len(t.text) - 1
}

// Text returns a copy of the terminated text the tree was built from.
func (t *Tree[S]) Text() []S {
	return slices.Clone(t.text)
}

// Terminator returns the terminator symbol appended during construction.
func (t *Tree[S]) Terminator() S {
	return t.text[len(t.text)-1]
}

// NodeCount returns the total number of nodes, including root and leaves.
func (t *Tree[S]) NodeCount() int {
	return len(t.nodes)
}

// LeafCount returns the number of leaves. A tree over an input of length n
// always has n+1 leaves, one per suffix of the terminated text.
func (t *Tree[S]) LeafCount() int {
	count := 0
	for i := range t.nodes {
		if len(t.nodes[i].children) == 0 {
			count++
		}
	}
	return count
}

// IsLeaf reports whether id is a leaf.
func (t *Tree[S]) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}

// IsInternal reports whether id is an internal node (neither root nor leaf).
func (t *Tree[S]) IsInternal(id NodeID) bool {
	return id != RootID && !t.IsLeaf(id)
}

// Children returns the outgoing edges of a node, sorted by the first symbol
// of their labels. The result is a fresh slice; mutating it does not affect
// the tree.
func (t *Tree[S]) Children(id NodeID) []Edge[S] {
	kids := t.nodes[id].children
	if len(kids) == 0 {
		return nil
	}
	out := make([]Edge[S], 0, len(kids))
	for _, e := range kids {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge[S]) int {
		return cmp.Compare(t.text[a.Start], t.text[b.Start])
	})
	return out
}

// ChildAlong returns the outgoing edge of id whose label starts with s.
func (t *Tree[S]) ChildAlong(id NodeID, s S) (Edge[S], bool) {
	e, ok := t.nodes[id].children[s]
	return e, ok
}

// EdgeLabel materializes the label of an edge as a fresh symbol slice.
// O(label length).
func (t *Tree[S]) EdgeLabel(e Edge[S]) []S {
	return slices.Clone(t.text[e.Start:e.End])
}

// Parent returns the parent of id. The second result is false for the root.
func (t *Tree[S]) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != noNode
}

// ParentEdge returns the incoming edge of id. The second result is false for
// the root.
func (t *Tree[S]) ParentEdge(id NodeID) (Edge[S], bool) {
	n := t.nodes[id]
	if n.parent == noNode {
		return Edge[S]{}, false
	}
	return t.nodes[n.parent].children[n.parentFirst], true
}

// PathLabel returns the concatenation of edge labels on the root-to-id path.
// For a leaf this is exactly the suffix of the terminated text starting at
// its SuffixStart.
func (t *Tree[S]) PathLabel(id NodeID) []S {
	var edges []Edge[S]
	total := 0
	for id != RootID {
		e, _ := t.ParentEdge(id)
		edges = append(edges, e)
		total += e.Len()
		id = t.nodes[id].parent
	}
	out := make([]S, 0, total)
	for i := len(edges) - 1; i >= 0; i-- {
		out = append(out, t.text[edges[i].Start:edges[i].End]...)
	}
	return out
}

// SuffixStart returns the starting index in the original text of the suffix
// a leaf represents. The second result is false for non-leaf nodes.
func (t *Tree[S]) SuffixStart(id NodeID) (int, bool) {
	if !t.IsLeaf(id) {
		return 0, false
	}
	return int(t.nodes[id].suffixStart), true
}

// SuffixLink returns the suffix link target of an internal node: the node
// whose path label equals this node's path label with its first symbol
// removed. The second result is false for the root and for leaves.
// Exposed read-only so consumers can build linear-time pattern algorithms.
func (t *Tree[S]) SuffixLink(id NodeID) (NodeID, bool) {
	link := t.nodes[id].link
	return link, link != noNode
}

// Leaves returns the ids of all leaves in arena (creation) order.
func (t *Tree[S]) Leaves() []NodeID {
	var out []NodeID
	for i := range t.nodes {
		if len(t.nodes[i].children) == 0 {
			out = append(out, NodeID(i))
		}
	}
	return out
}
