package suffixtree

import (
	"cmp"
	"fmt"
	"slices"
)

// extension is the outcome of a single extension step within a phase.
type extension int

const (
	// extInserted: rule 2a, a new leaf was attached to the active node.
	extInserted extension = iota
	// extSplit: rule 2b, an edge was split and a new leaf inserted below
	// the fresh internal node.
	extSplit
	// extPresent: rule 1/3, the symbol already continues an existing edge;
	// the phase ends here.
	extPresent
)

// builder holds the mutable construction state: the node arena, the active
// point cursor and the bookkeeping counters of Ukkonen's algorithm.
type builder[S cmp.Ordered] struct {
	text  []S
	nodes []node[S]

	// Active point: the implicit position reached by the longest suffix of
	// the processed prefix that is not yet an explicit path from the root.
	// activeEdge is the text index of the first symbol on the active edge;
	// it is meaningful only while activeLen > 0.
	activeNode NodeID
	activeEdge int
	activeLen  int

	// remaining counts the suffixes still needing explicit insertion in
	// the current phase.
	remaining int

	// end is the global end shared by every open leaf edge, exclusive.
	// Advancing it once per phase extends all open leaves at once (rule 1).
	end int

	// needLink is the internal node created by the previous split in this
	// phase, still waiting for its suffix link.
	needLink NodeID
}

// Build constructs the suffix tree of text over an arbitrary ordered
// alphabet. The terminator must not occur in text; it is appended so that
// every suffix of the terminated text ends at a distinct leaf. Construction
// runs in time and space linear in len(text).
//
// Build either returns a complete tree or fails atomically: malformed input
// is rejected with ErrInvalidInput before any work starts, and an invariant
// violation aborts with ErrInvariant without exposing the partial tree.
func Build[S cmp.Ordered](text []S, terminator S, opts ...Option[S]) (*Tree[S], error) {
	var cfg buildConfig[S]
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkInput(text, terminator, &cfg); err != nil {
		return nil, err
	}

	b := &builder[S]{
		text:       append(slices.Clone(text), terminator),
		activeNode: RootID,
		needLink:   noNode,
	}
	b.nodes = append(b.nodes, node[S]{
		children:    make(map[S]Edge[S]),
		link:        noNode,
		parent:      noNode,
		suffixStart: -1,
	})

	for pos := range b.text {
		if err := b.extend(pos); err != nil {
			return nil, err
		}
	}
	b.freeze()

	return &Tree[S]{text: b.text, nodes: b.nodes}, nil
}

// BuildString builds the suffix tree of s over runes. The terminator
// defaults to '$' and can be changed with WithTerminator.
func BuildString(s string, opts ...Option[rune]) (*Tree[rune], error) {
	var cfg buildConfig[rune]
	for _, opt := range opts {
		opt(&cfg)
	}
	terminator := rune(DefaultTerminator)
	if cfg.terminator != nil {
		terminator = *cfg.terminator
	}
	return Build([]rune(s), terminator, opts...)
}

// checkInput rejects input containing the reserved terminator or symbols
// outside a declared alphabet. Runs before any construction work.
func checkInput[S cmp.Ordered](text []S, terminator S, cfg *buildConfig[S]) error {
	for i, s := range text {
		if s == terminator {
			return fmt.Errorf("%w: reserved terminator %v occurs at index %d",
				ErrInvalidInput, s, i)
		}
		if cfg.alphabet != nil && !cfg.alphabet(s) {
			return fmt.Errorf("%w: symbol %v at index %d outside %s alphabet",
				ErrInvalidInput, s, i, cfg.alphabetName)
		}
	}
	return nil
}

// extend runs one phase: it consumes the symbol at pos, advancing the global
// end (which implicitly extends every open leaf, rule 1) and then performing
// explicit extensions until either every pending suffix is inserted or the
// symbol is found to be already present (rule 3), which ends the phase early.
// The early exit is what keeps the total work across all phases linear.
func (b *builder[S]) extend(pos int) error {
	b.end = pos + 1
	b.remaining++
	b.needLink = noNode
	c := b.text[pos]

	for b.remaining > 0 {
		if b.activeLen == 0 {
			b.activeEdge = pos
		}

		var out extension
		e, ok := b.nodes[b.activeNode].children[b.text[b.activeEdge]]
		if !ok {
			// Rule 2a: no edge starts with the symbol; attach a new
			// open leaf directly to the active node.
			leaf := b.newLeaf(pos)
			if err := b.attach(b.activeNode, Edge[S]{Start: pos, End: openEnd, Child: leaf}); err != nil {
				return err
			}
			if err := b.resolveLink(b.activeNode); err != nil {
				return err
			}
			out = extInserted
		} else {
			if b.walkDown(e) {
				// Canonize: the active point moved past this
				// edge; retry from the child.
				continue
			}
			if b.text[e.Start+b.activeLen] == c {
				// Rule 1/3: the symbol already continues the
				// edge. Extend the active point and stop the
				// phase. A node split in the previous extension
				// links here: canonization has already landed
				// the active point on its link target.
				b.activeLen++
				if err := b.resolveLink(b.activeNode); err != nil {
					return err
				}
				out = extPresent
			} else {
				// Rule 2b: mismatch inside the edge; split it
				// and hang a new leaf off the fresh internal
				// node.
				internal, err := b.split(e, pos)
				if err != nil {
					return err
				}
				if err := b.resolveLink(internal); err != nil {
					return err
				}
				b.needLink = internal
				out = extSplit
			}
		}

		if out == extPresent {
			return nil
		}

		b.remaining--
		if b.activeNode == RootID && b.activeLen > 0 {
			// At the root the next shorter suffix is reached by
			// dropping the leading symbol of the active edge.
			b.activeLen--
			b.activeEdge = pos - b.remaining + 1
		} else if b.activeNode != RootID {
			// Elsewhere, hop the suffix link (root when absent).
			if link := b.nodes[b.activeNode].link; link != noNode {
				b.activeNode = link
			} else {
				b.activeNode = RootID
			}
		}
	}
	return nil
}

// walkDown canonizes one step: if the active length spans the whole edge,
// descend to its child and charge the step against the global descent budget.
func (b *builder[S]) walkDown(e Edge[S]) bool {
	length := b.edgeLen(e)
	if b.activeLen < length {
		return false
	}
	b.activeEdge += length
	b.activeLen -= length
	b.activeNode = e.Child
	return true
}

// edgeLen returns the current label length of an edge, deriving open leaf
// edges from the global end.
func (b *builder[S]) edgeLen(e Edge[S]) int {
	if e.End == openEnd {
		return b.end - e.Start
	}
	return e.End - e.Start
}

// split rewrites e to end after activeLen symbols, pointing at a fresh
// internal node, reattaches the original child below it and adds a new open
// leaf for the current position. This is the only structural mutation besides
// attaching a fresh leaf.
func (b *builder[S]) split(e Edge[S], pos int) (NodeID, error) {
	splitAt := e.Start + b.activeLen

	internal := b.newInternal()
	b.nodes[b.activeNode].children[b.text[e.Start]] = Edge[S]{Start: e.Start, End: splitAt, Child: internal}
	b.setParent(internal, b.activeNode, b.text[e.Start])

	if err := b.attach(internal, Edge[S]{Start: splitAt, End: e.End, Child: e.Child}); err != nil {
		return noNode, err
	}

	leaf := b.newLeaf(pos)
	if err := b.attach(internal, Edge[S]{Start: pos, End: openEnd, Child: leaf}); err != nil {
		return noNode, err
	}
	return internal, nil
}

// attach inserts an outgoing edge. Two sibling edges sharing a first symbol
// would break the core branching invariant of a suffix tree, so that is
// reported as an invariant violation rather than tolerated.
func (b *builder[S]) attach(parent NodeID, e Edge[S]) error {
	first := b.text[e.Start]
	if _, dup := b.nodes[parent].children[first]; dup {
		return fmt.Errorf("%w: duplicate branch on %v under node %d",
			ErrInvariant, first, parent)
	}
	b.nodes[parent].children[first] = e
	b.setParent(e.Child, parent, first)
	return nil
}

// resolveLink assigns the pending suffix link, if any, to target. A suffix
// link is defined exactly once per internal node.
func (b *builder[S]) resolveLink(target NodeID) error {
	if b.needLink == noNode {
		return nil
	}
	if b.nodes[b.needLink].link != noNode {
		return fmt.Errorf("%w: suffix link of node %d assigned twice",
			ErrInvariant, b.needLink)
	}
	b.nodes[b.needLink].link = target
	b.needLink = noNode
	return nil
}

func (b *builder[S]) setParent(child, parent NodeID, first S) {
	b.nodes[child].parent = parent
	b.nodes[child].parentFirst = first
}

// newLeaf allocates a leaf for the suffix currently being inserted. During
// phase pos with r suffixes pending, that suffix starts at pos+1-r.
func (b *builder[S]) newLeaf(pos int) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node[S]{
		link:        noNode,
		parent:      noNode,
		suffixStart: int32(pos + 1 - b.remaining),
	})
	return id
}

func (b *builder[S]) newInternal() NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node[S]{
		children:    make(map[S]Edge[S], 2),
		link:        noNode,
		parent:      noNode,
		suffixStart: -1,
	})
	return id
}

// freeze pins every open leaf edge to the final global end, so the published
// tree carries concrete ranges only.
func (b *builder[S]) freeze() {
	final := len(b.text)
	for i := range b.nodes {
		for first, e := range b.nodes[i].children {
			if e.End == openEnd {
				e.End = final
				b.nodes[i].children[first] = e
			}
		}
	}
}
