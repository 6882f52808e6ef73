package suffixtree

import (
	"cmp"
	"errors"
)

// WalkFunc is the function signature for Walk callbacks. depth is the number
// of edges between the root and the visited node. Return a non-nil error to
// stop the walk.
type WalkFunc func(id NodeID, depth int) error

// Walk performs a deterministic pre-order traversal of the tree, visiting
// children in first-symbol order. If fn returns a non-nil error the walk
// stops immediately and returns that error.
func Walk[S cmp.Ordered](t *Tree[S], fn WalkFunc) error {
	return walkNode(t, RootID, 0, fn)
}

func walkNode[S cmp.Ordered](t *Tree[S], id NodeID, depth int, fn WalkFunc) error {
	if err := fn(id, depth); err != nil {
		return err
	}
	for _, e := range t.Children(id) {
		if err := walkNode(t, e.Child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll[S cmp.Ordered](t *Tree[S], predicate func(NodeID) bool) []NodeID {
	var result []NodeID

	//nolint:errcheck // the callback never returns an error
	Walk(t, func(id NodeID, _ int) error {
		if predicate(id) {
			result = append(result, id)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node in pre-order matching the predicate, or
// false if none does.
func FindFirst[S cmp.Ordered](t *Tree[S], predicate func(NodeID) bool) (NodeID, bool) {
	found := noNode

	//nolint:errcheck // errStopWalk is expected and intentionally swallowed
	Walk(t, func(id NodeID, _ int) error {
		if predicate(id) {
			found = id
			return errStopWalk
		}
		return nil
	})

	return found, found != noNode
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = errors.New("stop walk")
