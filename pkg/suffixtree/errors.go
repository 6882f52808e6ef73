package suffixtree

import "errors"

// Sentinel errors returned by Build. Wrap details with %w so callers can
// match with errors.Is.
var (
	// ErrInvalidInput marks input rejected before any construction work:
	// the text contains the reserved terminator, or a symbol falls outside
	// a declared alphabet restriction.
	ErrInvalidInput = errors.New("suffixtree: invalid input")

	// ErrInvariant marks a structural invariant violation detected during
	// construction: a duplicate first symbol under one parent, a suffix
	// link assigned twice, or an inconsistent edge range. It indicates a
	// defect in the construction logic. The partial tree is discarded;
	// Build never returns one.
	ErrInvariant = errors.New("suffixtree: internal invariant violation")
)
