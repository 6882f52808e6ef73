package suffixtree

import "cmp"

// DefaultTerminator is the terminator BuildString appends when none is
// configured.
const DefaultTerminator = '$'

// buildConfig collects the optional build settings.
type buildConfig[S cmp.Ordered] struct {
	alphabetName string
	alphabet     func(S) bool
	terminator   *S
}

// Option configures a build.
type Option[S cmp.Ordered] func(*buildConfig[S])

// WithAlphabet declares an alphabet restriction. Build rejects any input
// symbol for which allow returns false, reporting the given alphabet name in
// the error. The terminator is exempt; it is reserved and must not occur in
// the input regardless.
func WithAlphabet[S cmp.Ordered](name string, allow func(S) bool) Option[S] {
	return func(c *buildConfig[S]) {
		c.alphabetName = name
		c.alphabet = allow
	}
}

// WithTerminator overrides the terminator used by BuildString. Build takes
// the terminator as an explicit argument and ignores this option.
func WithTerminator[S cmp.Ordered](terminator S) Option[S] {
	return func(c *buildConfig[S]) {
		c.terminator = &terminator
	}
}

// Lowercase restricts input to the ASCII letters a-z. This is the teaching
// variant: with a 26-symbol alphabet every traversal step is a small constant
// map lookup.
func Lowercase() Option[rune] {
	return WithAlphabet("lowercase", func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}
