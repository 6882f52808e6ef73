// Package export renders finished suffix trees for external consumption:
// graphviz DOT for visualization tooling and a plain-text outline for
// terminals and golden files. Exporters never mutate the tree; rendering a
// tree and building one are fully decoupled.
package export

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Default buffer size for exporter writers.
const bufWriterSize = 32 * 1024

// Options configures exporters.
type Options struct {
	// Writer receives the rendered output.
	Writer io.Writer

	// SuffixLinks adds dashed suffix-link edges to DOT output.
	SuffixLinks bool

	// SuffixStarts annotates leaves with the starting index of the suffix
	// they represent.
	SuffixStarts bool
}

// LabelFunc renders a materialized edge label as text.
type LabelFunc[S cmp.Ordered] func(label []S) string

// Runes renders a rune label as the string it spells.
func Runes(label []rune) string {
	return string(label)
}

// Bytes renders a byte label as the string it spells.
func Bytes(label []byte) string {
	return string(label)
}

// genericLabel is the fallback for alphabets without a natural string form:
// each symbol is formatted with %v and symbols are space-separated.
func genericLabel[S cmp.Ordered](label []S) string {
	parts := make([]string, len(label))
	for i, s := range label {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return strings.Join(parts, " ")
}
