// Package pretty provides Lipgloss-based styled rendering of suffix trees
// for interactive terminals.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components.
	Branch     lipgloss.Style
	EdgeLabel  lipgloss.Style
	Terminator lipgloss.Style
	NodeRef    lipgloss.Style
	SuffixTag  lipgloss.Style
	LinkTag    lipgloss.Style

	// Summary components.
	SummaryTitle lipgloss.Style
	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		EdgeLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Terminator: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		NodeRef:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SuffixTag:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		LinkTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		SummaryValue: lipgloss.NewStyle().Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Branch:       plain,
		EdgeLabel:    plain,
		Terminator:   plain,
		NodeRef:      plain,
		SuffixTag:    plain,
		LinkTag:      plain,
		SummaryTitle: plain,
		SummaryKey:   plain,
		SummaryValue: plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor the NO_COLOR convention (https://no-color.org/).
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
