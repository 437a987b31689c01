// Package lipgloss provides the default terminal styles for report
// output.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/fwojciec/spellcheck"
)

// textWidth is the wrap width for report paragraphs.
const textWidth = 80

// DefaultStyles returns the ANSI styles used for terminal output:
// red flagged words, blue gutter and rules, bold headings, green
// all-clean summary, paragraphs wrapped at 80 columns.
func DefaultStyles() spellcheck.Styles {
	var (
		misspelled = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		gutter     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
		rule       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
		bold       = lipgloss.NewStyle().Bold(true)
		success    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	)
	return spellcheck.Styles{
		Misspelled: func(s string) string { return misspelled.Render(s) },
		LineNumber: func(s string) string { return gutter.Render(s) },
		Rule:       func(s string) string { return rule.Render(s) },
		Bold:       func(s string) string { return bold.Render(s) },
		Success:    func(s string) string { return success.Render(s) },
		Wrap:       func(s string) string { return wordwrap.String(s, textWidth) },
	}
}
