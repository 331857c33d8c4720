// Package style owns the fixed mapping from highlight categories to
// terminal styles. Categories are semantic; this table is the single
// place that decides how each one looks.
package style

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"tailview/internal/highlight"
)

// ANSI palette indices; the terminal theme supplies the actual colors.
const (
	black   = lipgloss.Color("0")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
	cyan    = lipgloss.Color("6")
)

var table = sync.OnceValue(func() map[highlight.Category]lipgloss.Style {
	return map[highlight.Category]lipgloss.Style{
		highlight.CatNone:      lipgloss.NewStyle(),
		highlight.CatError:     lipgloss.NewStyle().Foreground(red).Bold(true),
		highlight.CatWarning:   lipgloss.NewStyle().Foreground(yellow).Bold(true),
		highlight.CatInfo:      lipgloss.NewStyle().Foreground(green).Bold(true),
		highlight.CatDebug:     lipgloss.NewStyle().Foreground(cyan),
		highlight.CatBracket:   lipgloss.NewStyle().Foreground(blue),
		highlight.CatTimestamp: lipgloss.NewStyle().Foreground(magenta),

		// Custom highlight hits sit on a background so they read
		// through any foreground coloring around them.
		highlight.CatFilter: lipgloss.NewStyle().Background(yellow).Foreground(black).Bold(true),

		highlight.CatJSONKey:    lipgloss.NewStyle().Foreground(cyan),
		highlight.CatJSONString: lipgloss.NewStyle().Foreground(green),
		highlight.CatJSONNumber: lipgloss.NewStyle().Foreground(magenta),
		highlight.CatJSONBool:   lipgloss.NewStyle().Foreground(yellow),
		highlight.CatJSONNull:   lipgloss.NewStyle().Faint(true),
	}
})

// For returns the style for cat. Unknown categories render unstyled.
func For(cat highlight.Category) lipgloss.Style {
	if s, ok := table()[cat]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render styles each run and concatenates the results into one line of
// terminal output.
func Render(runs []highlight.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		sb.WriteString(For(r.Category).Render(r.Text))
	}
	return sb.String()
}
