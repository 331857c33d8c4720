package view

// Settings is the opaque configuration record exchanged with the
// settings-persistence collaborator: three free-text query strings and
// the display toggles. The core never serializes it.
type Settings struct {
	Hide      string // regex; matching lines are never shown
	Filter    string // filter expression; non-matching lines are hidden
	Highlight string // filter expression; matches get the filter category

	WrapLines bool
	ShowTime  bool
	Heuristic bool // heuristic rule highlighting
	JSON      bool // embedded-JSON highlighting
}

// DefaultSettings mirrors a fresh session: no queries, everything on.
func DefaultSettings() Settings {
	return Settings{
		WrapLines: true,
		ShowTime:  true,
		Heuristic: true,
		JSON:      true,
	}
}
