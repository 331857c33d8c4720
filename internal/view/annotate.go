package view

import (
	"log/slog"

	"tailview/internal/filterlang"
	"tailview/internal/highlight"
	"tailview/internal/jsonscan"
	"tailview/internal/logging"
)

// Annotator gates lines through the active filter and produces styled
// runs for visible lines. It is the composition point of the filter
// language, the heuristic rule table, the JSON detector and the span
// engine.
//
// All methods are synchronous and non-blocking. The caller serializes
// access; expressions swap copy-on-write underneath (see FilterState).
type Annotator struct {
	state    FilterState
	settings Settings
	logger   *slog.Logger
}

// NewAnnotator builds an annotator from a settings record. Invalid
// queries in the record are logged and left inactive; construction
// never fails, matching the recovery contract for user queries.
func NewAnnotator(settings Settings, logger *slog.Logger) *Annotator {
	a := &Annotator{logger: logging.Default(logger).With("component", "annotator")}
	a.settings = settings
	a.applyQuery("hide", settings.Hide, a.state.SetHide)
	a.applyQuery("filter", settings.Filter, a.state.SetFilter)
	a.applyQuery("highlight", settings.Highlight, a.state.SetHighlight)
	return a
}

func (a *Annotator) applyQuery(name, query string, set func(string) error) {
	if err := set(query); err != nil {
		a.logger.Warn("query rejected", "field", name, "query", query, "error", err)
		return
	}
	if query != "" {
		a.logger.Info("query applied", "field", name, "query", query)
	}
}

// SetHide replaces the hide regex. The raw query string is always
// recorded in the settings record (it is what the edit box holds and
// what persistence round-trips); the compiled pattern only changes on
// success.
func (a *Annotator) SetHide(query string) error {
	a.settings.Hide = query
	err := a.state.SetHide(query)
	a.logApply("hide", query, err)
	return err
}

// SetFilter replaces the line-visibility filter expression.
func (a *Annotator) SetFilter(query string) error {
	a.settings.Filter = query
	err := a.state.SetFilter(query)
	a.logApply("filter", query, err)
	return err
}

// SetHighlight replaces the custom highlight expression.
func (a *Annotator) SetHighlight(query string) error {
	a.settings.Highlight = query
	err := a.state.SetHighlight(query)
	a.logApply("highlight", query, err)
	return err
}

func (a *Annotator) logApply(name, query string, err error) {
	if err != nil {
		a.logger.Warn("query rejected, previous expression kept",
			"field", name, "query", query, "error", err)
		return
	}
	a.logger.Info("query applied", "field", name, "query", query)
}

// Matches reports whether line passes the hide and filter gates.
func (a *Annotator) Matches(line string) bool {
	return a.state.Matches(line)
}

// ComputeRuns annotates line with every enabled range source and
// resolves the overlaps into a gapless run sequence. Sources are
// supplied in filter, structure, heuristic order so that ties break
// toward the more specific source.
func (a *Annotator) ComputeRuns(line string) []highlight.Run {
	var spans []highlight.Span

	if hl := a.state.Highlight(); hl != nil {
		for _, r := range hl.FindAllMatches(line) {
			spans = append(spans, highlight.Span{
				Start:    r.Start,
				End:      r.End,
				Category: highlight.CatFilter,
				Priority: highlight.PriorityFilter,
			})
		}
	}
	if a.settings.JSON {
		spans = append(spans, jsonscan.Spans(line)...)
	}
	if a.settings.Heuristic {
		spans = append(spans, highlight.HeuristicSpans(line)...)
	}

	return highlight.Resolve(line, spans)
}

// State exposes the filter state for error reporting.
func (a *Annotator) State() *FilterState { return &a.state }

// Settings returns the current configuration record, suitable for
// handing back to the persistence collaborator.
func (a *Annotator) Settings() Settings { return a.settings }

// ToggleHeuristic flips heuristic highlighting and reports the new state.
func (a *Annotator) ToggleHeuristic() bool {
	a.settings.Heuristic = !a.settings.Heuristic
	return a.settings.Heuristic
}

// ToggleJSON flips embedded-JSON highlighting and reports the new state.
func (a *Annotator) ToggleJSON() bool {
	a.settings.JSON = !a.settings.JSON
	return a.settings.JSON
}

// ToggleWrap flips line wrapping and reports the new state. Wrapping is
// rendered elsewhere; the toggle only rides along in the settings record.
func (a *Annotator) ToggleWrap() bool {
	a.settings.WrapLines = !a.settings.WrapLines
	return a.settings.WrapLines
}

// ToggleTime flips the timestamp column and reports the new state.
func (a *Annotator) ToggleTime() bool {
	a.settings.ShowTime = !a.settings.ShowTime
	return a.settings.ShowTime
}

// FilterSource returns the active filter expression's source query, for
// displaying in the edit box.
func (a *Annotator) FilterSource() string {
	return exprSource(a.state.Filter())
}

// HighlightSource returns the active highlight expression's source query.
func (a *Annotator) HighlightSource() string {
	return exprSource(a.state.Highlight())
}

func exprSource(e *filterlang.FilterExpr) string {
	if e == nil {
		return ""
	}
	return e.Source()
}
