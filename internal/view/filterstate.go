package view

import (
	"regexp"
	"strings"

	"tailview/internal/filterlang"
)

// FilterState holds the currently active hide regex and the active
// filter/highlight expressions together with their last parse errors.
//
// Replacement is copy-on-write: a new expression is fully built before
// the field is swapped, and a failed parse records the error while
// leaving the previous expression (or none) in effect. A blank query
// clears the corresponding expression; that is the caller-level "no
// filter" state, not an error.
type FilterState struct {
	hide      *regexp.Regexp
	filter    *filterlang.FilterExpr
	highlight *filterlang.FilterExpr

	hideErr      string
	filterErr    string
	highlightErr string
}

// SetHide compiles query as the hide regex. Lines matching it are never
// shown regardless of the filter expression.
func (s *FilterState) SetHide(query string) error {
	if strings.TrimSpace(query) == "" {
		s.hide = nil
		s.hideErr = ""
		return nil
	}
	re, err := regexp.Compile(query)
	if err != nil {
		s.hideErr = err.Error()
		return err
	}
	s.hide = re
	s.hideErr = ""
	return nil
}

// SetFilter parses query as the line-visibility filter.
func (s *FilterState) SetFilter(query string) error {
	expr, err := filterlang.Parse(query)
	if err != nil {
		s.filterErr = err.Error()
		return err
	}
	s.filter = expr
	s.filterErr = ""
	return nil
}

// SetHighlight parses query as the custom highlight expression.
func (s *FilterState) SetHighlight(query string) error {
	expr, err := filterlang.Parse(query)
	if err != nil {
		s.highlightErr = err.Error()
		return err
	}
	s.highlight = expr
	s.highlightErr = ""
	return nil
}

// Matches reports whether line passes the hide and filter gates.
func (s *FilterState) Matches(line string) bool {
	if s.hide != nil && s.hide.MatchString(line) {
		return false
	}
	return s.filter.Matches(line)
}

// Filter returns the active filter expression, nil when unfiltered.
func (s *FilterState) Filter() *filterlang.FilterExpr { return s.filter }

// Highlight returns the active highlight expression, nil when unset.
func (s *FilterState) Highlight() *filterlang.FilterExpr { return s.highlight }

// HideError returns the last hide-pattern error, empty when none.
func (s *FilterState) HideError() string { return s.hideErr }

// FilterError returns the last filter parse error, empty when none.
func (s *FilterState) FilterError() string { return s.filterErr }

// HighlightError returns the last highlight parse error, empty when none.
func (s *FilterState) HighlightError() string { return s.highlightErr }
