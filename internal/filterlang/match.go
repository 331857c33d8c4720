package filterlang

import (
	"sort"
	"strings"

	"tailview/internal/textpos"
)

// Range is a half-open [Start, End) interval in rune offsets.
type Range struct {
	Start int
	End   int
}

// lineText caches per-line derived views shared by all literals during
// one evaluation.
type lineText struct {
	raw    string
	folded string
	runeAt []int // byte offset -> rune offset, built on first use
}

func newLineText(line string) *lineText {
	return &lineText{raw: line, folded: textpos.ToLowerASCII(line)}
}

func (lt *lineText) runeOff(byteOff int) int {
	if lt.runeAt == nil {
		lt.runeAt = textpos.RuneOffsets(lt.raw)
	}
	return lt.runeAt[byteOff]
}

// Matches evaluates the expression against line. A nil expression
// matches everything.
func (f *FilterExpr) Matches(line string) bool {
	if f == nil || f.root == nil {
		return true
	}
	if !f.pre.admits(line) {
		return false
	}
	return evalMatch(f.root, newLineText(line))
}

// FindAllMatches returns the rune ranges of every positive literal match
// that contributed to a true evaluation, sorted by position. It returns
// nil when the expression evaluates false.
//
// Ranges propagate bottom-up: an OR contributes the ranges of whichever
// branches matched, an AND contributes all branches only when the whole
// conjunction holds, and a NOT contributes nothing — an inversion
// certifies absence, which has no location to show. A literal buried
// under a NOT therefore never leaks ranges, even when a sibling branch
// makes the overall expression true.
func (f *FilterExpr) FindAllMatches(line string) []Range {
	if f == nil || f.root == nil {
		return nil
	}
	if !f.pre.admits(line) {
		return nil
	}
	lt := newLineText(line)
	ok, ranges := evalRanges(f.root, lt)
	if !ok || len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
	return dedupeRanges(ranges)
}

func evalMatch(e Expr, lt *lineText) bool {
	switch ex := e.(type) {
	case *LiteralExpr:
		if ex.Regex != nil {
			return ex.Regex.MatchString(lt.raw)
		}
		return strings.Contains(lt.folded, ex.folded)
	case *AndExpr:
		for _, t := range ex.Terms {
			if !evalMatch(t, lt) {
				return false
			}
		}
		return true
	case *OrExpr:
		for _, t := range ex.Terms {
			if evalMatch(t, lt) {
				return true
			}
		}
		return false
	case *NotExpr:
		return !evalMatch(ex.Term, lt)
	}
	return false
}

// evalRanges evaluates e and collects the ranges of live positive
// literals in one bottom-up pass.
func evalRanges(e Expr, lt *lineText) (bool, []Range) {
	switch ex := e.(type) {
	case *LiteralExpr:
		ranges := ex.findRanges(lt)
		return len(ranges) > 0, ranges
	case *AndExpr:
		var all []Range
		for _, t := range ex.Terms {
			ok, ranges := evalRanges(t, lt)
			if !ok {
				return false, nil
			}
			all = append(all, ranges...)
		}
		return true, all
	case *OrExpr:
		var all []Range
		matched := false
		for _, t := range ex.Terms {
			if ok, ranges := evalRanges(t, lt); ok {
				matched = true
				all = append(all, ranges...)
			}
		}
		if !matched {
			return false, nil
		}
		return true, all
	case *NotExpr:
		return !evalMatch(ex.Term, lt), nil
	}
	return false, nil
}

// findRanges returns every occurrence of the literal in the line.
// Substring occurrences are non-overlapping, scanning left to right.
func (l *LiteralExpr) findRanges(lt *lineText) []Range {
	if l.Regex != nil {
		var out []Range
		for _, m := range l.Regex.FindAllStringIndex(lt.raw, -1) {
			out = append(out, Range{Start: lt.runeOff(m[0]), End: lt.runeOff(m[1])})
		}
		return out
	}

	if l.folded == "" {
		return nil
	}
	var out []Range
	for i := 0; ; {
		j := strings.Index(lt.folded[i:], l.folded)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(l.folded)
		out = append(out, Range{Start: lt.runeOff(start), End: lt.runeOff(end)})
		i = end
	}
	return out
}

func dedupeRanges(ranges []Range) []Range {
	out := ranges[:1]
	for _, r := range ranges[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}
