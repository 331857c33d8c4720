package filterlang

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// prefilter is a literal fast-reject stage: a single Aho-Corasick
// automaton over substring patterns such that any line matching the
// expression must contain at least one of them. Lines containing none
// are rejected without walking the tree.
type prefilter struct {
	ac *ahocorasick.AhoCorasick
}

// newPrefilter derives the witness set for root and builds the
// automaton. Returns nil when no sound witness set exists (the
// expression can be satisfied by a line containing no known literal).
func newPrefilter(root Expr) *prefilter {
	patterns, ok := witnessSet(root)
	if !ok || len(patterns) == 0 {
		return nil
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	ac := builder.Build(patterns)
	return &prefilter{ac: &ac}
}

func (p *prefilter) admits(line string) bool {
	if p == nil {
		return true
	}
	return len(p.ac.FindAll(line)) > 0
}

// witnessSet returns substring patterns such that a matching line must
// contain at least one of them. ok=false means no such set can be
// derived from this subtree:
//
//   - a substring literal is its own witness
//   - an AND needs any one child's set; the smallest is kept
//   - an OR needs the union of all children's sets, and is poisoned when
//     any child has none
//   - NOT and regex literals never yield a set
func witnessSet(e Expr) ([]string, bool) {
	switch ex := e.(type) {
	case *LiteralExpr:
		if ex.Regex != nil || ex.folded == "" {
			return nil, false
		}
		return []string{ex.folded}, true
	case *AndExpr:
		var best []string
		found := false
		for _, t := range ex.Terms {
			if set, ok := witnessSet(t); ok {
				if !found || len(set) < len(best) {
					best = set
					found = true
				}
			}
		}
		return best, found
	case *OrExpr:
		seen := make(map[string]struct{})
		var union []string
		for _, t := range ex.Terms {
			set, ok := witnessSet(t)
			if !ok {
				return nil, false
			}
			for _, pat := range set {
				if _, dup := seen[pat]; dup {
					continue
				}
				seen[pat] = struct{}{}
				union = append(union, pat)
			}
		}
		return union, true
	default:
		return nil, false
	}
}
