// Package highlight classifies character ranges of a log line and merges
// overlapping classifications into a single sequence of styled runs.
//
// Three sources feed it: filter-expression matches, heuristic rules, and
// embedded-JSON tokens. Each contributes (range, category, priority)
// spans; Resolve turns them into a gapless partition of the line. The
// mapping from category to an actual terminal style lives elsewhere.
package highlight

// Category is the semantic classification of a text range, independent
// of its visual style.
type Category int

const (
	CatNone Category = iota
	CatError
	CatWarning
	CatInfo
	CatDebug
	CatBracket
	CatTimestamp
	CatFilter // match of the user's highlight expression
	CatJSONKey
	CatJSONString
	CatJSONNumber
	CatJSONBool
	CatJSONNull
)

func (c Category) String() string {
	switch c {
	case CatNone:
		return "none"
	case CatError:
		return "error"
	case CatWarning:
		return "warning"
	case CatInfo:
		return "info"
	case CatDebug:
		return "debug"
	case CatBracket:
		return "bracket"
	case CatTimestamp:
		return "timestamp"
	case CatFilter:
		return "filter"
	case CatJSONKey:
		return "json-key"
	case CatJSONString:
		return "json-string"
	case CatJSONNumber:
		return "json-number"
	case CatJSONBool:
		return "json-bool"
	case CatJSONNull:
		return "json-null"
	default:
		return "unknown"
	}
}

// Priorities used for overlap resolution. Higher wins; on a tie the
// later-supplied span wins, so callers feed filter spans first and
// heuristic spans last.
const (
	PriorityHeuristic = 10
	PriorityStructure = 50
	PriorityFilter    = 100
)
