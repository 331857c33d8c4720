package highlight

import (
	"regexp"
	"sync"

	"tailview/internal/textpos"
)

// Rule pairs a pattern with the category its matches receive.
type Rule struct {
	Pattern  *regexp.Regexp
	Category Category
}

// heuristicRules builds the fixed rule table on first use. The table is
// read-only after construction and safe to share across goroutines.
var heuristicRules = sync.OnceValue(func() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)\b(error|err|fatal|fail(ed)?|panic)\b`), CatError},
		{regexp.MustCompile(`(?i)\b(warn(ing)?)\b`), CatWarning},
		{regexp.MustCompile(`(?i)\b(info)\b`), CatInfo},
		{regexp.MustCompile(`(?i)\b(debug|trace)\b`), CatDebug},
		{regexp.MustCompile(`\[[^\]]+\]`), CatBracket},
		{regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`), CatTimestamp},
		{regexp.MustCompile(`\d{2}:\d{2}:\d{2}`), CatTimestamp},
	}
})

// HeuristicRules returns the shared rule table.
func HeuristicRules() []Rule {
	return heuristicRules()
}

// HeuristicSpans runs every rule over the whole line and collects every
// match of every rule at PriorityHeuristic.
func HeuristicSpans(line string) []Span {
	var spans []Span
	var runeAt []int
	for _, rule := range heuristicRules() {
		for _, m := range rule.Pattern.FindAllStringIndex(line, -1) {
			if runeAt == nil {
				runeAt = textpos.RuneOffsets(line)
			}
			spans = append(spans, Span{
				Start:    runeAt[m[0]],
				End:      runeAt[m[1]],
				Category: rule.Category,
				Priority: PriorityHeuristic,
			})
		}
	}
	return spans
}
