package highlight

// Span is a candidate highlight over a half-open rune range [Start, End)
// of a line.
type Span struct {
	Start    int
	End      int
	Category Category
	Priority int
}

// Run is one output unit: a contiguous slice of the line paired with
// exactly one category. The runs returned by Resolve partition the line;
// concatenating their Text fields reproduces it byte for byte.
type Run struct {
	Text     string
	Category Category
}

// Resolve merges spans into a gapless run sequence for line.
//
// Every rune position carries a (category, priority) cell initialized to
// (CatNone, 0). Each span overwrites the cells it covers when its
// priority is >= the cell's current priority, so later spans win ties.
// Out-of-range span bounds are clamped, never an error. Adjacent cells
// with equal category coalesce into one run.
func Resolve(line string, spans []Span) []Run {
	runes := []rune(line)
	n := len(runes)
	if n == 0 {
		return []Run{{Text: "", Category: CatNone}}
	}

	cats := make([]Category, n)
	prios := make([]int, n)
	for _, s := range spans {
		start, end := s.Start, s.End
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			if s.Priority >= prios[i] {
				cats[i] = s.Category
				prios[i] = s.Priority
			}
		}
	}

	var runs []Run
	runStart := 0
	for i := 1; i <= n; i++ {
		if i == n || cats[i] != cats[runStart] {
			runs = append(runs, Run{Text: string(runes[runStart:i]), Category: cats[runStart]})
			runStart = i
		}
	}
	return runs
}
