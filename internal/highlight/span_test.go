package highlight

import (
	"reflect"
	"testing"
)

func TestResolvePriority(t *testing.T) {
	// Overlap resolution: the higher-priority middle range splits the
	// lower-priority one into three runs.
	spans := []Span{
		{Start: 0, End: 5, Category: CatWarning, Priority: PriorityHeuristic},
		{Start: 2, End: 4, Category: CatFilter, Priority: PriorityFilter},
	}
	got := Resolve("abcde", spans)
	want := []Run{
		{Text: "ab", Category: CatWarning},
		{Text: "cd", Category: CatFilter},
		{Text: "e", Category: CatWarning},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveCoverage(t *testing.T) {
	// Concatenating run texts must reproduce the line exactly, for any
	// span input.
	lines := []string{
		"",
		"plain",
		"héllo wörld ééé",
		"2024-01-15 ERROR [main] done",
	}
	spanSets := [][]Span{
		nil,
		{{Start: 0, End: 3, Category: CatError, Priority: 10}},
		{
			{Start: 2, End: 8, Category: CatInfo, Priority: 10},
			{Start: 4, End: 6, Category: CatFilter, Priority: 100},
			{Start: 5, End: 12, Category: CatDebug, Priority: 50},
		},
		{{Start: -3, End: 999, Category: CatBracket, Priority: 10}}, // out of range, clamped
		{{Start: 7, End: 3, Category: CatError, Priority: 10}},      // inverted, ignored
	}

	for _, line := range lines {
		for _, spans := range spanSets {
			runs := Resolve(line, spans)
			var rebuilt string
			for _, r := range runs {
				rebuilt += r.Text
			}
			if rebuilt != line {
				t.Errorf("Resolve(%q, %v) lost text: rebuilt %q", line, spans, rebuilt)
			}
			for i, r := range runs {
				if r.Text == "" && line != "" {
					t.Errorf("Resolve(%q, %v) produced empty run %d", line, spans, i)
				}
			}
		}
	}
}

func TestResolveEmptyLine(t *testing.T) {
	got := Resolve("", []Span{{Start: 0, End: 3, Category: CatError, Priority: 10}})
	want := []Run{{Text: "", Category: CatNone}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve on empty line = %v, want %v", got, want)
	}
}

func TestResolveNoSpans(t *testing.T) {
	got := Resolve("hello", nil)
	want := []Run{{Text: "hello", Category: CatNone}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve with no spans = %v, want %v", got, want)
	}
}

func TestResolveEqualPriorityLaterWins(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 3, Category: CatInfo, Priority: PriorityStructure},
		{Start: 0, End: 3, Category: CatDebug, Priority: PriorityStructure},
	}
	got := Resolve("abc", spans)
	want := []Run{{Text: "abc", Category: CatDebug}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want later span to win ties: %v", got, want)
	}
}

func TestResolveCoalesces(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 2, Category: CatError, Priority: 10},
		{Start: 2, End: 4, Category: CatError, Priority: 10},
	}
	got := Resolve("abcd", spans)
	want := []Run{{Text: "abcd", Category: CatError}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want adjacent equal categories coalesced: %v", got, want)
	}
}

func TestResolveDeterministic(t *testing.T) {
	line := "the quick brown fox"
	spans := []Span{
		{Start: 0, End: 9, Category: CatWarning, Priority: 10},
		{Start: 4, End: 15, Category: CatInfo, Priority: 50},
		{Start: 10, End: 19, Category: CatFilter, Priority: 100},
	}
	first := Resolve(line, spans)
	for i := 0; i < 10; i++ {
		if got := Resolve(line, spans); !reflect.DeepEqual(got, first) {
			t.Fatalf("Resolve not deterministic: %v vs %v", got, first)
		}
	}
}

func TestResolveRuneOffsets(t *testing.T) {
	// Offsets count runes, not bytes.
	line := "ééé error"
	spans := []Span{{Start: 4, End: 9, Category: CatError, Priority: 10}}
	got := Resolve(line, spans)
	want := []Run{
		{Text: "ééé ", Category: CatNone},
		{Text: "error", Category: CatError},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}
