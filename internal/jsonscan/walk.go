package jsonscan

import (
	"encoding/json"
	"sort"
	"strings"

	"tailview/internal/highlight"
	"tailview/internal/textpos"
)

// Spans scans line for embedded JSON and returns a highlight span for
// every key, string, number, boolean and null token it can re-locate,
// all at PriorityStructure. Spans are sorted by position so the output
// is deterministic regardless of object iteration order.
func Spans(line string) []highlight.Span {
	regions := Scan(line)
	if len(regions) == 0 {
		return nil
	}

	runeAt := textpos.RuneOffsets(line)
	var spans []highlight.Span
	for _, reg := range regions {
		w := &walker{
			region: line[reg.Start : reg.Start+reg.Length],
			base:   reg.Start,
			runeAt: runeAt,
		}
		w.walk(reg.Value)
		spans = append(spans, w.spans...)
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		if spans[i].End != spans[j].End {
			return spans[i].End < spans[j].End
		}
		return spans[i].Category < spans[j].Category
	})
	return spans
}

// walker tags tokens of one decoded region. All searches run over the
// region text; emitted spans are offset by the region's absolute start.
type walker struct {
	region string
	base   int
	runeAt []int
	spans  []highlight.Span
}

func (w *walker) walk(v any) {
	switch val := v.(type) {
	case map[string]any:
		for key, elem := range val {
			w.tagKey(key)
			w.walk(elem)
		}
	case []any:
		for _, elem := range val {
			w.walk(elem)
		}
	case string:
		w.tag(quote(val), highlight.CatJSONString)
	case json.Number:
		// json.Number preserves the source literal, so this search
		// is exact up to duplicate text.
		w.tag(val.String(), highlight.CatJSONNumber)
	case bool:
		if val {
			w.tag("true", highlight.CatJSONBool)
		} else {
			w.tag("false", highlight.CatJSONBool)
		}
	case nil:
		w.tag("null", highlight.CatJSONNull)
	}
}

// tagKey tags the first occurrence of the quoted key that is followed,
// ignoring whitespace, by a colon.
func (w *walker) tagKey(key string) {
	quoted := quote(key)
	for from := 0; from < len(w.region); {
		i := strings.Index(w.region[from:], quoted)
		if i < 0 {
			return
		}
		pos := from + i
		if colonFollows(w.region[pos+len(quoted):]) {
			w.mark(pos, pos+len(quoted), highlight.CatJSONKey)
			return
		}
		from = pos + 1
	}
}

// tag tags the first occurrence of text in the region.
func (w *walker) tag(text string, cat highlight.Category) {
	if i := strings.Index(w.region, text); i >= 0 {
		w.mark(i, i+len(text), cat)
	}
}

func (w *walker) mark(start, end int, cat highlight.Category) {
	w.spans = append(w.spans, highlight.Span{
		Start:    w.runeAt[w.base+start],
		End:      w.runeAt[w.base+end],
		Category: cat,
		Priority: highlight.PriorityStructure,
	})
}

func colonFollows(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// quote re-encodes s the way it most likely appeared in the source:
// double-quoted, standard escapes, no HTML escaping. Values whose source
// used uncommon escape forms (unicode escapes for plain ASCII and the
// like) will not be found; they simply go untagged.
func quote(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
