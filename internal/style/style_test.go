package style

import (
	"strings"
	"testing"

	"tailview/internal/highlight"
)

func TestForCoversAllCategories(t *testing.T) {
	cats := []highlight.Category{
		highlight.CatNone,
		highlight.CatError,
		highlight.CatWarning,
		highlight.CatInfo,
		highlight.CatDebug,
		highlight.CatBracket,
		highlight.CatTimestamp,
		highlight.CatFilter,
		highlight.CatJSONKey,
		highlight.CatJSONString,
		highlight.CatJSONNumber,
		highlight.CatJSONBool,
		highlight.CatJSONNull,
	}
	for _, cat := range cats {
		t.Run(cat.String(), func(t *testing.T) {
			// Render must preserve the text under any style/profile.
			if got := For(cat).Render("x"); !strings.Contains(got, "x") {
				t.Errorf("For(%v).Render lost the text: %q", cat, got)
			}
		})
	}
}

func TestForUnknownCategory(t *testing.T) {
	if got := For(highlight.Category(9999)).Render("x"); got != "x" {
		t.Errorf("unknown category should render unstyled, got %q", got)
	}
}

func TestRenderConcatenatesRuns(t *testing.T) {
	runs := []highlight.Run{
		{Text: "an ", Category: highlight.CatNone},
		{Text: "error", Category: highlight.CatError},
		{Text: " at ", Category: highlight.CatNone},
		{Text: "12:30:00", Category: highlight.CatTimestamp},
	}
	out := Render(runs)
	for _, r := range runs {
		if !strings.Contains(out, r.Text) {
			t.Errorf("output missing run text %q: %q", r.Text, out)
		}
	}
}

func TestRenderSkipsEmptyRuns(t *testing.T) {
	if got := Render([]highlight.Run{{Text: "", Category: highlight.CatNone}}); got != "" {
		t.Errorf("empty run rendered as %q", got)
	}
	if got := Render(nil); got != "" {
		t.Errorf("nil runs rendered as %q", got)
	}
}
