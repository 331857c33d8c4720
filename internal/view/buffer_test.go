package view

import (
	"errors"
	"testing"
	"time"

	"tailview/internal/logging"
)

func newTestBuffer(t *testing.T, filter string) (*Buffer, *Annotator) {
	t.Helper()
	settings := DefaultSettings()
	settings.Filter = filter
	ann := NewAnnotator(settings, logging.Discard())
	b := NewBuffer(ann, logging.Discard())
	b.now = func() time.Time { return time.Unix(1700000000, 0) }
	return b, ann
}

func TestBufferAppendAndVisible(t *testing.T) {
	b, _ := newTestBuffer(t, "error")

	b.Append("error: one")
	b.Append("all fine")
	b.Append("another error")

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	assertVisible(t, b, []int{0, 2})
	if got := b.Line(2).Content; got != "another error" {
		t.Errorf("Line(2) = %q", got)
	}
	if b.Line(0).Time.IsZero() {
		t.Errorf("appended line missing timestamp")
	}
}

func TestBufferRebuildAfterFilterChange(t *testing.T) {
	b, ann := newTestBuffer(t, "error")

	b.Append("error: one")
	b.Append("warn: two")
	b.Append("info: three")
	assertVisible(t, b, []int{0})

	if err := ann.SetFilter("warn OR info"); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	b.Rebuild()
	assertVisible(t, b, []int{1, 2})

	if err := ann.SetFilter(""); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	b.Rebuild()
	assertVisible(t, b, []int{0, 1, 2})
}

func TestBufferHandleEvent(t *testing.T) {
	b, _ := newTestBuffer(t, "")

	b.HandleEvent(Event{Line: "hello"})
	b.HandleEvent(Event{Err: errors.New("pipe closed")})
	b.HandleEvent(Event{Line: "world"})

	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (errors are not lines)", b.Len())
	}
	assertVisible(t, b, []int{0, 1})
}

func TestBufferClear(t *testing.T) {
	b, _ := newTestBuffer(t, "")

	b.Append("one")
	b.Append("two")
	b.Clear()

	if b.Len() != 0 || len(b.Visible()) != 0 {
		t.Errorf("Clear left %d lines, %d visible", b.Len(), len(b.Visible()))
	}
	if idx := b.Append("three"); idx != 0 {
		t.Errorf("first index after Clear = %d, want 0", idx)
	}
}

func assertVisible(t *testing.T, b *Buffer, want []int) {
	t.Helper()
	got := b.Visible()
	if len(got) != len(want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() = %v, want %v", got, want)
		}
	}
}
