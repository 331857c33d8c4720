package view

import (
	"log/slog"
	"time"

	"tailview/internal/logging"
)

// Line is one captured log line with its arrival timestamp.
type Line struct {
	Time    time.Time
	Content string
}

// Buffer accumulates source lines and maintains the indices of lines
// passing the current filter, so collaborators can render the visible
// subset without re-evaluating the whole history per frame.
type Buffer struct {
	ann     *Annotator
	lines   []Line
	visible []int
	logger  *slog.Logger
	now     func() time.Time
}

// NewBuffer creates an empty buffer gated by ann.
func NewBuffer(ann *Annotator, logger *slog.Logger) *Buffer {
	return &Buffer{
		ann:    ann,
		logger: logging.Default(logger).With("component", "buffer"),
		now:    time.Now,
	}
}

// HandleEvent consumes one source event: a line is appended, a source
// error is logged and otherwise ignored (the source decides whether to
// keep delivering).
func (b *Buffer) HandleEvent(ev Event) {
	if ev.Err != nil {
		b.logger.Warn("source error", "error", ev.Err)
		return
	}
	b.Append(ev.Line)
}

// Append records a line and returns its index. The line joins the
// visible set immediately when it passes the current filter.
func (b *Buffer) Append(content string) int {
	idx := len(b.lines)
	b.lines = append(b.lines, Line{Time: b.now(), Content: content})
	if b.ann.Matches(content) {
		b.visible = append(b.visible, idx)
	}
	return idx
}

// Rebuild recomputes the visible set against the current filter. Call
// after replacing the filter or hide expression.
func (b *Buffer) Rebuild() {
	b.visible = b.visible[:0]
	for i, line := range b.lines {
		if b.ann.Matches(line.Content) {
			b.visible = append(b.visible, i)
		}
	}
}

// Clear drops all captured lines.
func (b *Buffer) Clear() {
	b.lines = nil
	b.visible = nil
}

// Len returns the total number of captured lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Visible returns the indices of lines passing the current filter, in
// arrival order. The slice is owned by the buffer; callers must not
// mutate it.
func (b *Buffer) Visible() []int { return b.visible }

// Line returns the captured line at index i.
func (b *Buffer) Line(i int) Line { return b.lines[i] }
