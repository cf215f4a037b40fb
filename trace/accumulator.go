// Package trace accumulates the path drawn by the pendulum tip into
// batches of outline geometry.
//
// Primitives are appended to an active path. Once the active path holds
// more than FlushThreshold primitives it is frozen into an immutable
// history entry with its own identity, so a renderer can cache finalized
// batches and only redraw the active path every frame.
package trace

import (
	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// FlushThreshold is the primitive count the active path must exceed
// before it is moved into history.
const FlushThreshold = 1000

// Entry is a finalized batch of trace geometry. Path must not be modified
// after the entry is created.
type Entry struct {
	ID     uuid.UUID
	Path   *gg.Path
	Extent gg.Rect
}

// Accumulator owns the active trace buffer and the flushed history.
type Accumulator struct {
	active  *gg.Path
	count   int
	extent  gg.Rect
	history []Entry
	pending *Entry
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{active: gg.NewPath()}
}

// Append adds the outline of p to the active path.
func (a *Accumulator) Append(p Primitive) {
	p.Outline(a.active)
	a.count++
}

// MaybeFlush moves the active path into history when it holds more than
// FlushThreshold primitives. It creates at most one entry per call.
func (a *Accumulator) MaybeFlush() (Entry, bool) {
	if a.count <= FlushThreshold {
		return Entry{}, false
	}
	e := Entry{
		ID:     uuid.New(),
		Path:   a.active,
		Extent: a.extent,
	}
	a.history = append(a.history, e)
	a.pending = &e

	a.active = gg.NewPath()
	a.count = 0
	return e, true
}

// TakePending returns the most recently flushed entry if it has not been
// taken yet. Subsequent calls report false until the next flush.
func (a *Accumulator) TakePending() (Entry, bool) {
	if a.pending == nil {
		return Entry{}, false
	}
	e := *a.pending
	a.pending = nil
	return e, true
}

// Clear drops the history, the active path and any pending flush.
func (a *Accumulator) Clear() {
	a.history = nil
	a.pending = nil
	a.active = gg.NewPath()
	a.count = 0
}

// OldPaths returns the history in insertion order. The returned slice is
// a copy; the entries share their immutable paths with the accumulator.
func (a *Accumulator) OldPaths() []Entry {
	out := make([]Entry, len(a.history))
	copy(out, a.history)
	return out
}

// Active returns the path being built. Callers must treat it as read-only.
func (a *Accumulator) Active() *gg.Path { return a.active }

// Count returns the number of primitives appended since the last flush.
func (a *Accumulator) Count() int { return a.count }

// SetExtent records the canvas rectangle that new geometry is built for.
func (a *Accumulator) SetExtent(r gg.Rect) { a.extent = r }

// Extent returns the current canvas rectangle.
func (a *Accumulator) Extent() gg.Rect { return a.extent }
