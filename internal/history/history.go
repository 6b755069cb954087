// Package history provides bounded linear undo/redo over timeline
// snapshots. It subscribes to a store's structural changes, collapses
// bursts of edits into one entry via a debounce timer, and replays
// entries back into the store through restore actions.
package history

import (
	"log/slog"
	"sync"
	"time"

	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/store"
	"github.com/avilov/montage/internal/timeline"
)

// History is a snapshot stack with a cursor. Entries are structurally
// independent deep copies: later edits to the live timeline never
// change a stored entry.
type History struct {
	mu     sync.Mutex
	st     *store.Store
	limit  int
	delay  time.Duration
	logger *slog.Logger

	entries []timeline.Timeline
	cursor  int

	timer     *time.Timer
	pending   *timeline.Timeline
	restoring bool
}

// New attaches a history to a store, seeded with the store's current
// state. The policy supplies the entry limit and debounce delay; a
// delay of zero captures synchronously, which tests rely on.
func New(st *store.Store, p config.Policy, logger *slog.Logger) *History {
	p = p.Normalize()
	h := &History{
		st:      st,
		limit:   p.HistoryLimit,
		delay:   p.CaptureDelay,
		logger:  logger,
		entries: []timeline.Timeline{st.Timeline()},
	}
	st.Watch(h.capture)
	return h
}

// capture receives structural changes from the store. A change arriving
// while an earlier one is still waiting out the quiet period supersedes
// it: the timer resets instead of stacking captures.
func (h *History) capture(t timeline.Timeline) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.restoring {
		return
	}
	h.pending = &t
	if h.delay <= 0 {
		h.commitLocked()
		return
	}
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(h.delay, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.commitLocked()
	})
}

// commitLocked appends the pending snapshot. Entries ahead of the
// cursor are discarded first (linear history: a new edit overwrites any
// undone future), then the oldest entry is evicted if the stack
// overflows.
func (h *History) commitLocked() {
	if h.pending == nil {
		return
	}
	entry := *h.pending
	h.pending = nil

	h.entries = append(h.entries[:h.cursor+1], entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1

	if h.logger != nil {
		h.logger.Debug("snapshot captured", "entries", len(h.entries), "cursor", h.cursor)
	}
}

// Flush commits any pending capture immediately, cancelling its timer.
func (h *History) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.commitLocked()
}

// Stop cancels any pending capture without committing it.
func (h *History) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.pending = nil
}

// Undo steps the cursor back one entry and restores it into the store.
// At the earliest entry it reports false and does nothing.
func (h *History) Undo() bool {
	return h.step(-1)
}

// Redo steps the cursor forward one entry and restores it. At the
// latest entry it reports false and does nothing.
func (h *History) Redo() bool {
	return h.step(+1)
}

func (h *History) step(dir int) bool {
	h.mu.Lock()
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.commitLocked()

	target := h.cursor + dir
	if target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.cursor = target
	entry := h.entries[target].Clone()
	h.restoring = true
	h.mu.Unlock()

	h.st.Dispatch(store.Restore{Timeline: entry})

	h.mu.Lock()
	h.restoring = false
	h.mu.Unlock()
	return true
}

// CanUndo reports whether an earlier entry exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanRedo reports whether a later entry exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.entries)-1
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
