// Package store holds the authoritative timeline state. A Store owns a
// single timeline value and replaces it atomically through the pure
// Reduce transition, so readers always observe a complete state. There
// is no global instance: build as many side-by-side stores as needed.
package store

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/timeline"
)

// Store is the single source of truth for one timeline.
type Store struct {
	mu        sync.RWMutex
	policy    config.Policy
	current   timeline.Timeline
	observers []func(timeline.Timeline)
	logger    *slog.Logger
}

// New creates a store around an initial timeline. A nil logger
// disables logging.
func New(initial timeline.Timeline, p config.Policy, logger *slog.Logger) *Store {
	return &Store{
		policy:  p.Normalize(),
		current: initial.Clone(),
		logger:  logger,
	}
}

// NewTimeline returns an empty timeline obeying the policy defaults.
func NewTimeline(p config.Policy) timeline.Timeline {
	p = p.Normalize()
	return timeline.Timeline{
		Layers:   []timeline.Layer{},
		Duration: p.MinDuration,
		Zoom:     p.Zoom,
	}
}

// DefaultTimeline returns a timeline seeded with one video and one
// audio layer, the shape a fresh editing session starts from.
func DefaultTimeline(p config.Policy) timeline.Timeline {
	t := NewTimeline(p)
	t.Layers = []timeline.Layer{
		timeline.NewLayer(timeline.LayerVideo, "Video 1"),
		timeline.NewLayer(timeline.LayerAudio, "Audio 1"),
	}
	return t
}

// Timeline returns an independent copy of the current state.
func (s *Store) Timeline() timeline.Timeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Policy returns the store's normalized policy.
func (s *Store) Policy() config.Policy {
	return s.policy
}

// Watch registers an observer invoked after every action that changed
// the structural state (layers or duration). Playhead, zoom, playback
// and selection changes do not notify: they are presentation state and
// must not generate history entries.
func (s *Store) Watch(fn func(timeline.Timeline)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Dispatch applies one action. Invalid payloads leave the state as it
// was; Dispatch never panics on stale ids or indices.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	prev := s.current
	next := Reduce(prev, a, s.policy)
	s.current = next
	structural := next.Duration != prev.Duration ||
		!reflect.DeepEqual(next.Layers, prev.Layers)
	observers := s.observers
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("action applied",
			"action", reflect.TypeOf(a).Name(),
			"structural", structural)
	}

	if !structural {
		return
	}
	for _, fn := range observers {
		fn(next.Clone())
	}
}
