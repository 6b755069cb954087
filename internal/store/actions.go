package store

import "github.com/avilov/montage/internal/timeline"

// Action is the closed set of timeline transitions. Every action is a
// plain value; the reducer never mutates its payload.
type Action interface {
	isAction()
}

// AddClip appends a clip to the layer at Layer. A stale layer index
// leaves the timeline unchanged. Total duration grows to cover the
// clip's end, subject to the duration policy.
type AddClip struct {
	Clip  timeline.Clip
	Layer int
}

// RemoveClip removes the clip with the given id from whichever layer
// holds it, clearing the selection if it pointed at that clip.
type RemoveClip struct {
	ID string
}

// UpdateClip shallow-merges the set fields of Patch into the matching
// clip.
type UpdateClip struct {
	ID    string
	Patch ClipPatch
}

// ClipPatch is a partial clip update; nil fields are left alone.
type ClipPatch struct {
	Asset       *string
	StartTime   *float64
	Duration    *float64
	TrimStart   *float64
	TrimEnd     *float64
	Position    *timeline.Vec2
	Scale       *timeline.ScaleValue
	Rotation    *float64
	Opacity     *float64
	Transitions *timeline.Transitions
	Effects     []timeline.Effect
	Keyframes   []timeline.Keyframe
	Data        map[string]any

	// ClearKeyframes drops every keyframe, returning the clip to its
	// static base properties. A nil Keyframes field alone means "leave
	// them alone", so clearing needs an explicit flag.
	ClearKeyframes bool
}

// MoveClip repositions a clip on the timeline; the new start is floored
// at zero.
type MoveClip struct {
	ID        string
	StartTime float64
}

// TrimClip sets a clip's duration, floored at zero. Stricter callers
// (the clip operations) reject non-positive durations before they reach
// the store.
type TrimClip struct {
	ID       string
	Duration float64
}

// ReplaceClip splices zero or more clips in place of the matching clip
// within its layer.
type ReplaceClip struct {
	ID   string
	With []timeline.Clip
}

// AddLayer appends a layer.
type AddLayer struct {
	Layer timeline.Layer
}

// RemoveLayer drops the layer with the given id.
type RemoveLayer struct {
	ID string
}

// MoveLayer moves a layer to a new index in compositing order. Unknown
// ids and out-of-range indices are no-ops.
type MoveLayer struct {
	ID    string
	Index int
}

// ToggleLayerVisibility flips a layer's visible flag.
type ToggleLayerVisibility struct {
	ID string
}

// SetCurrentTime moves the playhead, clamped to [0, duration].
type SetCurrentTime struct {
	Time float64
}

// SetZoom sets display density, clamped by policy.
type SetZoom struct {
	Zoom float64
}

// SetDuration sets total duration, clamped by policy regardless of the
// requested value.
type SetDuration struct {
	Duration float64
}

// TogglePlayback flips isPlaying. Advancing the playhead while playing
// is the presentation layer's job.
type TogglePlayback struct{}

// SelectClip sets the selected clip id; an empty id clears selection.
type SelectClip struct {
	ID string
}

// Restore replaces the whole timeline. Undo, redo and reset go through
// this.
type Restore struct {
	Timeline timeline.Timeline
}

func (AddClip) isAction()               {}
func (RemoveClip) isAction()            {}
func (UpdateClip) isAction()            {}
func (MoveClip) isAction()              {}
func (TrimClip) isAction()              {}
func (ReplaceClip) isAction()           {}
func (AddLayer) isAction()              {}
func (RemoveLayer) isAction()           {}
func (MoveLayer) isAction()             {}
func (ToggleLayerVisibility) isAction() {}
func (SetCurrentTime) isAction()        {}
func (SetZoom) isAction()               {}
func (SetDuration) isAction()           {}
func (TogglePlayback) isAction()        {}
func (SelectClip) isAction()            {}
func (Restore) isAction()               {}
