// Package timeline defines the editing model: a timeline of layers,
// layers of clips, and the transition/keyframe data attached to clips.
// Values are treated as immutable by the rest of the engine; anything
// that needs an independent copy goes through Clone.
package timeline

import "github.com/google/uuid"

// LayerKind tags what a layer holds.
type LayerKind string

const (
	LayerVideo LayerKind = "video"
	LayerAudio LayerKind = "audio"
	LayerText  LayerKind = "text"
	LayerImage LayerKind = "image"
)

// TransitionKind names a boundary effect type.
type TransitionKind string

const (
	TransitionFade     TransitionKind = "fade"
	TransitionDissolve TransitionKind = "dissolve"
	TransitionWipe     TransitionKind = "wipe"
	TransitionSlide    TransitionKind = "slide"
)

// Easing selects the time-remapping curve between two keyframes.
type Easing string

const (
	EasingLinear Easing = "linear"
	EasingIn     Easing = "ease-in"
	EasingOut    Easing = "ease-out"
	EasingInOut  Easing = "ease-in-out"
)

// Vec2 is a 2D value used for positions and per-axis scale.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ScaleValue is either a uniform factor or an independent per-axis pair.
// Consumers normalize to a Vec2 before interpolating.
type ScaleValue struct {
	Uniform *float64 `json:"uniform,omitempty" yaml:"uniform,omitempty"`
	Axes    *Vec2    `json:"axes,omitempty" yaml:"axes,omitempty"`
}

// Normalize collapses either representation to a per-axis pair.
// An empty ScaleValue means no scaling.
func (s ScaleValue) Normalize() Vec2 {
	if s.Axes != nil {
		return *s.Axes
	}
	if s.Uniform != nil {
		return Vec2{X: *s.Uniform, Y: *s.Uniform}
	}
	return Vec2{X: 1, Y: 1}
}

// UniformScale builds a ScaleValue from a single factor.
func UniformScale(f float64) ScaleValue {
	return ScaleValue{Uniform: &f}
}

// AxisScale builds a ScaleValue from independent axis factors.
func AxisScale(x, y float64) ScaleValue {
	return ScaleValue{Axes: &Vec2{X: x, Y: y}}
}

// Transition is a time-bounded effect attached to a clip boundary.
type Transition struct {
	Kind      TransitionKind `json:"kind" yaml:"kind"`
	Duration  float64        `json:"duration" yaml:"duration"`
	Direction string         `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Transitions holds the optional entry and exit transitions of a clip.
type Transitions struct {
	In  *Transition `json:"in,omitempty" yaml:"in,omitempty"`
	Out *Transition `json:"out,omitempty" yaml:"out,omitempty"`
}

// Effect is an opaque named effect with free-form parameters.
// The engine carries effects through edits; rendering them is the
// renderer's concern.
type Effect struct {
	ID     string         `json:"id" yaml:"id"`
	Kind   string         `json:"kind" yaml:"kind"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// Keyframe is a timestamped partial snapshot of animatable properties.
// Time is local to the clip (0 = clip start). Unset fields inherit from
// the clip's static base properties.
type Keyframe struct {
	Time     float64     `json:"time" yaml:"time"`
	Scale    *ScaleValue `json:"scale,omitempty" yaml:"scale,omitempty"`
	Position *Vec2       `json:"position,omitempty" yaml:"position,omitempty"`
	Rotation *float64    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Opacity  *float64    `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Easing   Easing      `json:"easing" yaml:"easing"`
}

// Clip is a single placed instance of media or synthetic content.
// Its on-timeline interval is [StartTime, StartTime+Duration).
// TrimStart and TrimEnd are offsets into the source media's own
// timeline: how much of the source head and tail is excluded.
type Clip struct {
	ID        string  `json:"id" yaml:"id"`
	Asset     string  `json:"asset" yaml:"asset"` // empty for synthetic clips
	StartTime float64 `json:"startTime" yaml:"startTime"`
	Duration  float64 `json:"duration" yaml:"duration"`
	TrimStart float64 `json:"trimStart" yaml:"trimStart"`
	TrimEnd   float64 `json:"trimEnd" yaml:"trimEnd"`

	Position *Vec2       `json:"position,omitempty" yaml:"position,omitempty"`
	Scale    *ScaleValue `json:"scale,omitempty" yaml:"scale,omitempty"`
	Rotation *float64    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Opacity  *float64    `json:"opacity,omitempty" yaml:"opacity,omitempty"`

	Transitions *Transitions   `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	Effects     []Effect       `json:"effects,omitempty" yaml:"effects,omitempty"`
	Keyframes   []Keyframe     `json:"keyframes,omitempty" yaml:"keyframes,omitempty"`
	Data        map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// End returns the clip's exclusive end time on the timeline.
func (c Clip) End() float64 {
	return c.StartTime + c.Duration
}

// Layer is an ordered track of clips of one kind. Clip order is
// insertion order, not time order. Layer order defines compositing
// order: later layers draw on top.
type Layer struct {
	ID      string    `json:"id" yaml:"id"`
	Kind    LayerKind `json:"kind" yaml:"kind"`
	Name    string    `json:"name" yaml:"name"`
	Clips   []Clip    `json:"clips" yaml:"clips"`
	Locked  bool      `json:"locked" yaml:"locked"`
	Visible bool      `json:"visible" yaml:"visible"`
	Muted   bool      `json:"muted" yaml:"muted"`
}

// Timeline is the root editing state.
type Timeline struct {
	Layers         []Layer `json:"layers" yaml:"layers"`
	CurrentTime    float64 `json:"currentTime" yaml:"currentTime"`
	Duration       float64 `json:"duration" yaml:"duration"`
	Zoom           float64 `json:"zoom" yaml:"zoom"` // pixels per second
	SelectedClipID string  `json:"selectedClipId,omitempty" yaml:"selectedClipId,omitempty"`
	IsPlaying      bool    `json:"isPlaying" yaml:"isPlaying"`
}

// NewID returns a fresh identifier for clips, layers and projects.
func NewID() string {
	return uuid.NewString()
}

// NewLayer creates an empty visible layer of the given kind.
func NewLayer(kind LayerKind, name string) Layer {
	return Layer{
		ID:      NewID(),
		Kind:    kind,
		Name:    name,
		Clips:   []Clip{},
		Visible: true,
	}
}
