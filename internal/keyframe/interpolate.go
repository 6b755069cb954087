// Package keyframe computes time-varying clip properties from
// keyframes and maintains a clip's keyframe list. Interpolation is
// read-only and safe to call from any number of consumers; mutation
// helpers return new slices.
package keyframe

import "github.com/avilov/montage/internal/timeline"

// Props is the fully resolved set of animatable properties at one
// moment: scale normalized to per-axis factors, position, rotation in
// degrees and opacity in [0,1].
type Props struct {
	Scale    timeline.Vec2
	Position timeline.Vec2
	Rotation float64
	Opacity  float64
}

// baseProps resolves the clip's static properties, with identity
// defaults for anything unset.
func baseProps(c timeline.Clip) Props {
	p := Props{Scale: timeline.Vec2{X: 1, Y: 1}, Opacity: 1}
	if c.Scale != nil {
		p.Scale = c.Scale.Normalize()
	}
	if c.Position != nil {
		p.Position = *c.Position
	}
	if c.Rotation != nil {
		p.Rotation = *c.Rotation
	}
	if c.Opacity != nil {
		p.Opacity = *c.Opacity
	}
	return p
}

// PropsAt computes the clip's effective properties at a local time.
//
// With no keyframes the clip's static base properties come back as-is.
// Before the first keyframe the base blends toward it; between two
// keyframes the value is eased by the later keyframe's easing kind;
// past the last keyframe its value holds. A property missing from one
// endpoint takes the other endpoint's value, so it does not animate
// across that segment.
func PropsAt(c timeline.Clip, at float64) Props {
	base := baseProps(c)
	if len(c.Keyframes) == 0 {
		return base
	}

	prev, next := surrounding(c.Keyframes, at)

	switch {
	case prev == nil && next == nil:
		return base

	case prev == nil:
		// Before the first keyframe: blend from the base.
		progress := 1.0
		if next.Time > 0 {
			progress = at / next.Time
		}
		t := Ease(next.Easing, progress)
		target := overlay(base, *next)
		return blend(base, target, t)

	case next == nil:
		// Past the last keyframe the value holds.
		return overlay(base, *prev)

	default:
		span := next.Time - prev.Time
		progress := 1.0
		if span > 0 {
			progress = (at - prev.Time) / span
		}
		t := Ease(next.Easing, progress)
		from := overlay(base, *prev)
		to := overlay(from, *next)
		from = holdAtNext(from, *prev, *next)
		return blend(from, to, t)
	}
}

// surrounding returns the nearest keyframe at or before the time and
// the nearest one strictly after it. The list is assumed time-sorted.
func surrounding(kfs []timeline.Keyframe, at float64) (prev, next *timeline.Keyframe) {
	for i := range kfs {
		if kfs[i].Time <= at {
			prev = &kfs[i]
		} else {
			next = &kfs[i]
			break
		}
	}
	return prev, next
}

// overlay applies a keyframe's set properties on top of resolved props.
func overlay(p Props, kf timeline.Keyframe) Props {
	if kf.Scale != nil {
		p.Scale = kf.Scale.Normalize()
	}
	if kf.Position != nil {
		p.Position = *kf.Position
	}
	if kf.Rotation != nil {
		p.Rotation = *kf.Rotation
	}
	if kf.Opacity != nil {
		p.Opacity = *kf.Opacity
	}
	return p
}

// holdAtNext pins properties only the later keyframe sets: the segment
// start takes the later keyframe's value, so the property holds still
// instead of animating up from the clip base.
func holdAtNext(from Props, prev, next timeline.Keyframe) Props {
	if prev.Scale == nil && next.Scale != nil {
		from.Scale = next.Scale.Normalize()
	}
	if prev.Position == nil && next.Position != nil {
		from.Position = *next.Position
	}
	if prev.Rotation == nil && next.Rotation != nil {
		from.Rotation = *next.Rotation
	}
	if prev.Opacity == nil && next.Opacity != nil {
		from.Opacity = *next.Opacity
	}
	return from
}

func blend(from, to Props, t float64) Props {
	return Props{
		Scale: timeline.Vec2{
			X: lerp(from.Scale.X, to.Scale.X, t),
			Y: lerp(from.Scale.Y, to.Scale.Y, t),
		},
		Position: timeline.Vec2{
			X: lerp(from.Position.X, to.Position.X, t),
			Y: lerp(from.Position.Y, to.Position.Y, t),
		},
		Rotation: lerp(from.Rotation, to.Rotation, t),
		Opacity:  lerp(from.Opacity, to.Opacity, t),
	}
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Ease remaps linear progress through the named curve. Progress is
// clamped to [0,1] first; unknown kinds fall back to linear.
func Ease(kind timeline.Easing, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch kind {
	case timeline.EasingIn:
		return t * t
	case timeline.EasingOut:
		return t * (2 - t)
	case timeline.EasingInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}
