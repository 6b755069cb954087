package timeline

// Clone returns a structurally independent deep copy of the timeline.
// History snapshots rely on this: mutating the live timeline must never
// change a stored snapshot.
func (t Timeline) Clone() Timeline {
	out := t
	out.Layers = CloneLayers(t.Layers)
	return out
}

// CloneLayers deep-copies a layer slice.
func CloneLayers(layers []Layer) []Layer {
	if layers == nil {
		return nil
	}
	out := make([]Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}

// Clone returns a deep copy of the layer and its clips.
func (l Layer) Clone() Layer {
	out := l
	if l.Clips != nil {
		out.Clips = make([]Clip, len(l.Clips))
		for i, c := range l.Clips {
			out.Clips[i] = c.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the clip. All nested structures
// (transform, transitions, effects, keyframes, data) are copied, so the
// result shares no mutable state with the original.
func (c Clip) Clone() Clip {
	out := c
	out.Position = cloneVec(c.Position)
	out.Scale = cloneScale(c.Scale)
	out.Rotation = cloneFloat(c.Rotation)
	out.Opacity = cloneFloat(c.Opacity)
	if c.Transitions != nil {
		tr := Transitions{}
		if c.Transitions.In != nil {
			in := *c.Transitions.In
			tr.In = &in
		}
		if c.Transitions.Out != nil {
			o := *c.Transitions.Out
			tr.Out = &o
		}
		out.Transitions = &tr
	}
	if c.Effects != nil {
		out.Effects = make([]Effect, len(c.Effects))
		for i, e := range c.Effects {
			out.Effects[i] = e
			out.Effects[i].Params = CloneData(e.Params)
		}
	}
	out.Keyframes = CloneKeyframes(c.Keyframes)
	out.Data = CloneData(c.Data)
	return out
}

// CloneKeyframes deep-copies a keyframe slice.
func CloneKeyframes(kfs []Keyframe) []Keyframe {
	if kfs == nil {
		return nil
	}
	out := make([]Keyframe, len(kfs))
	for i, kf := range kfs {
		out[i] = kf.Clone()
	}
	return out
}

// Clone returns a deep copy of the keyframe.
func (kf Keyframe) Clone() Keyframe {
	out := kf
	out.Scale = cloneScale(kf.Scale)
	out.Position = cloneVec(kf.Position)
	out.Rotation = cloneFloat(kf.Rotation)
	out.Opacity = cloneFloat(kf.Opacity)
	return out
}

func cloneVec(v *Vec2) *Vec2 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneScale(s *ScaleValue) *ScaleValue {
	if s == nil {
		return nil
	}
	out := ScaleValue{
		Uniform: cloneFloat(s.Uniform),
		Axes:    cloneVec(s.Axes),
	}
	return &out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	out := *f
	return &out
}

// CloneData deep-copies a free-form payload, recursing into nested
// maps and slices so no mutable structure is shared with the source.
func CloneData(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return CloneData(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
