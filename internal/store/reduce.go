package store

import (
	"github.com/avilov/montage/internal/clip"
	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/timeline"
)

// Reduce applies one action to a timeline under the given policy and
// returns the resulting timeline. The input is never mutated. Stale
// ids, out-of-range indices and degenerate payloads degrade to no-ops
// instead of failing: the driving UI may race ahead of state, and a
// late action must never crash or corrupt the model.
func Reduce(t timeline.Timeline, a Action, p config.Policy) timeline.Timeline {
	next := t.Clone()

	switch a := a.(type) {
	case AddClip:
		if a.Layer < 0 || a.Layer >= len(next.Layers) {
			return next
		}
		next.Layers[a.Layer].Clips = append(next.Layers[a.Layer].Clips, a.Clip.Clone())
		if end := a.Clip.End(); end > next.Duration {
			next.Duration = end
		}
		next.Duration = p.ClampDuration(next.Duration)

	case RemoveClip:
		next.Layers = clip.Remove(next.Layers, a.ID)
		if next.SelectedClipID == a.ID {
			next.SelectedClipID = ""
		}

	case UpdateClip:
		withClip(&next, a.ID, func(c *timeline.Clip) {
			applyPatch(c, a.Patch)
		})

	case MoveClip:
		withClip(&next, a.ID, func(c *timeline.Clip) {
			c.StartTime = max(0, a.StartTime)
		})

	case TrimClip:
		withClip(&next, a.ID, func(c *timeline.Clip) {
			c.Duration = max(0, a.Duration)
		})

	case ReplaceClip:
		with := make([]timeline.Clip, len(a.With))
		for i, c := range a.With {
			with[i] = c.Clone()
		}
		next.Layers = clip.Replace(next.Layers, a.ID, with)

	case AddLayer:
		next.Layers = append(next.Layers, a.Layer.Clone())

	case RemoveLayer:
		for i, l := range next.Layers {
			if l.ID == a.ID {
				next.Layers = append(next.Layers[:i], next.Layers[i+1:]...)
				break
			}
		}

	case MoveLayer:
		if a.Index < 0 || a.Index >= len(next.Layers) {
			return next
		}
		from := -1
		for i, l := range next.Layers {
			if l.ID == a.ID {
				from = i
				break
			}
		}
		if from < 0 || from == a.Index {
			return next
		}
		moved := next.Layers[from]
		next.Layers = append(next.Layers[:from], next.Layers[from+1:]...)
		rest := append(next.Layers[:a.Index:a.Index], moved)
		next.Layers = append(rest, next.Layers[a.Index:]...)

	case ToggleLayerVisibility:
		for i := range next.Layers {
			if next.Layers[i].ID == a.ID {
				next.Layers[i].Visible = !next.Layers[i].Visible
				break
			}
		}

	case SetCurrentTime:
		v := a.Time
		if v < 0 {
			v = 0
		}
		if v > next.Duration {
			v = next.Duration
		}
		next.CurrentTime = v

	case SetZoom:
		next.Zoom = p.ClampZoom(a.Zoom)

	case SetDuration:
		next.Duration = p.ClampDuration(a.Duration)

	case TogglePlayback:
		next.IsPlaying = !next.IsPlaying

	case SelectClip:
		next.SelectedClipID = a.ID

	case Restore:
		return a.Timeline.Clone()
	}

	return next
}

// withClip runs fn against the clip with the given id, wherever it
// lives. Unknown ids do nothing.
func withClip(t *timeline.Timeline, id string, fn func(*timeline.Clip)) {
	for i := range t.Layers {
		for j := range t.Layers[i].Clips {
			if t.Layers[i].Clips[j].ID == id {
				fn(&t.Layers[i].Clips[j])
				return
			}
		}
	}
}

func applyPatch(c *timeline.Clip, p ClipPatch) {
	if p.Asset != nil {
		c.Asset = *p.Asset
	}
	if p.StartTime != nil {
		c.StartTime = *p.StartTime
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.TrimStart != nil {
		c.TrimStart = *p.TrimStart
	}
	if p.TrimEnd != nil {
		c.TrimEnd = *p.TrimEnd
	}
	if p.Position != nil {
		v := *p.Position
		c.Position = &v
	}
	if p.Scale != nil {
		s := *p.Scale
		c.Scale = &s
	}
	if p.Rotation != nil {
		r := *p.Rotation
		c.Rotation = &r
	}
	if p.Opacity != nil {
		o := *p.Opacity
		c.Opacity = &o
	}
	if p.Transitions != nil {
		tr := *p.Transitions
		c.Transitions = &tr
	}
	if p.Effects != nil {
		c.Effects = make([]timeline.Effect, len(p.Effects))
		for i, e := range p.Effects {
			c.Effects[i] = e
			c.Effects[i].Params = timeline.CloneData(e.Params)
		}
	}
	if p.ClearKeyframes {
		c.Keyframes = nil
	} else if p.Keyframes != nil {
		c.Keyframes = timeline.CloneKeyframes(p.Keyframes)
	}
	if p.Data != nil {
		c.Data = timeline.CloneData(p.Data)
	}
}
