// Package clip provides pure operations on clip and layer values.
// Every function returns new values and leaves its inputs untouched;
// operations that would produce a degenerate clip return the original
// unchanged rather than failing.
package clip

import "github.com/avilov/montage/internal/timeline"

// Cut splits a clip into two at a local time (relative to clip start).
// The split only happens for 0 < at < duration; otherwise the original
// clip comes back as the single result. The first piece keeps the in
// transition, the second keeps the out transition, and both get fresh
// ids.
func Cut(c timeline.Clip, at float64) []timeline.Clip {
	if at <= 0 || at >= c.Duration {
		return []timeline.Clip{c}
	}

	first := c.Clone()
	first.ID = timeline.NewID()
	first.Duration = at
	// Exclude everything past the cut from the first piece's source:
	// trimStart + duration - (trimStart + at).
	first.TrimEnd = c.Duration - at
	if first.Transitions != nil {
		first.Transitions.Out = nil
	}

	second := c.Clone()
	second.ID = timeline.NewID()
	second.StartTime = c.StartTime + at
	second.Duration = c.Duration - at
	second.TrimStart = c.TrimStart + at
	if second.Transitions != nil {
		second.Transitions.In = nil
	}

	return []timeline.Clip{first, second}
}

// TrimRange re-trims a clip to the timeline interval [newStart, newEnd).
// Head and tail trims grow by however much the interval shrank on each
// side; they never decrease. A range with non-positive length is
// rejected and the original clip is returned.
func TrimRange(c timeline.Clip, newStart, newEnd float64) timeline.Clip {
	duration := newEnd - newStart
	if duration <= 0 {
		return c
	}

	out := c
	if d := newStart - c.StartTime; d > 0 {
		out.TrimStart += d
	}
	if d := c.End() - newEnd; d > 0 {
		out.TrimEnd += d
	}
	out.StartTime = newStart
	out.Duration = duration
	return out
}

// Duplicate clones a clip with a fresh id, placed immediately after the
// original. The copy shares no mutable structure with the source.
func Duplicate(c timeline.Clip) timeline.Clip {
	out := c.Clone()
	out.ID = timeline.NewID()
	out.StartTime = c.StartTime + c.Duration
	return out
}

// Find scans layers in order for a clip id. It returns the clip, the
// index of the layer holding it, and whether it was found.
func Find(layers []timeline.Layer, id string) (timeline.Clip, int, bool) {
	for i, l := range layers {
		for _, c := range l.Clips {
			if c.ID == id {
				return c, i, true
			}
		}
	}
	return timeline.Clip{}, -1, false
}

// Remove filters the clip with the given id out of whichever layer
// holds it. Unknown ids leave the layers unchanged. The returned slice
// is always a fresh copy.
func Remove(layers []timeline.Layer, id string) []timeline.Layer {
	out := make([]timeline.Layer, len(layers))
	for i, l := range layers {
		out[i] = l
		for j, c := range l.Clips {
			if c.ID != id {
				continue
			}
			clips := make([]timeline.Clip, 0, len(l.Clips)-1)
			clips = append(clips, l.Clips[:j]...)
			clips = append(clips, l.Clips[j+1:]...)
			out[i].Clips = clips
			break
		}
	}
	return out
}

// Replace splices replacement clips in place of the clip with the given
// id, preserving its position within the layer's clip list. An empty
// replacement deletes the clip. Unknown ids leave the layers unchanged.
func Replace(layers []timeline.Layer, id string, with []timeline.Clip) []timeline.Layer {
	out := make([]timeline.Layer, len(layers))
	copy(out, layers)
	for i, l := range layers {
		for j, c := range l.Clips {
			if c.ID != id {
				continue
			}
			clips := make([]timeline.Clip, 0, len(l.Clips)-1+len(with))
			clips = append(clips, l.Clips[:j]...)
			clips = append(clips, with...)
			clips = append(clips, l.Clips[j+1:]...)
			out[i].Clips = clips
			return out
		}
	}
	return out
}
