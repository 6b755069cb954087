package keyframe

import (
	"math"
	"sort"

	"github.com/avilov/montage/internal/timeline"
)

// TimeEpsilon is how close two keyframe times must be to count as the
// same keyframe.
const TimeEpsilon = 1e-3

// Set adds a keyframe or updates the one already at its time. An
// existing keyframe within TimeEpsilon absorbs the new keyframe's set
// properties and easing; otherwise the keyframe is inserted and the
// list re-sorted. The input slice is never modified.
func Set(kfs []timeline.Keyframe, kf timeline.Keyframe) []timeline.Keyframe {
	out := timeline.CloneKeyframes(kfs)
	for i := range out {
		if math.Abs(out[i].Time-kf.Time) < TimeEpsilon {
			out[i] = merge(out[i], kf)
			return out
		}
	}
	out = append(out, kf.Clone())
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// merge overlays set fields of the update onto an existing keyframe.
// The keyframe keeps its original time so repeated near-miss updates
// cannot drift it.
func merge(existing, update timeline.Keyframe) timeline.Keyframe {
	out := existing.Clone()
	if update.Scale != nil {
		s := *update.Scale
		out.Scale = &s
	}
	if update.Position != nil {
		p := *update.Position
		out.Position = &p
	}
	if update.Rotation != nil {
		r := *update.Rotation
		out.Rotation = &r
	}
	if update.Opacity != nil {
		o := *update.Opacity
		out.Opacity = &o
	}
	if update.Easing != "" {
		out.Easing = update.Easing
	}
	return out
}

// Remove drops any keyframe within TimeEpsilon of the given time. An
// emptied list collapses to nil, meaning "no keyframes".
func Remove(kfs []timeline.Keyframe, at float64) []timeline.Keyframe {
	var out []timeline.Keyframe
	for _, kf := range kfs {
		if math.Abs(kf.Time-at) < TimeEpsilon {
			continue
		}
		out = append(out, kf.Clone())
	}
	return out
}
