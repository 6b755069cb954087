// Package export describes what a renderer should draw, never how.
// It resolves the timeline into per-frame clip states (compositing
// order, source offsets, interpolated properties) and emits a plain
// cut-list for interchange with external editing tools.
package export

import (
	"github.com/avilov/montage/internal/keyframe"
	"github.com/avilov/montage/internal/timeline"
)

// FrameClip is one clip active at a frame, resolved for rendering.
type FrameClip struct {
	ClipID    string
	Asset     string
	LayerID   string
	LayerKind timeline.LayerKind
	Muted     bool

	// Local is the time into the clip; Source adds the head trim, giving
	// the offset into the source media to sample.
	Local  float64
	Source float64

	Props keyframe.Props
	Data  map[string]any
}

// FrameAt resolves every clip visible at the given timeline time, in
// compositing order: layers bottom to top, so later entries draw on
// top. Hidden layers are skipped; a clip is active over
// [startTime, startTime+duration).
func FrameAt(t timeline.Timeline, at float64) []FrameClip {
	var out []FrameClip
	for _, l := range t.Layers {
		if !l.Visible {
			continue
		}
		for _, c := range l.Clips {
			if at < c.StartTime || at >= c.End() {
				continue
			}
			local := at - c.StartTime
			out = append(out, FrameClip{
				ClipID:    c.ID,
				Asset:     c.Asset,
				LayerID:   l.ID,
				LayerKind: l.Kind,
				Muted:     l.Muted,
				Local:     local,
				Source:    c.TrimStart + local,
				Props:     keyframe.PropsAt(c, local),
				Data:      c.Data,
			})
		}
	}
	return out
}
