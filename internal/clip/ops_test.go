package clip

import (
	"math"
	"testing"

	"github.com/avilov/montage/internal/timeline"
)

func makeClip() timeline.Clip {
	opacity := 0.8
	return timeline.Clip{
		ID:        "clip-1",
		Asset:     "media/a.mp4",
		StartTime: 5,
		Duration:  10,
		Opacity:   &opacity,
		Transitions: &timeline.Transitions{
			In:  &timeline.Transition{Kind: timeline.TransitionFade, Duration: 1},
			Out: &timeline.Transition{Kind: timeline.TransitionDissolve, Duration: 1},
		},
		Keyframes: []timeline.Keyframe{
			{Time: 2, Rotation: floatPtr(45), Easing: timeline.EasingLinear},
		},
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestCutSplitsClip(t *testing.T) {
	c := makeClip()
	pieces := Cut(c, 4)

	if len(pieces) != 2 {
		t.Fatalf("Expected 2 pieces, got %d", len(pieces))
	}
	first, second := pieces[0], pieces[1]

	// Worked example: start=5 dur=10 trim=0/0 cut at 4.
	if first.StartTime != 5 || first.Duration != 4 || first.TrimEnd != 6 {
		t.Errorf("First piece wrong: start=%v dur=%v trimEnd=%v", first.StartTime, first.Duration, first.TrimEnd)
	}
	if second.StartTime != 9 || second.Duration != 6 || second.TrimStart != 4 || second.TrimEnd != 0 {
		t.Errorf("Second piece wrong: start=%v dur=%v trimStart=%v trimEnd=%v",
			second.StartTime, second.Duration, second.TrimStart, second.TrimEnd)
	}

	// Duration is conserved.
	if first.Duration+second.Duration != c.Duration {
		t.Errorf("Durations do not sum: %v + %v != %v", first.Duration, second.Duration, c.Duration)
	}

	// Transitions split across the boundary.
	if first.Transitions.In == nil || first.Transitions.Out != nil {
		t.Error("First piece should keep only the in transition")
	}
	if second.Transitions.In != nil || second.Transitions.Out == nil {
		t.Error("Second piece should keep only the out transition")
	}

	// Fresh ids on both pieces.
	if first.ID == c.ID || second.ID == c.ID || first.ID == second.ID {
		t.Error("Cut pieces must have fresh distinct ids")
	}
}

func TestCutTrimContinuity(t *testing.T) {
	c := makeClip()
	c.TrimStart = 2
	c.TrimEnd = 3

	pieces := Cut(c, 7)
	first, second := pieces[0], pieces[1]

	// Second piece resumes in the source exactly where the first stops:
	// trimStart + T.
	if second.TrimStart != c.TrimStart+7 {
		t.Errorf("Expected second trimStart %v, got %v", c.TrimStart+7, second.TrimStart)
	}
	if first.TrimStart != c.TrimStart {
		t.Errorf("First trimStart should be unchanged, got %v", first.TrimStart)
	}
	if second.TrimEnd != c.TrimEnd {
		t.Errorf("Second trimEnd should be unchanged, got %v", second.TrimEnd)
	}
}

func TestCutAtBoundariesIsIdentity(t *testing.T) {
	c := makeClip()

	tests := []struct {
		name string
		at   float64
	}{
		{"at zero", 0},
		{"negative", -3},
		{"at duration", 10},
		{"past duration", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := Cut(c, tt.at)
			if len(pieces) != 1 {
				t.Fatalf("Expected 1 piece, got %d", len(pieces))
			}
			if pieces[0].ID != c.ID || pieces[0].Duration != c.Duration {
				t.Errorf("Boundary cut must return the clip unchanged")
			}
		})
	}
}

func TestTrimRange(t *testing.T) {
	c := makeClip() // [5, 15)

	out := TrimRange(c, 7, 12)

	if out.StartTime != 7 || out.Duration != 5 {
		t.Errorf("Expected interval [7,12), got start=%v dur=%v", out.StartTime, out.Duration)
	}
	if out.TrimStart != 2 {
		t.Errorf("Expected trimStart 2, got %v", out.TrimStart)
	}
	if out.TrimEnd != 3 {
		t.Errorf("Expected trimEnd 3, got %v", out.TrimEnd)
	}
}

func TestTrimNeverShrinksTrims(t *testing.T) {
	c := makeClip()
	c.TrimStart = 1
	c.TrimEnd = 1

	tests := []struct {
		name             string
		newStart, newEnd float64
	}{
		{"shrink both sides", 6, 13},
		{"extend start", 3, 15},
		{"extend end", 5, 20},
		{"extend both", 2, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := TrimRange(c, tt.newStart, tt.newEnd)
			if out.TrimStart < c.TrimStart || out.TrimEnd < c.TrimEnd {
				t.Errorf("Trims went backwards: trimStart %v->%v, trimEnd %v->%v",
					c.TrimStart, out.TrimStart, c.TrimEnd, out.TrimEnd)
			}
			if out.Duration != tt.newEnd-tt.newStart {
				t.Errorf("Expected duration %v, got %v", tt.newEnd-tt.newStart, out.Duration)
			}
		})
	}
}

func TestTrimRejectsEmptyRange(t *testing.T) {
	c := makeClip()

	for _, at := range [][2]float64{{8, 8}, {12, 7}} {
		out := TrimRange(c, at[0], at[1])
		if out.ID != c.ID || out.Duration != c.Duration || out.StartTime != c.StartTime {
			t.Errorf("Degenerate range [%v,%v) must return the original clip", at[0], at[1])
		}
	}
}

func TestDuplicatePlacesAfterOriginal(t *testing.T) {
	c := makeClip()
	d := Duplicate(c)

	if d.ID == c.ID {
		t.Error("Duplicate must get a fresh id")
	}
	if d.StartTime != c.End() {
		t.Errorf("Expected duplicate at %v, got %v", c.End(), d.StartTime)
	}
}

func TestDuplicateNeverAliases(t *testing.T) {
	c := makeClip()
	c.Data = map[string]any{"text": "hello"}
	d := Duplicate(c)

	*d.Opacity = 0.1
	d.Transitions.In.Duration = 9
	d.Keyframes[0].Time = 99
	*d.Keyframes[0].Rotation = -1
	d.Data["text"] = "changed"

	if *c.Opacity != 0.8 {
		t.Error("Opacity aliased between original and duplicate")
	}
	if c.Transitions.In.Duration != 1 {
		t.Error("Transition aliased between original and duplicate")
	}
	if c.Keyframes[0].Time != 2 || *c.Keyframes[0].Rotation != 45 {
		t.Error("Keyframes aliased between original and duplicate")
	}
	if c.Data["text"] != "hello" {
		t.Error("Data payload aliased between original and duplicate")
	}
}

func layersFixture() []timeline.Layer {
	return []timeline.Layer{
		{ID: "l0", Kind: timeline.LayerVideo, Clips: []timeline.Clip{
			{ID: "a", StartTime: 0, Duration: 5},
			{ID: "b", StartTime: 5, Duration: 5},
		}},
		{ID: "l1", Kind: timeline.LayerAudio, Clips: []timeline.Clip{
			{ID: "c", StartTime: 0, Duration: 10},
		}},
	}
}

func TestFind(t *testing.T) {
	layers := layersFixture()

	c, idx, ok := Find(layers, "c")
	if !ok || idx != 1 || c.ID != "c" {
		t.Errorf("Expected clip c in layer 1, got idx=%d ok=%v", idx, ok)
	}

	if _, _, ok := Find(layers, "nope"); ok {
		t.Error("Unknown id must not be found")
	}
}

func TestRemove(t *testing.T) {
	layers := layersFixture()

	out := Remove(layers, "b")
	if len(out[0].Clips) != 1 || out[0].Clips[0].ID != "a" {
		t.Errorf("Expected only clip a left in layer 0, got %d clips", len(out[0].Clips))
	}
	if len(layers[0].Clips) != 2 {
		t.Error("Remove must not modify its input")
	}

	same := Remove(layers, "nope")
	if len(same[0].Clips) != 2 || len(same[1].Clips) != 1 {
		t.Error("Removing an unknown id must change nothing")
	}
}

func TestReplaceSplicesInPlace(t *testing.T) {
	layers := layersFixture()
	two := []timeline.Clip{
		{ID: "a1", StartTime: 0, Duration: 2},
		{ID: "a2", StartTime: 2, Duration: 3},
	}

	out := Replace(layers, "a", two)
	ids := []string{}
	for _, c := range out[0].Clips {
		ids = append(ids, c.ID)
	}
	if len(ids) != 3 || ids[0] != "a1" || ids[1] != "a2" || ids[2] != "b" {
		t.Errorf("Expected [a1 a2 b], got %v", ids)
	}

	// Empty replacement deletes.
	deleted := Replace(layers, "c", nil)
	if len(deleted[1].Clips) != 0 {
		t.Error("Replacing with nothing should delete the clip")
	}

	// Unknown id is a no-op.
	same := Replace(layers, "nope", two)
	if len(same[0].Clips) != 2 {
		t.Error("Replacing an unknown id must change nothing")
	}
}

func TestCutThenReplaceConservesSpan(t *testing.T) {
	layers := layersFixture()
	c, _, _ := Find(layers, "b")

	pieces := Cut(c, 2)
	out := Replace(layers, "b", pieces)

	var total float64
	for _, cl := range out[0].Clips {
		total += cl.Duration
	}
	if math.Abs(total-10) > 1e-9 {
		t.Errorf("Expected layer span 10 after split, got %v", total)
	}
}
