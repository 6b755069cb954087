package project

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/timeline"
)

func sampleTimeline() timeline.Timeline {
	opacity := 0.75
	return timeline.Timeline{
		Layers: []timeline.Layer{
			{ID: "l0", Kind: timeline.LayerVideo, Name: "Video 1", Visible: true, Clips: []timeline.Clip{
				{
					ID:        "a",
					Asset:     "media/a.mp4",
					StartTime: 2,
					Duration:  20,
					TrimStart: 1,
					TrimEnd:   0.5,
					Opacity:   &opacity,
					Transitions: &timeline.Transitions{
						In: &timeline.Transition{Kind: timeline.TransitionFade, Duration: 1},
					},
					Keyframes: []timeline.Keyframe{
						{Time: 0, Rotation: rotPtr(0), Easing: timeline.EasingLinear},
						{Time: 10, Rotation: rotPtr(180), Easing: timeline.EasingInOut},
					},
				},
			}},
			{ID: "l1", Kind: timeline.LayerText, Name: "Titles", Visible: true, Clips: []timeline.Clip{
				{ID: "t", StartTime: 0, Duration: 4, Data: map[string]any{"text": "Hello"}},
			}},
		},
		CurrentTime: 12, // session state, not persisted
		Duration:    200,
		Zoom:        80,
		IsPlaying:   true,
	}
}

func rotPtr(f float64) *float64 { return &f }

func TestYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")

	tl := sampleTimeline()
	p := FromTimeline("demo", tl)

	require.NoError(t, Write(p, path))
	loaded, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Version, loaded.Version)
	assert.Equal(t, p.Document.Duration, loaded.Document.Duration)
	assert.Equal(t, p.Document.Zoom, loaded.Document.Zoom)
	require.Len(t, loaded.Document.Layers, 2)

	clip := loaded.Document.Layers[0].Clips[0]
	assert.Equal(t, "media/a.mp4", clip.Asset)
	assert.Equal(t, 1.0, clip.TrimStart)
	require.NotNil(t, clip.Opacity)
	assert.Equal(t, 0.75, *clip.Opacity)
	require.NotNil(t, clip.Transitions)
	assert.Equal(t, timeline.TransitionFade, clip.Transitions.In.Kind)
	require.Len(t, clip.Keyframes, 2)
	assert.Equal(t, timeline.EasingInOut, clip.Keyframes[1].Easing)

	text := loaded.Document.Layers[1].Clips[0]
	assert.Equal(t, "Hello", text.Data["text"])
}

func TestJSONRoundTrip(t *testing.T) {
	p := FromTimeline("demo", sampleTimeline())

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var loaded Project
	require.NoError(t, json.Unmarshal(raw, &loaded))

	assert.Equal(t, p.Document.Duration, loaded.Document.Duration)
	require.Len(t, loaded.Document.Layers, 2)
	assert.Equal(t, "media/a.mp4", loaded.Document.Layers[0].Clips[0].Asset)
}

func TestSessionStateIsNotPersisted(t *testing.T) {
	tl := sampleTimeline()
	p := FromTimeline("demo", tl)

	out := p.Timeline(config.Default())

	assert.Equal(t, 0.0, out.CurrentTime)
	assert.False(t, out.IsPlaying)
	assert.Empty(t, out.SelectedClipID)
	assert.Equal(t, tl.Duration, out.Duration)
	assert.Equal(t, tl.Zoom, out.Zoom)
}

func TestTimelineReclampsUnderPolicy(t *testing.T) {
	p := FromTimeline("demo", sampleTimeline())
	p.Document.Duration = 9999
	p.Document.Zoom = 0.01

	out := p.Timeline(config.Default())

	assert.Equal(t, 300.0, out.Duration)
	assert.Equal(t, 1.0, out.Zoom)
}

func TestSnapshotIsIndependent(t *testing.T) {
	tl := sampleTimeline()
	p := FromTimeline("demo", tl)

	tl.Layers[0].Clips[0].StartTime = 99

	assert.Equal(t, 2.0, p.Document.Layers[0].Clips[0].StartTime)
}

func TestCaptureBumpsVersion(t *testing.T) {
	p := FromTimeline("demo", sampleTimeline())
	require.Equal(t, 1, p.Version)

	tl := p.Timeline(config.Default())
	tl.Duration = 250
	p.Capture(tl)

	assert.Equal(t, 2, p.Version)
	assert.Equal(t, 250.0, p.Document.Duration)
	assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
}
