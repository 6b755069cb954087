// Package project defines the serializable projection of a timeline:
// the structural fields worth persisting (layers, duration, zoom) plus
// project metadata. The projection round-trips losslessly; playhead,
// playback and selection state are session-local and deliberately not
// part of it.
package project

import (
	"time"

	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/timeline"
)

// Document is the persisted slice of a timeline.
type Document struct {
	Layers   []timeline.Layer `yaml:"layers" json:"layers"`
	Duration float64          `yaml:"duration" json:"duration"`
	Zoom     float64          `yaml:"zoom" json:"zoom"`
}

// Project is a named, versioned document.
type Project struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Version   int       `yaml:"version" json:"version"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
	Document  Document  `yaml:"document" json:"document"`
}

// New creates an empty project.
func New(name string) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:        timeline.NewID(),
		Name:      name,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FromTimeline captures a timeline into a fresh project.
func FromTimeline(name string, t timeline.Timeline) *Project {
	p := New(name)
	p.Document = Snapshot(t)
	return p
}

// Snapshot projects a timeline into a document, deep-copying layers so
// the document cannot be changed through the live timeline.
func Snapshot(t timeline.Timeline) Document {
	return Document{
		Layers:   timeline.CloneLayers(t.Layers),
		Duration: t.Duration,
		Zoom:     t.Zoom,
	}
}

// Timeline reconstructs an editable timeline from the document. The
// playhead starts at zero; duration and zoom are re-clamped under the
// given policy in case the document predates a policy change.
func (p *Project) Timeline(pol config.Policy) timeline.Timeline {
	pol = pol.Normalize()
	return timeline.Timeline{
		Layers:   timeline.CloneLayers(p.Document.Layers),
		Duration: pol.ClampDuration(p.Document.Duration),
		Zoom:     pol.ClampZoom(p.Document.Zoom),
	}
}

// Capture updates the project's document from a timeline, bumping the
// version and the update timestamp.
func (p *Project) Capture(t timeline.Timeline) {
	p.Document = Snapshot(t)
	p.Version++
	p.UpdatedAt = time.Now().UTC()
}
