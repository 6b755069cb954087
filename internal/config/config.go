// Package config carries the engine's policy values. Stores and
// histories take a Policy explicitly, so independent timelines with
// different policies can live side by side.
package config

import "time"

const (
	// Timeline duration is held to this window: editors always show at
	// least a 180-second canvas and never exceed 300.
	DefaultMinDuration = 180.0
	DefaultMaxDuration = 300.0

	// Display density clamp, pixels per second.
	DefaultMinZoom = 1.0
	DefaultMaxZoom = 200.0
	DefaultZoom    = 50.0

	// Undo history: bounded snapshot count and the quiet period after
	// which a burst of edits is captured as one entry.
	DefaultHistoryLimit = 50
	DefaultCaptureDelay = 300 * time.Millisecond
)

// Policy bundles the numeric clamps and history settings.
type Policy struct {
	MinDuration  float64
	MaxDuration  float64
	MinZoom      float64
	MaxZoom      float64
	Zoom         float64
	HistoryLimit int
	CaptureDelay time.Duration
}

// Default returns the stock policy.
func Default() Policy {
	return Policy{
		MinDuration:  DefaultMinDuration,
		MaxDuration:  DefaultMaxDuration,
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
		Zoom:         DefaultZoom,
		HistoryLimit: DefaultHistoryLimit,
		CaptureDelay: DefaultCaptureDelay,
	}
}

// Normalize fills unset fields with defaults and repairs inverted
// ranges so a partially built Policy is always usable.
func (p Policy) Normalize() Policy {
	d := Default()
	if p.MinDuration <= 0 {
		p.MinDuration = d.MinDuration
	}
	if p.MaxDuration <= 0 {
		p.MaxDuration = d.MaxDuration
	}
	if p.MaxDuration < p.MinDuration {
		p.MaxDuration = p.MinDuration
	}
	if p.MinZoom <= 0 {
		p.MinZoom = d.MinZoom
	}
	if p.MaxZoom <= 0 {
		p.MaxZoom = d.MaxZoom
	}
	if p.MaxZoom < p.MinZoom {
		p.MaxZoom = p.MinZoom
	}
	if p.Zoom <= 0 {
		p.Zoom = d.Zoom
	}
	if p.HistoryLimit <= 0 {
		p.HistoryLimit = d.HistoryLimit
	}
	if p.CaptureDelay < 0 {
		p.CaptureDelay = d.CaptureDelay
	}
	return p
}

// ClampDuration applies the duration floor and cap.
func (p Policy) ClampDuration(v float64) float64 {
	return clamp(v, p.MinDuration, p.MaxDuration)
}

// ClampZoom applies the zoom clamp.
func (p Policy) ClampZoom(v float64) float64 {
	return clamp(v, p.MinZoom, p.MaxZoom)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
