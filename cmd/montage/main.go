package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/avilov/montage/internal/config"
	"github.com/avilov/montage/internal/export"
	"github.com/avilov/montage/internal/project"
	"github.com/avilov/montage/internal/store"
	"github.com/avilov/montage/internal/timeline"
)

func main() {
	projectPtr := flag.String("project", "", "Path to a project YAML file (if empty, a demo project is built in memory)")
	cutlistPtr := flag.Bool("cutlist", false, "Print the timeline as an EDL-style cut list")
	fpsPtr := flag.Int("fps", 30, "Frame rate for cut list timecodes")
	atPtr := flag.Float64("at", -1, "Sample the resolved frame at this timeline time (seconds)")
	savePtr := flag.String("save", "", "Write the project back to this path")
	verbosePtr := flag.Bool("v", false, "Verbose engine logging")

	flag.Parse()

	var logger *slog.Logger
	if *verbosePtr {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	policy := config.Default()

	var proj *project.Project
	if *projectPtr != "" {
		var err error
		proj, err = project.Read(*projectPtr)
		if err != nil {
			log.Fatalf("[-] Failed to load project: %v", err)
		}
		fmt.Printf("[*] Loaded project: %s (v%d)\n", proj.Name, proj.Version)
	} else {
		proj = demoProject(policy, logger)
		fmt.Printf("[*] Built demo project: %s\n", proj.Name)
	}

	tl := proj.Timeline(policy)
	printSummary(tl)

	if *cutlistPtr {
		fmt.Println(export.CutList(tl, proj.Name, *fpsPtr))
	}

	if *atPtr >= 0 {
		printFrame(tl, *atPtr)
	}

	if *savePtr != "" {
		proj.Capture(tl)
		if err := project.Write(proj, *savePtr); err != nil {
			log.Fatalf("[-] Failed to save project: %v", err)
		}
		fmt.Printf("[*] Project saved: %s\n", *savePtr)
	}
}

func printSummary(tl timeline.Timeline) {
	fmt.Printf("[*] Duration %.1fs, zoom %.0f px/s, %d layer(s)\n", tl.Duration, tl.Zoom, len(tl.Layers))
	for i, l := range tl.Layers {
		fmt.Printf("    %d: %-8s %-12s %d clip(s)", i, l.Kind, l.Name, len(l.Clips))
		if !l.Visible {
			fmt.Print("  [hidden]")
		}
		fmt.Println()
	}
}

func printFrame(tl timeline.Timeline, at float64) {
	frame := export.FrameAt(tl, at)
	fmt.Printf("[*] Frame at %.2fs: %d active clip(s)\n", at, len(frame))
	for _, fc := range frame {
		fmt.Printf("    %-8s src=%-20s source@%.2fs scale=(%.2f,%.2f) pos=(%.0f,%.0f) rot=%.1f opacity=%.2f\n",
			fc.LayerKind, displayName(fc), fc.Source,
			fc.Props.Scale.X, fc.Props.Scale.Y,
			fc.Props.Position.X, fc.Props.Position.Y,
			fc.Props.Rotation, fc.Props.Opacity)
	}
}

func displayName(fc export.FrameClip) string {
	if fc.Asset != "" {
		return fc.Asset
	}
	return "(generated)"
}

// demoProject assembles a small two-layer timeline through the store,
// the same way a UI would drive it.
func demoProject(policy config.Policy, logger *slog.Logger) *project.Project {
	st := store.New(store.DefaultTimeline(policy), policy, logger)

	opacity := 1.0
	fadeIn := timeline.Transition{Kind: timeline.TransitionFade, Duration: 0.5}
	st.Dispatch(store.AddClip{Layer: 0, Clip: timeline.Clip{
		ID:        timeline.NewID(),
		Asset:     "media/intro.mp4",
		StartTime: 0,
		Duration:  12,
		Opacity:   &opacity,
		Transitions: &timeline.Transitions{
			In: &fadeIn,
		},
		Keyframes: []timeline.Keyframe{
			{Time: 0, Scale: ptr(timeline.UniformScale(1)), Easing: timeline.EasingLinear},
			{Time: 6, Scale: ptr(timeline.AxisScale(1.4, 1.4)), Easing: timeline.EasingInOut},
		},
	}})
	st.Dispatch(store.AddClip{Layer: 0, Clip: timeline.Clip{
		ID:        timeline.NewID(),
		Asset:     "media/main.mp4",
		StartTime: 12,
		Duration:  30,
		TrimStart: 3,
	}})
	st.Dispatch(store.AddClip{Layer: 1, Clip: timeline.Clip{
		ID:        timeline.NewID(),
		Asset:     "media/soundtrack.mp3",
		StartTime: 0,
		Duration:  42,
	}})

	return project.FromTimeline("demo", st.Timeline())
}

func ptr[T any](v T) *T {
	return &v
}
