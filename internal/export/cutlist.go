package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/avilov/montage/internal/timeline"
)

// CutList renders the timeline as an EDL-style cut list: one event per
// clip, layers bottom to top, clips in start order within a layer.
// Source in/out come from the clip's trim into its media; record in/out
// are timeline positions.
func CutList(t timeline.Timeline, title string, fps int) string {
	if fps <= 0 {
		fps = 30
	}

	lines := []string{fmt.Sprintf("TITLE: %s", title), ""}

	event := 1
	for _, l := range t.Layers {
		clips := append([]timeline.Clip(nil), l.Clips...)
		sort.SliceStable(clips, func(i, j int) bool { return clips[i].StartTime < clips[j].StartTime })

		for _, c := range clips {
			srcIn := Timecode(c.TrimStart, fps)
			srcOut := Timecode(c.TrimStart+c.Duration, fps)
			recIn := Timecode(c.StartTime, fps)
			recOut := Timecode(c.End(), fps)

			track := "V"
			if l.Kind == timeline.LayerAudio {
				track = "A"
			}

			name := c.Asset
			if name == "" {
				name = "(generated)"
			}

			lines = append(lines,
				fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", event, "AX", track, srcIn, srcOut, recIn, recOut),
				fmt.Sprintf("* FROM CLIP NAME:  %s", name),
				fmt.Sprintf("* LAYER:  %s", l.Name),
			)
			event++
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Timecode formats seconds as hh:mm:ss:ff at the given frame rate.
func Timecode(seconds float64, fps int) string {
	totalFrames := int(math.Round(seconds * float64(fps)))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	secs := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames)
}
