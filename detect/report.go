package detect

import (
	"fmt"
	"strings"
)

// Render produces the summary report for a Result: a single "not detected"
// line when no windows matched, otherwise a header with the window count and
// one line per evasion technique observed. The returned string is a plain Go
// value owned by the caller; no release step exists.
func Render(r Result) string {
	if r.WindowCount == 0 {
		return "No Cluely windows detected.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cluely detected: %d window(s)\n", r.WindowCount)
	if r.ScreenCaptureEvasionCount > 0 {
		fmt.Fprintf(&b, "  - %d window(s) configured to avoid screen capture\n", r.ScreenCaptureEvasionCount)
	}
	if r.ElevatedLayerCount > 0 {
		fmt.Fprintf(&b, "  - %d window(s) using elevated display layers (max layer %d)\n",
			r.ElevatedLayerCount, r.MaxLayerDetected)
	}
	return b.String()
}

// RenderDetailed produces the full report: summary, evasion techniques, and a
// details block for every matched window. The windows slice should come from
// the same pass as the Result.
func RenderDetailed(r Result, windows []ClassifiedWindow) string {
	var b strings.Builder

	if !r.IsDetected {
		b.WriteString("NO CLUELY MONITORING DETECTED\n")
		b.WriteString("=============================\n\n")
		b.WriteString("No Cluely employee monitoring software found.\n")
		b.WriteString("Your system appears to be free from this monitoring tool.\n")
		return b.String()
	}

	b.WriteString("CLUELY EMPLOYEE MONITORING DETECTED\n")
	b.WriteString("===================================\n\n")

	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  - Total Cluely windows: %d\n", r.WindowCount)
	fmt.Fprintf(&b, "  - Screen capture evasion: %d\n", r.ScreenCaptureEvasionCount)
	fmt.Fprintf(&b, "  - Elevated layer usage: %d\n", r.ElevatedLayerCount)
	if r.MaxLayerDetected > 0 {
		fmt.Fprintf(&b, "  - Highest layer detected: %d\n", r.MaxLayerDetected)
	}
	b.WriteString("\n")

	b.WriteString("Evasion techniques detected:\n")
	if r.ScreenCaptureEvasionCount > 0 {
		fmt.Fprintf(&b, "  ! %d window(s) configured to avoid screen capture\n", r.ScreenCaptureEvasionCount)
	}
	if r.ElevatedLayerCount > 0 {
		fmt.Fprintf(&b, "  ! %d window(s) using elevated display layers\n", r.ElevatedLayerCount)
	}
	b.WriteString("\n")

	b.WriteString("Window details:\n")
	for i, w := range windows {
		fmt.Fprintf(&b, "  %d. Window ID %d [%s]\n", i+1, w.ID, w.Owner)
		fmt.Fprintf(&b, "     - Sharing state: %d (%s)\n", w.SharingState, sharingDescription(w.EvadesCapture))
		fmt.Fprintf(&b, "     - Layer: %d (%s)\n", w.Layer, layerDescription(w.Elevated))
		if techniques := windowTechniques(w); len(techniques) > 0 {
			fmt.Fprintf(&b, "     - Techniques: %s\n", strings.Join(techniques, ", "))
		}
	}
	b.WriteString("\n")

	b.WriteString("WARNING:\n")
	b.WriteString("  This software is designed to monitor employee activity\n")
	b.WriteString("  while remaining hidden during screen sharing sessions.\n")
	b.WriteString("  Your activities may be recorded even when sharing your screen.\n")

	return b.String()
}

func sharingDescription(evades bool) string {
	if evades {
		return "avoiding screen capture"
	}
	return "normal"
}

func layerDescription(elevated bool) string {
	if elevated {
		return "elevated - potential overlay"
	}
	return "normal"
}

func windowTechniques(w ClassifiedWindow) []string {
	var techniques []string
	if w.EvadesCapture {
		techniques = append(techniques, "Screen capture evasion")
	}
	if w.Elevated {
		techniques = append(techniques, "Elevated layer positioning")
	}
	return techniques
}
