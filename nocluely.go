package nocluely

import (
	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/macwin"
)

// Options configure detector construction. The zero value uses the default
// Cluely identifier list and only considers on-screen windows.
type Options struct {
	// Identifiers are the window owner names to match exactly
	// (case-insensitive). Empty means detect.DefaultIdentifiers.
	Identifiers []string
	// IncludeOffscreen also matches minimized windows and windows on other
	// Spaces.
	IncludeOffscreen bool
}

// NewDetector builds a detector backed by the live macOS window server.
func NewDetector(opts Options) *detect.Detector {
	enumerator := detect.EnumeratorFunc(func() ([]detect.WindowInfo, error) {
		windows, err := macwin.List(macwin.ListOptions{OnScreenOnly: !opts.IncludeOffscreen})
		if err != nil {
			return nil, err
		}

		infos := make([]detect.WindowInfo, 0, len(windows))
		for _, w := range windows {
			infos = append(infos, detect.WindowInfo{
				Owner:        w.Owner,
				Name:         w.Name,
				ID:           w.ID,
				Layer:        w.Layer,
				SharingState: w.SharingState,
			})
		}
		return infos, nil
	})

	return detect.NewDetector(enumerator, detect.NewMatcher(opts.Identifiers))
}

// IsCluelyRunning reports whether any Cluely-owned window currently exists.
func IsCluelyRunning() bool {
	return Detect().IsDetected
}

// Detect runs one detection pass against the window server and returns the
// aggregate verdict. The result is a self-contained value owned by the caller.
func Detect() detect.Result {
	return NewDetector(Options{}).Detect()
}

// WindowCount returns the number of Cluely-owned windows currently found.
func WindowCount() uint32 {
	return Detect().WindowCount
}

// Report runs one detection pass and renders the detailed report. The caller
// owns the returned string; there is no release step.
func Report() string {
	windows, result := NewDetector(Options{}).DetectWindows()
	return detect.RenderDetailed(result, windows)
}
