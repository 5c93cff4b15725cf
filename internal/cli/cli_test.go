package cli

import (
	"path/filepath"
	"testing"

	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/internal/config"
)

// fakeFactory builds detectors backed by a canned window list instead of the
// live window server.
func fakeFactory(windows []detect.WindowInfo, err error) detectorFactory {
	return func(cfg config.RuntimeConfig) *detect.Detector {
		enumerator := detect.EnumeratorFunc(func() ([]detect.WindowInfo, error) {
			return windows, err
		})
		return detect.NewDetector(enumerator, detect.NewMatcher(cfg.Identifiers))
	}
}

// emptyLoader points at a config path that does not exist, so tests exercise
// pure defaults plus flags.
func emptyLoader(t *testing.T) *config.Loader {
	t.Helper()
	return &config.Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
}

func cluelyWindows() []detect.WindowInfo {
	return []detect.WindowInfo{
		{Owner: "Cluely", ID: 1, Layer: 3, SharingState: detect.SharingNone},
		{Owner: "Cluely", ID: 2, Layer: 0, SharingState: detect.SharingReadWrite},
		{Owner: "Finder", ID: 3, Layer: 0, SharingState: detect.SharingReadWrite},
	}
}
