// Package detect implements the core detection pipeline for Cluely-style
// screen-capture-evading overlay windows: classify enumerated windows against
// a set of owner identifiers, fold the matches into an aggregate verdict, and
// render textual reports.
//
// Every operation is a stateless single-pass transformation. Results are value
// types owned by the caller; nothing is retained between calls.
package detect

// Result is the aggregate verdict for one detection pass.
//
// Detection policy lives here: IsDetected means any window owned by a
// monitored identifier exists at all. The evasion counts are diagnostic detail
// distinguishing "running normally" from "actively hiding from screen
// capture"; they never gate detection, so a Cluely build that stops setting
// its evasion attributes is still detected.
type Result struct {
	IsDetected                bool   `json:"is_detected"`
	WindowCount               uint32 `json:"window_count"`
	ScreenCaptureEvasionCount uint32 `json:"screen_capture_evasion_count"`
	ElevatedLayerCount        uint32 `json:"elevated_layer_count"`
	MaxLayerDetected          int32  `json:"max_layer_detected"`
}

// Aggregate folds classified windows into a Result. MaxLayerDetected stays 0
// when no window sits above the normal desktop layer.
func Aggregate(windows []ClassifiedWindow) Result {
	result := Result{WindowCount: uint32(len(windows))}
	result.IsDetected = result.WindowCount > 0

	for _, w := range windows {
		if w.EvadesCapture {
			result.ScreenCaptureEvasionCount++
		}
		if w.Elevated {
			result.ElevatedLayerCount++
			if w.Layer > result.MaxLayerDetected {
				result.MaxLayerDetected = w.Layer
			}
		}
	}

	return result
}

// Detector runs the enumerate → classify → aggregate pipeline against a
// window source. Construct with NewDetector; the zero value has no enumerator.
type Detector struct {
	enumerator Enumerator
	matcher    Matcher
}

// NewDetector pairs an enumerator with a matcher.
func NewDetector(enumerator Enumerator, matcher Matcher) *Detector {
	return &Detector{enumerator: enumerator, matcher: matcher}
}

// Run performs one detection pass and surfaces enumeration failure to the
// caller.
func (d *Detector) Run() (Result, error) {
	_, result, err := d.pass()
	return result, err
}

// Detect performs one detection pass, treating an unavailable window server as
// zero windows found. A permission gap degrades to "not detected" instead of
// failing the calling process; use Run to observe the underlying error.
func (d *Detector) Detect() Result {
	result, err := d.Run()
	if err != nil {
		return Result{}
	}
	return result
}

// DetectWindows returns the per-window classification alongside the aggregate,
// for callers that render detailed reports. Enumeration failure yields an
// empty pass, matching Detect.
func (d *Detector) DetectWindows() ([]ClassifiedWindow, Result) {
	classified, result, err := d.pass()
	if err != nil {
		return nil, Result{}
	}
	return classified, result
}

// RunWindows is the strict variant of DetectWindows: it returns the
// classification, the aggregate, and any enumeration error.
func (d *Detector) RunWindows() ([]ClassifiedWindow, Result, error) {
	return d.pass()
}

func (d *Detector) pass() ([]ClassifiedWindow, Result, error) {
	windows, err := d.enumerator.Windows()
	if err != nil {
		return nil, Result{}, err
	}

	classified := d.matcher.Classify(windows)
	return classified, Aggregate(classified), nil
}
