package detect

import (
	"errors"
	"testing"
)

type fakeEnumerator struct {
	windows []WindowInfo
	err     error
	calls   int
}

func (f *fakeEnumerator) Windows() ([]WindowInfo, error) {
	f.calls++
	return f.windows, f.err
}

func checkInvariants(t *testing.T, r Result) {
	t.Helper()

	if r.IsDetected != (r.WindowCount > 0) {
		t.Fatalf("is_detected must equal window_count > 0: %+v", r)
	}

	if r.ScreenCaptureEvasionCount > r.WindowCount {
		t.Fatalf("evasion count exceeds window count: %+v", r)
	}

	if r.ElevatedLayerCount > r.WindowCount {
		t.Fatalf("elevated count exceeds window count: %+v", r)
	}
}

func TestDetectNoMatchingWindows(t *testing.T) {
	enum := &fakeEnumerator{windows: []WindowInfo{
		{Owner: "Finder", Layer: 0, SharingState: SharingReadWrite},
		{Owner: "Terminal", Layer: 0, SharingState: SharingReadWrite},
	}}

	result := NewDetector(enum, NewMatcher(nil)).Detect()
	checkInvariants(t, result)

	want := Result{}
	if result != want {
		t.Fatalf("expected zero result, got %+v", result)
	}
}

func TestDetectMixedEvasionTechniques(t *testing.T) {
	enum := &fakeEnumerator{windows: []WindowInfo{
		{Owner: "Cluely", ID: 1, Layer: 3, SharingState: SharingNone},
		{Owner: "Cluely", ID: 2, Layer: 0, SharingState: SharingReadWrite},
		{Owner: "Dock", Layer: 20, SharingState: SharingNone},
	}}

	result := NewDetector(enum, NewMatcher(nil)).Detect()
	checkInvariants(t, result)

	want := Result{
		IsDetected:                true,
		WindowCount:               2,
		ScreenCaptureEvasionCount: 1,
		ElevatedLayerCount:        1,
		MaxLayerDetected:          3,
	}
	if result != want {
		t.Fatalf("expected %+v, got %+v", want, result)
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	enum := &fakeEnumerator{windows: []WindowInfo{
		{Owner: "Cluely", ID: 7, Layer: 25, SharingState: SharingNone},
	}}
	detector := NewDetector(enum, NewMatcher(nil))

	first := detector.Detect()
	second := detector.Detect()

	if first != second {
		t.Fatalf("identical passes should yield identical results: %+v vs %+v", first, second)
	}

	if enum.calls != 2 {
		t.Fatalf("expected one enumeration per pass, got %d calls", enum.calls)
	}
}

func TestRunSurfacesEnumerationError(t *testing.T) {
	wantErr := errors.New("window server denied")
	detector := NewDetector(&fakeEnumerator{err: wantErr}, NewMatcher(nil))

	result, err := detector.Run()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected enumeration error, got %v", err)
	}

	if result != (Result{}) {
		t.Fatalf("failed run should return a zero result, got %+v", result)
	}
}

func TestDetectDegradesOnEnumerationError(t *testing.T) {
	detector := NewDetector(&fakeEnumerator{err: errors.New("denied")}, NewMatcher(nil))

	result := detector.Detect()
	checkInvariants(t, result)

	if result.IsDetected {
		t.Fatal("enumeration failure must degrade to not-detected, not fail")
	}
}

func TestDetectWindowsReturnsMatchingPass(t *testing.T) {
	enum := &fakeEnumerator{windows: []WindowInfo{
		{Owner: "Cluely", ID: 4, Layer: 0, SharingState: SharingNone},
		{Owner: "Notes", ID: 5, Layer: 0, SharingState: SharingReadWrite},
	}}

	windows, result := NewDetector(enum, NewMatcher(nil)).DetectWindows()
	if len(windows) != 1 || windows[0].ID != 4 {
		t.Fatalf("unexpected classified windows: %+v", windows)
	}

	if int(result.WindowCount) != len(windows) {
		t.Fatalf("aggregate count %d disagrees with window slice length %d", result.WindowCount, len(windows))
	}
}

func TestAggregateSentinelOnEmptyInput(t *testing.T) {
	result := Aggregate(nil)
	checkInvariants(t, result)

	if result.MaxLayerDetected != 0 {
		t.Fatalf("empty input must keep the max-layer sentinel 0, got %d", result.MaxLayerDetected)
	}
}

func TestAggregateCountsAreIndependentOfOrder(t *testing.T) {
	windows := []ClassifiedWindow{
		{WindowInfo: WindowInfo{Layer: 0}, EvadesCapture: true},
		{WindowInfo: WindowInfo{Layer: 9}, Elevated: true},
		{WindowInfo: WindowInfo{Layer: 4}, Elevated: true, EvadesCapture: true},
	}
	reversed := []ClassifiedWindow{windows[2], windows[1], windows[0]}

	if Aggregate(windows) != Aggregate(reversed) {
		t.Fatal("aggregation must not depend on input order")
	}

	result := Aggregate(windows)
	if result.MaxLayerDetected != 9 {
		t.Fatalf("expected max layer 9, got %d", result.MaxLayerDetected)
	}
}
