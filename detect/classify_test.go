package detect

import "testing"

func TestMatcherExactMatchOnly(t *testing.T) {
	m := NewMatcher(nil)

	tests := []struct {
		name  string
		owner string
		want  bool
	}{
		{"canonical", "Cluely", true},
		{"lowercase", "cluely", true},
		{"uppercase", "CLUELY", true},
		{"helper", "Cluely Helper", true},
		{"renderer_helper", "cluely helper (renderer)", true},
		{"bundle_id", "com.cluely", true},
		{"substring_not_enough", "NoCluely Detector", false},
		{"prefix_not_enough", "Cluely2", false},
		{"screen_sharing_tool", "zoom.us", false},
		{"empty_owner", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.owner); got != tt.want {
				t.Fatalf("Matches(%q) = %v, want %v", tt.owner, got, tt.want)
			}
		})
	}
}

func TestNewMatcherCustomIdentifiers(t *testing.T) {
	m := NewMatcher([]string{"  Overlay Monitor  ", "", "spyapp"})

	if !m.Matches("overlay monitor") {
		t.Fatal("custom identifier should match after trimming and case folding")
	}

	if !m.Matches("SpyApp") {
		t.Fatal("second custom identifier should match")
	}

	if m.Matches("Cluely") {
		t.Fatal("defaults should not apply when a custom list is provided")
	}
}

func TestClassifyDerivesFlags(t *testing.T) {
	m := NewMatcher(nil)

	windows := []WindowInfo{
		{Owner: "Finder", Layer: 0, SharingState: SharingReadWrite},
		{Owner: "Cluely", ID: 11, Layer: 3, SharingState: SharingNone},
		{Owner: "Cluely Helper", ID: 12, Layer: 0, SharingState: SharingReadOnly},
		{Owner: "Safari", Layer: 8, SharingState: SharingNone},
	}

	classified := m.Classify(windows)
	if len(classified) != 2 {
		t.Fatalf("expected 2 classified windows, got %d", len(classified))
	}

	first := classified[0]
	if first.ID != 11 || !first.EvadesCapture || !first.Elevated {
		t.Fatalf("unexpected classification for first window: %+v", first)
	}

	second := classified[1]
	if second.ID != 12 || second.EvadesCapture || second.Elevated {
		t.Fatalf("unexpected classification for second window: %+v", second)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	m := NewMatcher(nil)

	if got := m.Classify(nil); len(got) != 0 {
		t.Fatalf("nil input should classify to empty, got %d entries", len(got))
	}

	if got := m.Classify([]WindowInfo{}); len(got) != 0 {
		t.Fatalf("empty input should classify to empty, got %d entries", len(got))
	}
}

func TestClassifyPreservesInputOrder(t *testing.T) {
	m := NewMatcher(nil)

	windows := []WindowInfo{
		{Owner: "Cluely", ID: 3},
		{Owner: "Cluely", ID: 1},
		{Owner: "Cluely", ID: 2},
	}

	classified := m.Classify(windows)
	for i, want := range []int32{3, 1, 2} {
		if classified[i].ID != want {
			t.Fatalf("position %d: expected window ID %d, got %d", i, want, classified[i].ID)
		}
	}
}
