package detect

import "strings"

// DefaultIdentifiers lists the owner names the Cluely process family uses,
// including the helper processes its Electron runtime spawns.
var DefaultIdentifiers = []string{
	"Cluely",
	"Clue.ly",
	"com.cluely",
	"io.cluely",
	"co.cluely",
	"Cluely Helper",
	"Cluely Helper (Renderer)",
	"Cluely Helper (GPU)",
}

// Matcher decides whether a window owner is one of the monitored identifiers.
// Owners are compared case-insensitively and exactly. Substring matching is
// deliberately not used, since screen-sharing software makes owner-name false
// positives a real risk.
type Matcher struct {
	identifiers []string
}

// NewMatcher builds a matcher for the given identifier list. An empty list
// falls back to DefaultIdentifiers.
func NewMatcher(identifiers []string) Matcher {
	if len(identifiers) == 0 {
		identifiers = DefaultIdentifiers
	}

	lowered := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(trimmed))
	}

	return Matcher{identifiers: lowered}
}

// Matches reports whether owner equals one of the configured identifiers.
func (m Matcher) Matches(owner string) bool {
	lowered := strings.ToLower(owner)
	for _, id := range m.identifiers {
		if lowered == id {
			return true
		}
	}
	return false
}

// ClassifiedWindow is a matched window tagged with the evasion techniques it
// exhibits.
type ClassifiedWindow struct {
	WindowInfo
	EvadesCapture bool
	Elevated      bool
}

// Classify keeps windows owned by a monitored identifier and derives their
// evasion flags. Input order is preserved. The function is total: nil or empty
// input yields an empty result and there are no error conditions.
func (m Matcher) Classify(windows []WindowInfo) []ClassifiedWindow {
	classified := make([]ClassifiedWindow, 0, len(windows))
	for _, w := range windows {
		if !m.Matches(w.Owner) {
			continue
		}
		classified = append(classified, ClassifiedWindow{
			WindowInfo:    w,
			EvadesCapture: w.SharingState == SharingNone,
			Elevated:      w.Layer > 0,
		})
	}
	return classified
}
