package detect

// Sharing state values the macOS window server reports for
// kCGWindowSharingState. A window with SharingNone never appears in screen
// captures or screen-sharing streams, regardless of its on-screen visibility.
const (
	SharingNone      int32 = 0
	SharingReadOnly  int32 = 1
	SharingReadWrite int32 = 2
)

// WindowInfo is the window metadata the classifier consumes. Values describe a
// single enumeration pass and are not kept across passes.
type WindowInfo struct {
	Owner        string
	Name         string
	ID           int32
	Layer        int32
	SharingState int32
}

// Enumerator supplies the current window list from the window server. An empty
// list is a valid answer (no windows, or the query was denied); ordering is not
// guaranteed. Implementations must be safe for concurrent use because
// detection passes do not serialize around them.
type Enumerator interface {
	Windows() ([]WindowInfo, error)
}

// EnumeratorFunc adapts a plain function to the Enumerator interface.
type EnumeratorFunc func() ([]WindowInfo, error)

// Windows implements Enumerator.
func (f EnumeratorFunc) Windows() ([]WindowInfo, error) { return f() }
