// Package macwin enumerates on-screen windows through the macOS window server
// (CGWindowList). It is the single platform-specific component of the module;
// everything downstream consumes its output as plain values.
//
// The CoreGraphics and CoreFoundation bindings are loaded at runtime through
// purego, so the package builds without cgo. On non-macOS platforms List
// always returns ErrUnsupported.
//
// CGWindowListCopyWindowInfo is safe to call from any thread, so List may be
// invoked concurrently.
package macwin

import "errors"

// ErrUnsupported is returned by List on platforms without a macOS window
// server. The stub exists only so the module builds everywhere; cross-platform
// enumeration is out of scope.
var ErrUnsupported = errors.New("macwin: window enumeration requires macOS")

// ErrUnavailable indicates the window server refused or failed the query,
// typically because the process lacks the screen recording permission.
var ErrUnavailable = errors.New("macwin: window server query unavailable")

// ListOptions control a single enumeration pass.
type ListOptions struct {
	// OnScreenOnly restricts the pass to windows currently on screen
	// (kCGWindowListOptionOnScreenOnly). When false, all windows are
	// returned, including minimized ones and windows on other Spaces.
	OnScreenOnly bool
}

// CGWindowListOption bits and the null relative-window sentinel.
const (
	optionAll          uint32 = 0
	optionOnScreenOnly uint32 = 1 << 0
	nullWindowID       uint32 = 0
)

func (o ListOptions) cgOption() uint32 {
	if o.OnScreenOnly {
		return optionOnScreenOnly
	}
	return optionAll
}

// Window is one window-server record. Field values are snapshots; they are
// only meaningful for the enumeration pass that produced them.
type Window struct {
	Owner        string
	Name         string
	ID           int32
	OwnerPID     int32
	Layer        int32
	SharingState int32 // kCGWindowSharingState: 0 excluded from capture, 1 read-only, 2 read-write
	OnScreen     bool
	Alpha        float64
}
