//go:build darwin

package macwin

import (
	"bytes"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

const (
	encodingUTF8      uint32 = 0x08000100 // kCFStringEncodingUTF8
	numberIntType     int32  = 9          // kCFNumberIntType
	numberFloat64Type int32  = 6          // kCFNumberFloat64Type
)

// CoreGraphics and CoreFoundation functions, registered once.
var (
	fnCGWindowListCopyWindowInfo func(option uint32, relativeToWindow uint32) uintptr

	fnCFArrayGetCount           func(array uintptr) int
	fnCFArrayGetValueAtIndex    func(array uintptr, index int) uintptr
	fnCFDictionaryGetValue      func(dict uintptr, key uintptr) uintptr
	fnCFStringCreateWithCString func(alloc uintptr, s string, encoding uint32) uintptr
	fnCFStringGetCString        func(s uintptr, buffer *byte, size int, encoding uint32) bool
	fnCFNumberGetInt32          func(num uintptr, numType int32, value *int32) bool
	fnCFNumberGetFloat64        func(num uintptr, numType int32, value *float64) bool
	fnCFBooleanGetValue         func(b uintptr) bool
	fnCFRelease                 func(cf uintptr)
	fnCFGetTypeID               func(cf uintptr) uintptr
	fnCFStringGetTypeID         func() uintptr
	fnCFNumberGetTypeID         func() uintptr
	fnCFBooleanGetTypeID        func() uintptr
)

// Cached CFString keys for the window dictionary. Created once and never
// released.
var (
	keyOwnerName    uintptr
	keyName         uintptr
	keyNumber       uintptr
	keyOwnerPID     uintptr
	keyLayer        uintptr
	keySharingState uintptr
	keyIsOnscreen   uintptr
	keyAlpha        uintptr
)

var (
	loadOnce sync.Once
	loadErr  error
)

func loadCoreGraphics() error {
	loadOnce.Do(func() {
		coreFoundation, err := purego.Dlopen(
			"/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation",
			purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = errors.Wrap(err, "load CoreFoundation")
			return
		}

		coreGraphics, err := purego.Dlopen(
			"/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics",
			purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = errors.Wrap(err, "load CoreGraphics")
			return
		}

		purego.RegisterLibFunc(&fnCGWindowListCopyWindowInfo, coreGraphics, "CGWindowListCopyWindowInfo")

		purego.RegisterLibFunc(&fnCFArrayGetCount, coreFoundation, "CFArrayGetCount")
		purego.RegisterLibFunc(&fnCFArrayGetValueAtIndex, coreFoundation, "CFArrayGetValueAtIndex")
		purego.RegisterLibFunc(&fnCFDictionaryGetValue, coreFoundation, "CFDictionaryGetValue")
		purego.RegisterLibFunc(&fnCFStringCreateWithCString, coreFoundation, "CFStringCreateWithCString")
		purego.RegisterLibFunc(&fnCFStringGetCString, coreFoundation, "CFStringGetCString")
		purego.RegisterLibFunc(&fnCFNumberGetInt32, coreFoundation, "CFNumberGetValue")
		purego.RegisterLibFunc(&fnCFNumberGetFloat64, coreFoundation, "CFNumberGetValue")
		purego.RegisterLibFunc(&fnCFBooleanGetValue, coreFoundation, "CFBooleanGetValue")
		purego.RegisterLibFunc(&fnCFRelease, coreFoundation, "CFRelease")
		purego.RegisterLibFunc(&fnCFGetTypeID, coreFoundation, "CFGetTypeID")
		purego.RegisterLibFunc(&fnCFStringGetTypeID, coreFoundation, "CFStringGetTypeID")
		purego.RegisterLibFunc(&fnCFNumberGetTypeID, coreFoundation, "CFNumberGetTypeID")
		purego.RegisterLibFunc(&fnCFBooleanGetTypeID, coreFoundation, "CFBooleanGetTypeID")

		keyOwnerName = cfString("kCGWindowOwnerName")
		keyName = cfString("kCGWindowName")
		keyNumber = cfString("kCGWindowNumber")
		keyOwnerPID = cfString("kCGWindowOwnerPID")
		keyLayer = cfString("kCGWindowLayer")
		keySharingState = cfString("kCGWindowSharingState")
		keyIsOnscreen = cfString("kCGWindowIsOnscreen")
		keyAlpha = cfString("kCGWindowAlpha")
	})
	return loadErr
}

// List performs one enumeration pass against the window server. A nil window
// list from CoreGraphics maps to ErrUnavailable; the caller decides whether
// that degrades to zero windows or surfaces as a failure.
func List(opts ListOptions) ([]Window, error) {
	if err := loadCoreGraphics(); err != nil {
		return nil, err
	}

	array := fnCGWindowListCopyWindowInfo(opts.cgOption(), nullWindowID)
	if array == 0 {
		return nil, ErrUnavailable
	}
	defer fnCFRelease(array)

	count := fnCFArrayGetCount(array)
	windows := make([]Window, 0, count)

	for i := 0; i < count; i++ {
		dict := fnCFArrayGetValueAtIndex(array, i)
		if dict == 0 {
			continue
		}

		windows = append(windows, Window{
			Owner:        dictString(dict, keyOwnerName),
			Name:         dictString(dict, keyName),
			ID:           dictInt32(dict, keyNumber),
			OwnerPID:     dictInt32(dict, keyOwnerPID),
			Layer:        dictInt32(dict, keyLayer),
			SharingState: dictInt32(dict, keySharingState),
			OnScreen:     dictBool(dict, keyIsOnscreen),
			Alpha:        dictFloat64(dict, keyAlpha),
		})
	}

	return windows, nil
}

func cfString(s string) uintptr {
	return fnCFStringCreateWithCString(0, s, encodingUTF8)
}

func dictString(dict, key uintptr) string {
	value := fnCFDictionaryGetValue(dict, key)
	if value == 0 || fnCFGetTypeID(value) != fnCFStringGetTypeID() {
		return ""
	}

	var buf [1024]byte
	if !fnCFStringGetCString(value, &buf[0], len(buf), encodingUTF8) {
		return ""
	}

	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf[:])
}

func dictInt32(dict, key uintptr) int32 {
	value := fnCFDictionaryGetValue(dict, key)
	if value == 0 || fnCFGetTypeID(value) != fnCFNumberGetTypeID() {
		return 0
	}

	var result int32
	if !fnCFNumberGetInt32(value, numberIntType, &result) {
		return 0
	}
	return result
}

func dictFloat64(dict, key uintptr) float64 {
	value := fnCFDictionaryGetValue(dict, key)
	if value == 0 || fnCFGetTypeID(value) != fnCFNumberGetTypeID() {
		return 0
	}

	var result float64
	if !fnCFNumberGetFloat64(value, numberFloat64Type, &result) {
		return 0
	}
	return result
}

func dictBool(dict, key uintptr) bool {
	value := fnCFDictionaryGetValue(dict, key)
	if value == 0 || fnCFGetTypeID(value) != fnCFBooleanGetTypeID() {
		return false
	}
	return fnCFBooleanGetValue(value)
}
