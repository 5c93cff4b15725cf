// Package nocluely detects the Cluely employee monitoring application by
// inspecting window metadata exposed by the macOS window server.
//
// Cluely hides from screen sharing by excluding its windows from capture
// (kCGWindowSharingState = none) and drawing them on elevated layers. Those
// attributes are still visible to the window server, so a single enumeration
// pass is enough to find the windows and classify the evasion techniques they
// use.
//
// # Basic Usage
//
//	if nocluely.IsCluelyRunning() {
//	    fmt.Println(nocluely.Report())
//	}
//
// For the structured verdict:
//
//	result := nocluely.Detect()
//	fmt.Printf("windows=%d evading=%d\n", result.WindowCount, result.ScreenCaptureEvasionCount)
//
// # Custom Identifiers
//
// The matched owner names generalize beyond the defaults:
//
//	detector := nocluely.NewDetector(nocluely.Options{
//	    Identifiers: []string{"Overlay Monitor"},
//	})
//	result := detector.Detect()
//
// Detection degrades to "not detected" when the window server query is denied
// (for example, a missing screen recording permission). Callers that need to
// tell the two apart should use Detector.Run, which surfaces the error.
//
// All operations are stateless single passes; concurrent calls are
// independent.
package nocluely
