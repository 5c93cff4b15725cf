// Package events streams detection activity as NDJSON records for callers
// that consume the CLI from scripts or workers.
package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/terminalsin/no-cluely/detect"
)

// Event is a single NDJSON record.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
type Emitter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewEmitter returns a new NDJSON emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w}
}

// Emit serializes the event to JSON and appends a newline.
func (e *Emitter) Emit(evt Event) error {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.writer.Write(append(payload, '\n')); err != nil {
		return err
	}

	return nil
}

// DetectionStart builds the record announcing a detection pass.
func DetectionStart(identifiers int) Event {
	return Event{
		Type:    "detection-start",
		Message: "Starting detection pass",
		Fields:  map[string]interface{}{"identifiers": identifiers},
	}
}

// SummaryWritten builds the record announcing a summary artifact on disk.
func SummaryWritten(path string) Event {
	return Event{
		Type:    "summary-written",
		Message: "Summary file written",
		Fields:  map[string]interface{}{"path": path},
	}
}

// DetectionResult builds the record carrying the verdict of a completed pass.
func DetectionResult(result detect.Result) Event {
	return Event{
		Type: "detection-result",
		Fields: map[string]interface{}{
			"isDetected":                result.IsDetected,
			"windowCount":               result.WindowCount,
			"screenCaptureEvasionCount": result.ScreenCaptureEvasionCount,
			"elevatedLayerCount":        result.ElevatedLayerCount,
			"maxLayerDetected":          result.MaxLayerDetected,
		},
	}
}
