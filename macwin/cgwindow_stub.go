//go:build !darwin

package macwin

// List is unavailable off macOS; the detector upstream treats ErrUnsupported
// like any other enumeration failure.
func List(opts ListOptions) ([]Window, error) {
	return nil, ErrUnsupported
}
