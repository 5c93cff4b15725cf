//go:build darwin

package cli

import "golang.org/x/sys/unix"

// macOSProductVersion reads the marketing version (e.g. "14.5") from sysctl.
func macOSProductVersion() (string, error) {
	return unix.Sysctl("kern.osproductversion")
}
