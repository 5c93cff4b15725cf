//go:build !darwin

package cli

import "github.com/pkg/errors"

func macOSProductVersion() (string, error) {
	return "", errors.New("not running on macOS")
}
