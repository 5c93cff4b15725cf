// Command cluely-detector reports whether the Cluely employee monitoring
// application is running and which screen-capture evasion techniques its
// windows use.
package main

import (
	"errors"
	"os"

	"github.com/terminalsin/no-cluely/internal/cli"
	"github.com/terminalsin/no-cluely/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		logger.Error("command failed", err)
		os.Exit(1)
	}
}
