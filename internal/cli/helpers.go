package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/internal/config"
	"github.com/terminalsin/no-cluely/internal/logger"
)

func loadRuntime(cmd *cobra.Command, loader *config.Loader, flags *runtimeFlagSet) (config.RuntimeConfig, error) {
	cfg, err := loader.Load(flags.toOverrides(cmd))
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}

// runPass performs one detection pass, applying the degrade-to-zero policy
// when the window server query is unavailable.
func runPass(cfg config.RuntimeConfig, factory detectorFactory) ([]detect.ClassifiedWindow, detect.Result) {
	windows, result, err := factory(cfg).RunWindows()
	if err != nil {
		logger.Debugf("window enumeration unavailable, treating as zero windows: %v", err)
		return nil, detect.Result{}
	}

	logger.Debugf("detection pass matched %d window(s)", len(windows))
	return windows, result
}

func writeSummary(path string, result detect.Result) error {
	summary := map[string]interface{}{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"result":      result,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o600)
}
