package cli

import (
	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/internal/config"
)

// runtimeFlagSet tracks the shared detection flags before they are converted
// into config overrides.
type runtimeFlagSet struct {
	identifiers      string
	includeOffscreen bool
	format           string
	logLevel         string
	summaryFile      string
	noColor          bool
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.identifiers, "identifiers", "", "Comma-separated window owner names to match (overrides config)")
	cmd.Flags().BoolVar(&flags.includeOffscreen, "include-offscreen", false, "Also match minimized windows and windows on other Spaces")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: text or json")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&flags.summaryFile, "summary-file", "", "Optional summary JSON output path")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
}

func (f *runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}

	if cmd.Flags().Changed("identifiers") {
		ov.Identifiers = config.ParseIdentifiersList(f.identifiers)
	}

	if cmd.Flags().Changed("include-offscreen") {
		ov.IncludeOffscreen = &f.includeOffscreen
	}

	if cmd.Flags().Changed("format") {
		ov.Format = f.format
	}

	if cmd.Flags().Changed("log-level") {
		ov.LogLevel = f.logLevel
	}

	if cmd.Flags().Changed("summary-file") {
		ov.SummaryFile = f.summaryFile
	}

	if cmd.Flags().Changed("no-color") {
		ov.NoColor = &f.noColor
	}

	return ov
}
