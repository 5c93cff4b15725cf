package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	nocluely "github.com/terminalsin/no-cluely"
	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/internal/config"
)

const version = "0.1.0"

// ExitError carries a process exit code through the command tree so main can
// translate detection verdicts into shell-friendly statuses.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// detectorFactory builds the detector a command runs against. Tests swap in
// factories backed by fake enumerators.
type detectorFactory func(cfg config.RuntimeConfig) *detect.Detector

func liveDetector(cfg config.RuntimeConfig) *detect.Detector {
	return nocluely.NewDetector(nocluely.Options{
		Identifiers:      cfg.Identifiers,
		IncludeOffscreen: cfg.IncludeOffscreen,
	})
}

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	return newRootCmd(liveDetector).Execute()
}

func newRootCmd(factory detectorFactory) *cobra.Command {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath}
	rootOpts := &rootOptions{}
	rootFlags := &runtimeFlagSet{}

	rootCmd := &cobra.Command{
		Use:           "cluely-detector",
		Short:         "Detect Cluely employee monitoring software and its evasion techniques",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		// Bare invocation behaves like `check`.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, loader, factory, rootFlags)
		},
	}
	rootCmd.SetVersionTemplate("cluely-detector version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to cluely.config.yml (optional)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
	}
	bindRuntimeFlags(rootCmd, rootFlags)

	rootCmd.AddCommand(
		newCheckCmd(loader, factory),
		newReportCmd(loader, factory),
		newJSONCmd(loader, factory),
		newStatsCmd(loader, factory),
		newDoctorCmd(loader),
	)

	return rootCmd
}

type rootOptions struct {
	ConfigPath string
}
