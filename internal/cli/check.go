package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/internal/config"
)

func newCheckCmd(loader *config.Loader, factory detectorFactory) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Quick check whether Cluely is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, loader, factory, flags)
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

// runCheck exits 1 when Cluely is detected so shell scripts can branch on the
// status code.
func runCheck(cmd *cobra.Command, loader *config.Loader, factory detectorFactory, flags *runtimeFlagSet) error {
	cfg, err := loadRuntime(cmd, loader, flags)
	if err != nil {
		return err
	}

	_, result := runPass(cfg, factory)

	out := cmd.OutOrStdout()
	color.New(color.FgBlue, color.Bold).Fprintln(out, "Cluely Detection")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	if cfg.SummaryFile != "" {
		if err := writeSummary(cfg.SummaryFile, result); err != nil {
			return err
		}
	}

	if result.IsDetected {
		color.New(color.FgRed, color.Bold).Fprintln(out, "CLUELY DETECTED")
		color.New(color.FgRed).Fprintln(out, "Employee monitoring software is running on this system.")
		fmt.Fprintln(out)
		color.New(color.FgYellow).Fprintln(out, "Use 'cluely-detector report' for detailed analysis.")
		return &ExitError{Code: 1}
	}

	color.New(color.FgGreen, color.Bold).Fprintln(out, "NO CLUELY DETECTED")
	color.New(color.FgGreen).Fprintln(out, "No employee monitoring software found.")

	return nil
}
