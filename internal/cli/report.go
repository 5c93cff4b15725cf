package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/internal/config"
)

func newReportCmd(loader *config.Loader, factory detectorFactory) *cobra.Command {
	flags := &runtimeFlagSet{}
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the detection report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime(cmd, loader, flags)
			if err != nil {
				return err
			}

			windows, result := runPass(cfg, factory)

			if cfg.SummaryFile != "" {
				if err := writeSummary(cfg.SummaryFile, result); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if summaryOnly {
				fmt.Fprint(out, detect.Render(result))
				return nil
			}

			fmt.Fprint(out, detect.RenderDetailed(result, windows))
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Print the short summary instead of the full report")

	return cmd
}
