package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/internal/config"
)

func newStatsCmd(loader *config.Loader, factory detectorFactory) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate detection statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime(cmd, loader, flags)
			if err != nil {
				return err
			}

			_, result := runPass(cfg, factory)

			if cfg.SummaryFile != "" {
				if err := writeSummary(cfg.SummaryFile, result); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			if cfg.Format == "json" {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Metric\tValue\n")
			fmt.Fprintf(w, "Detected\t%v\n", result.IsDetected)
			fmt.Fprintf(w, "Cluely windows\t%d\n", result.WindowCount)
			fmt.Fprintf(w, "Screen capture evasion\t%d\n", result.ScreenCaptureEvasionCount)
			fmt.Fprintf(w, "Elevated layers\t%d\n", result.ElevatedLayerCount)
			fmt.Fprintf(w, "Highest layer\t%d\n", result.MaxLayerDetected)
			return w.Flush()
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}
