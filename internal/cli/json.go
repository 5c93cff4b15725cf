package cli

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/detect"
	"github.com/terminalsin/no-cluely/internal/config"
	"github.com/terminalsin/no-cluely/internal/events"
)

type windowPayload struct {
	Owner         string `json:"owner"`
	WindowID      int32  `json:"window_id"`
	Layer         int32  `json:"layer"`
	SharingState  int32  `json:"sharing_state"`
	EvadesCapture bool   `json:"evades_capture"`
	Elevated      bool   `json:"elevated"`
}

type detectionPayload struct {
	GeneratedAt string          `json:"generated_at"`
	Result      detect.Result   `json:"result"`
	Windows     []windowPayload `json:"windows"`
}

func newJSONCmd(loader *config.Loader, factory detectorFactory) *cobra.Command {
	flags := &runtimeFlagSet{}
	var ndjson bool

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Output detection results as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime(cmd, loader, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if ndjson {
				emitter := events.NewEmitter(out)
				if err := emitter.Emit(events.DetectionStart(len(cfg.Identifiers))); err != nil {
					return err
				}
				_, result := runPass(cfg, factory)
				if err := emitter.Emit(events.DetectionResult(result)); err != nil {
					return err
				}
				if cfg.SummaryFile != "" {
					if err := writeSummary(cfg.SummaryFile, result); err != nil {
						return err
					}
					return emitter.Emit(events.SummaryWritten(cfg.SummaryFile))
				}
				return nil
			}

			windows, result := runPass(cfg, factory)
			if cfg.SummaryFile != "" {
				if err := writeSummary(cfg.SummaryFile, result); err != nil {
					return err
				}
			}
			payload := detectionPayload{
				GeneratedAt: time.Now().UTC().Format(time.RFC3339),
				Result:      result,
				Windows:     make([]windowPayload, 0, len(windows)),
			}
			for _, w := range windows {
				payload.Windows = append(payload.Windows, windowPayload{
					Owner:         w.Owner,
					WindowID:      w.ID,
					Layer:         w.Layer,
					SharingState:  w.SharingState,
					EvadesCapture: w.EvadesCapture,
					Elevated:      w.Elevated,
				})
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(payload)
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "Stream NDJSON events instead of a single document")

	return cmd
}
