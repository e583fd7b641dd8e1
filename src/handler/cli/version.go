package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quality-metrics/src/model"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", h.cfg.Engine.Name, h.cfg.Engine.Version)
		},
	}
}

func (h *Handler) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List available metrics",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available metrics:")
			for _, def := range model.Definitions {
				line := fmt.Sprintf("  - %-5s %-7s: %s", def.Key, def.Scope, def.Name)
				if t, ok := h.cfg.Metrics.Thresholds[string(def.Key)]; ok {
					line += fmt.Sprintf(" (warning %v, error %v)", t.Low, t.High)
				}
				fmt.Println(line)
			}
		},
	}
}
