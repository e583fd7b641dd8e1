package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"quality-metrics/src/controller"
	"quality-metrics/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		modelPath string
		url       string
		project   string
		outputDir string
		format    string
		minClass  string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute metrics for a structural model",
		Long:  "Loads a structural model from a file or a front-end service, computes all enabled metrics and generates a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelPath != "" {
				h.cfg.Source.Path = modelPath
			}
			if url != "" {
				h.cfg.Source.URL = url
				if modelPath == "" {
					h.cfg.Source.Path = ""
				}
			}
			if project != "" {
				h.cfg.Source.Project = project
			}
			if minClass != "" {
				h.cfg.Output.MinClassification = minClass
				if err := h.cfg.Validate(); err != nil {
					return fmt.Errorf("--min-classification: %w", err)
				}
			}
			if h.cfg.Source.Path == "" && h.cfg.Source.Project == "" {
				return fmt.Errorf("either --model or --project is required")
			}

			util.Info("Analyzing model (timeout: %v)", timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx)
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					util.Warn("Falling back to json output: %v", err)
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			fmt.Fprintln(os.Stderr, renderSummary(report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Structural model file (json or yaml)")
	cmd.Flags().StringVar(&url, "url", "", "Front-end service URL to fetch the model from")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project name")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, sarif)")
	cmd.Flags().StringVar(&minClass, "min-classification", "", "Drop values below this band (normal, warning, error)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
