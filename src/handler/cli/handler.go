package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quality-metrics/src/config"
	"quality-metrics/src/util"
)

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:           "quality-metrics",
		Short:         "Object-oriented metric computation engine",
		Long:          "Computes complexity, cohesion, coupling, size and inheritance metrics from a structural model of Kotlin and Java code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = util.DefaultLogger().Sync()
		},
	}

	// Global flags
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file (yaml or toml)")

	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.versionCmd())
	h.rootCmd.AddCommand(h.metricsCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	h.cfg = cfg

	if err := util.SetDefaultLogger(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	util.Debug("Configuration loaded successfully")
	util.Debug("Log level set to: %s", cfg.Logging.Level)

	return nil
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
