package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dconn.dev/showreel/internal/config"
	"dconn.dev/showreel/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "showreel",
	Short: "Video portfolio site",
	Long: `showreel renders a video portfolio: a filterable grid of projects with
an embedded player modal and a contact form.

Use "serve" for the website, "render" to write a static page, and "browse"
to explore the portfolio from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.File)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, renderCmd, browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
