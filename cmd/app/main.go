package main

import (
	"context"
	"fmt"
	"os"

	"Nivesh/internal/di"
	"Nivesh/pkg/config"
	applogger "Nivesh/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "nivesh",
	Short:         "Stock prediction dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithEnv(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		l, err := applogger.New(&applogger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		})
		if err != nil {
			return fmt.Errorf("logger init failed: %w", err)
		}
		l.Info("starting", applogger.String("env", cfg.Environment))

		app, err := di.InitializeApp(cfg, l)
		if err != nil {
			return fmt.Errorf("app initialization failed: %w", err)
		}
		return app.Run(cmd.Context())
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithEnv(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		// The terminal belongs to the UI, so logs go to a file.
		l, err := applogger.New(&applogger.Config{
			Level:  cfg.Logging.Level,
			Format: "json",
			Output: cfg.TUI.LogFile,
		})
		if err != nil {
			return fmt.Errorf("logger init failed: %w", err)
		}

		dash, err := di.InitializeTerminal(cfg, l)
		if err != nil {
			return fmt.Errorf("tui initialization failed: %w", err)
		}
		return dash.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "config file path")
	rootCmd.AddCommand(serveCmd, tuiCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
