package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cansyan/cellgrid/internal/clipboard"
	"github.com/cansyan/cellgrid/internal/config"
	"github.com/cansyan/cellgrid/internal/logger"
	"github.com/cansyan/cellgrid/ui"
)

var (
	configPath  string
	debugMode   bool
	logFile     string
	cooperative bool
)

var rootCmd = &cobra.Command{
	Use:   "cellgrid",
	Short: "Grid layout demo for the terminal",
	Long: `cellgrid places labels and buttons on a text grid described by a
template and runs them in the terminal. Esc or Ctrl+Q quits, Ctrl+T
switches the theme and Ctrl+C/Ctrl+V copy and paste the status line.`,
	Args:          cobra.NoArgs,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML settings file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (default "+logger.DefaultLogPath+")")
	rootCmd.Flags().BoolVar(&cooperative, "cooperative", false, "wait for input through the cancellable loop")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cellgrid:", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return err
		}
	}
	logger.SetDebug(debugMode || cfg.Debug)
	defer logger.Close()

	km, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	tmpl, err := cfg.Template()
	if err != nil {
		return err
	}

	var (
		copyText  func(string) error
		pasteText func() (string, error)
	)
	if err := clipboard.Init(); err == nil {
		copyText, pasteText = clipboard.WriteText, clipboard.ReadText
	}
	d := newDemo(tmpl, copyText, pasteText, logger.ComponentLogger("demo"))

	screen, err := ui.NewScreen(
		ui.WithTheme(cfg.Palette()),
		ui.WithKeyMap(km),
		ui.WithMouse(cfg.MouseEnabled()),
		ui.WithLogger(logger.ComponentLogger("ui")),
	)
	if err != nil {
		return err
	}
	logger.Info("starting, cooperative=%v", cooperative)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, screen, d, cooperative)
}
