package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-classroom/console"
	"github.com/vcrobe/nojs-classroom/internal/config"
	"github.com/vcrobe/nojs-classroom/internal/logging"
)

// Set by the command before any subcommand runs.
var (
	cfg       config.Config
	logger    = logging.NewNop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "nojs",
	Short: "nojs renders classroom UI components outside the browser",
	Long: `nojs hosts small UI components (props, local state, event handlers) and
shows their output in the terminal, as markdown, as HTML, or over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "nojs.yaml", "Config file (missing file means defaults)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to a rotated file instead of stderr")
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Lookup("surface") != nil && flags.Changed("surface") {
		cfg.Surface, _ = flags.GetString("surface")
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		fw := logging.NewFileWriter(cfg.LogFile)
		w, logCloser = fw, fw
	}
	logger = logging.New(level, w)
	slog.SetDefault(logger)
	console.SetLogger(logger)
	return nil
}
