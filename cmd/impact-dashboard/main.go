package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/impact-dashboard/internal/config"
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/iwvelando/impact-dashboard/pkg/validation"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	configLocation string
	logLevel       string

	conf   *config.Configuration
	logger *zap.Logger
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if err := validation.ValidateLogLevel(level); err != nil {
		return nil, err
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, eris.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, eris.Wrapf(err, "failed to create log directory %s", dir)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to open log file %s", loggingConfig.OutputFile)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// setup loads the configuration and logger ahead of any subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(a.configLocation)
	if err != nil {
		return eris.Wrapf(err, "failed to load configuration at %s", a.configLocation)
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return eris.Wrap(err, "failed to initialize logger")
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.setup"),
		)
	}

	a.conf = conf
	a.logger = logger
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "impact-dashboard",
		Short:             "Economic impact dashboard",
		Long:              "Summarizes direct, indirect and induced economic impact and serves an interactive dashboard for editing the values.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newSummaryCmd(a), newServeCmd(a), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		// The version needs neither configuration nor logging.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		PersistentPostRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
