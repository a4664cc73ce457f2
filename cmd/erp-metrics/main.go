package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rentworks/erp-metrics/internal/config"
	"github.com/rentworks/erp-metrics/internal/report"
	"github.com/rentworks/erp-metrics/internal/store"
	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/output"
	"github.com/rentworks/erp-metrics/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	tenantFlag := flag.String("tenant", "", "tenant ID override")
	nowFlag := flag.String("now", "", "reference time override in RFC3339 (defaults to the current time)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	tenantID := conf.Report.Tenant
	if *tenantFlag != "" {
		tenantID = *tenantFlag
	}
	if tenantID == "" {
		logger.Fatal("no tenant configured; set report.tenant or pass -tenant",
			zap.String("op", "main"),
		)
	}

	// The calculators never read the clock; the reference time is resolved
	// once here so a run can be replayed with -now.
	now := time.Now()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			logger.Fatal("failed to parse -now",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	targetMonth, err := conf.Report.TargetMonth(now)
	if err != nil {
		logger.Fatal("failed to resolve target month",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	dataStore, err := store.LoadJSONStore(conf.Dataset)
	if err != nil {
		logger.Fatal("failed to load dataset",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	builder := report.NewBuilder(dataStore, dataStore, dataStore, dataStore, logger)
	dashboard, err := builder.Build(tenantID, now, report.Options{
		PartnerFilter:  conf.Report.PartnerFilter,
		TopDebtors:     conf.Report.TopDebtors,
		TargetMonth:    targetMonth,
		ForecastMonths: conf.Report.Months,
	})
	if err != nil {
		logger.Fatal("failed to build dashboard",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(dashboard)
	case constants.OutputFormatCSV:
		output.CsvFormat(dashboard)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(dashboard); err != nil {
			logger.Fatal("failed to encode dashboard",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
