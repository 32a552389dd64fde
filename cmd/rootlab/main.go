package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmoreland/rootlab/internal/config"
	"github.com/tmoreland/rootlab/internal/plot"
	"github.com/tmoreland/rootlab/internal/rootfind"
	"github.com/tmoreland/rootlab/pkg/constants"
	"github.com/tmoreland/rootlab/pkg/output"
	"github.com/tmoreland/rootlab/pkg/quintic"
	"github.com/tmoreland/rootlab/pkg/validation"
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
		level = "info" // Default to info level
	}

	// Parse log level
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

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console" // Default to console for an interactive demo
	}

	// Configure encoder
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
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
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

// runDemonstration executes the configured methods over the bundled quintic
// cases, rendering a plot for each successful false position run when enabled.
func runDemonstration(logger *zap.Logger, conf *config.Configuration) []output.Run {
	cases := quintic.Cases()
	runs := make([]output.Run, 0, len(cases)*len(conf.Solver.Methods))
	for _, c := range cases {
		logger.Info(fmt.Sprintf("processing function %s: %s", c.Key, c.Label),
			zap.String("op", "main.runDemonstration"),
		)
		for _, method := range conf.Solver.Methods {
			var result rootfind.Result
			switch method {
			case constants.MethodNewton:
				// Seed Newton from the upper bracket endpoint.
				result = rootfind.NewtonRaphson(logger, c.F, c.Deriv, c.B, conf.Solver.Tolerance, conf.Solver.MaxIterations)
			case constants.MethodSecant:
				result = rootfind.Secant(logger, c.F, c.A, c.B, conf.Solver.Tolerance, conf.Solver.MaxIterations)
			case constants.MethodFalsePosition:
				result = rootfind.FalsePosition(logger, c.F, c.A, c.B, conf.Solver.Tolerance, conf.Solver.MaxIterations)
			}
			runs = append(runs, output.Run{Function: c.Label, Method: method, Result: result})

			if method != constants.MethodFalsePosition || !conf.Plot.Enabled {
				continue
			}
			if result.Outcome == rootfind.OutcomeInvalidInput {
				logger.Warn(fmt.Sprintf("skipping plot for function %s: invalid bracket", c.Key),
					zap.String("op", "main.runDemonstration"),
				)
				continue
			}
			path := filepath.Join(conf.Plot.Directory,
				fmt.Sprintf("false-position-%s.png", strings.ToLower(c.Key)))
			if err := plot.FalsePosition(c.F, c.A, c.B, result.Root, c.Label, path); err != nil {
				logger.Error("failed to render plot",
					zap.String("op", "main.runDemonstration"),
					zap.String("path", path),
					zap.Error(err),
				)
				continue
			}
			logger.Info("wrote plot",
				zap.String("op", "main.runDemonstration"),
				zap.String("path", path),
			)
		}
	}
	return runs
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file if present; the bundled demonstration runs on
	// defaults without one.
	conf := &config.Configuration{}
	if _, err := os.Stat(*configLocation); err == nil {
		conf, err = config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
	}
	conf.ApplyDefaults()

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
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
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	err = validation.ValidateSolverSettings(conf.Solver.Tolerance, conf.Solver.MaxIterations)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	err = validation.ValidateMethods(conf.Solver.Methods)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the bundled five-function demonstration.
	runs := runDemonstration(logger, conf)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(runs)
	case constants.OutputFormatCSV:
		output.CsvFormat(runs)
	}
}
