// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tmoreland/rootlab/pkg/constants"
)

// Configuration holds all configuration for rootlab.
type Configuration struct {
	Solver  SolverConfig  `yaml:"solver,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Plot    PlotConfig    `yaml:"plot,omitempty"`
}

// SolverConfig holds the shared iteration settings for all methods.
type SolverConfig struct {
	Tolerance     float64  `yaml:"tolerance,omitempty"`     // convergence threshold on step size
	MaxIterations int      `yaml:"maxIterations,omitempty"` // hard iteration cap
	Methods       []string `yaml:"methods,omitempty"`       // which methods the demonstration runs
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// PlotConfig holds the false position visualization options.
type PlotConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	Directory string `yaml:"directory,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ApplyDefaults fills in zero-valued solver and plot settings so a partial
// (or absent) config file still runs the bundled demonstration.
func (c *Configuration) ApplyDefaults() {
	if c.Solver.Tolerance == 0 {
		c.Solver.Tolerance = constants.DefaultTolerance
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = constants.DefaultMaxIterations
	}
	if len(c.Solver.Methods) == 0 {
		c.Solver.Methods = []string{
			constants.MethodFalsePosition,
			constants.MethodNewton,
			constants.MethodSecant,
		}
	}
	if c.Plot.Directory == "" {
		c.Plot.Directory = constants.DefaultPlotDirectory
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for settings that are legal but probably not intended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Solver.Tolerance > 1e-2 {
		warnings = append(warnings, fmt.Sprintf(
			"solver tolerance %g is very loose; roots will only be coarse estimates", c.Solver.Tolerance))
	}
	if c.Solver.MaxIterations > 10000 {
		warnings = append(warnings, fmt.Sprintf(
			"solver maxIterations %d is unusually large for scalar methods", c.Solver.MaxIterations))
	}

	seen := make(map[string]bool)
	for _, method := range c.Solver.Methods {
		if seen[method] {
			warnings = append(warnings, fmt.Sprintf("method %s is listed more than once", method))
		}
		seen[method] = true
	}

	return warnings
}
