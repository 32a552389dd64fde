package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmoreland/rootlab/pkg/constants"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTempConfig(t, `
solver:
  tolerance: 1.0e-8
  maxIterations: 100
  methods:
    - newton
logging:
  level: debug
  format: console
output:
  format: csv
plot:
  enabled: true
  directory: out
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Solver.Tolerance != 1e-8 {
		t.Errorf("expected tolerance 1e-8, got %v", conf.Solver.Tolerance)
	}
	if conf.Solver.MaxIterations != 100 {
		t.Errorf("expected maxIterations 100, got %d", conf.Solver.MaxIterations)
	}
	if len(conf.Solver.Methods) != 1 || conf.Solver.Methods[0] != constants.MethodNewton {
		t.Errorf("expected methods [newton], got %v", conf.Solver.Methods)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", conf.Logging.Level)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("expected output format csv, got %s", conf.Output.Format)
	}
	if !conf.Plot.Enabled || conf.Plot.Directory != "out" {
		t.Errorf("expected plot enabled into out, got %+v", conf.Plot)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadConfigurationMalformedFile(t *testing.T) {
	path := writeTempConfig(t, "solver: [not: a: mapping")
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	var conf Configuration
	conf.ApplyDefaults()

	if conf.Solver.Tolerance != constants.DefaultTolerance {
		t.Errorf("expected default tolerance %v, got %v", constants.DefaultTolerance, conf.Solver.Tolerance)
	}
	if conf.Solver.MaxIterations != constants.DefaultMaxIterations {
		t.Errorf("expected default maxIterations %d, got %d", constants.DefaultMaxIterations, conf.Solver.MaxIterations)
	}
	if len(conf.Solver.Methods) != 3 {
		t.Errorf("expected all three methods by default, got %v", conf.Solver.Methods)
	}
	if conf.Plot.Directory != constants.DefaultPlotDirectory {
		t.Errorf("expected default plot directory %s, got %s", constants.DefaultPlotDirectory, conf.Plot.Directory)
	}
}

func TestApplyDefaultsPreservesExplicitSettings(t *testing.T) {
	conf := Configuration{
		Solver: SolverConfig{
			Tolerance:     1e-9,
			MaxIterations: 20,
			Methods:       []string{constants.MethodSecant},
		},
		Plot: PlotConfig{Directory: "figures"},
	}
	conf.ApplyDefaults()

	if conf.Solver.Tolerance != 1e-9 {
		t.Errorf("explicit tolerance overwritten: %v", conf.Solver.Tolerance)
	}
	if conf.Solver.MaxIterations != 20 {
		t.Errorf("explicit maxIterations overwritten: %d", conf.Solver.MaxIterations)
	}
	if len(conf.Solver.Methods) != 1 {
		t.Errorf("explicit methods overwritten: %v", conf.Solver.Methods)
	}
	if conf.Plot.Directory != "figures" {
		t.Errorf("explicit plot directory overwritten: %s", conf.Plot.Directory)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		conf            Configuration
		expectedWarning string
	}{
		{
			name: "Loose tolerance",
			conf: Configuration{
				Solver: SolverConfig{Tolerance: 0.1, MaxIterations: 50},
			},
			expectedWarning: "very loose",
		},
		{
			name: "Excessive iteration cap",
			conf: Configuration{
				Solver: SolverConfig{Tolerance: 1e-6, MaxIterations: 50000},
			},
			expectedWarning: "unusually large",
		},
		{
			name: "Duplicate method",
			conf: Configuration{
				Solver: SolverConfig{
					Tolerance:     1e-6,
					MaxIterations: 50,
					Methods:       []string{constants.MethodNewton, constants.MethodNewton},
				},
			},
			expectedWarning: "more than once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expectedWarning) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.expectedWarning, warnings)
			}
		})
	}
}

func TestValidateConfigurationCleanConfig(t *testing.T) {
	conf := Configuration{
		Solver: SolverConfig{
			Tolerance:     constants.DefaultTolerance,
			MaxIterations: constants.DefaultMaxIterations,
			Methods:       []string{constants.MethodFalsePosition},
		},
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
