// Package constants provides shared constants for the rootlab application.
package constants

// Solver defaults and guards.
const (
	// DefaultTolerance is the default convergence threshold on step size.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the default hard cap on iterations per method.
	DefaultMaxIterations = 50

	// DerivativeEpsilon is the threshold below which Newton-Raphson treats
	// the derivative as numerically singular and stops.
	DerivativeEpsilon = 1e-12

	// SlopeEpsilon is the threshold below which the secant method treats
	// the slope denominator f(x_curr) - f(x_prev) as degenerate and stops.
	SlopeEpsilon = 1e-12
)

// Method name constants, used both in iteration records and config.
const (
	// MethodNewton is the Newton-Raphson method name
	MethodNewton = "newton"

	// MethodSecant is the secant method name
	MethodSecant = "secant"

	// MethodFalsePosition is the false position (regula falsi) method name
	MethodFalsePosition = "falseposition"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Plot constants
const (
	// PlotMargin is how far beyond each bracket endpoint the curve is sampled.
	PlotMargin = 1.0

	// PlotSamples is the number of points used to sample the function curve.
	PlotSamples = 200

	// DefaultPlotDirectory is where plot images are written.
	DefaultPlotDirectory = "plots"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
