// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/tmoreland/rootlab/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateSolverSettings checks the shared iteration settings.
func ValidateSolverSettings(tolerance float64, maxIterations int) error {
	if tolerance <= 0 {
		return fmt.Errorf("expected a positive convergence tolerance, got %g", tolerance)
	}
	if maxIterations < 1 {
		return fmt.Errorf("expected at least one iteration, got %d", maxIterations)
	}
	return nil
}

// ValidateMethods checks that every configured method name is known.
func ValidateMethods(methods []string) error {
	for _, method := range methods {
		switch method {
		case constants.MethodNewton, constants.MethodSecant, constants.MethodFalsePosition:
		default:
			return fmt.Errorf("expected method of %s, %s, or %s, got %s",
				constants.MethodNewton, constants.MethodSecant, constants.MethodFalsePosition, method)
		}
	}
	return nil
}
