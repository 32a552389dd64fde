// Package output provides utilities for formatting and displaying iteration
// traces from the root-finding methods.
package output

import (
	"fmt"

	"github.com/tmoreland/rootlab/internal/rootfind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Run pairs one method invocation with the function it ran against.
type Run struct {
	Function string
	Method   string
	Result   rootfind.Result
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(runs []Run) {
	p := message.NewPrinter(language.English)
	for i, run := range runs {
		fmt.Printf("--- %s on %s ---\n", run.Method, run.Function)
		if run.Result.Outcome == rootfind.OutcomeInvalidInput {
			fmt.Printf("failed: invalid bracket (no sign change)\n")
		} else {
			bracketed := len(run.Result.Trace) > 0 && run.Result.Trace[0].Bracketed
			if bracketed {
				fmt.Printf("Iter |          a |          b |       root |          f(x) |        Error\n")
				fmt.Printf("____ | __________ | __________ | __________ | _____________ | ____________\n")
			} else {
				fmt.Printf("Iter |     x_curr |          f(x) |        Error\n")
				fmt.Printf("____ | __________ | _____________ | ____________\n")
			}
			for _, rec := range run.Result.Trace {
				if rec.Bracketed {
					_, _ = p.Printf("%4d | %10.6f | %10.6f | %10.6f | %13.6e | %12.6e\n",
						rec.Iter, rec.A, rec.B, rec.X, rec.FX, rec.Error)
				} else {
					_, _ = p.Printf("%4d | %10.6f | %13.6e | %12.6e\n",
						rec.Iter, rec.X, rec.FX, rec.Error)
				}
			}
			_, _ = p.Printf("%s after %d iterations, root estimate %.6f\n",
				run.Result.Outcome, len(run.Result.Trace), run.Result.Root)
		}
		if i < len(runs)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per iteration.
// Bracket columns are left empty for the unbracketed methods.
func CsvFormat(runs []Run) {
	fmt.Printf(`"function","method","outcome","iter","a","b","x","f(x)","error"`)
	fmt.Printf("\n")
	for _, run := range runs {
		// Runs without iterations (invalid bracket, or a denominator guard
		// tripping on the first step) still get a summary row.
		if len(run.Result.Trace) == 0 {
			fmt.Printf(`"%s","%s","%s",,,,,,`, run.Function, run.Method, run.Result.Outcome)
			fmt.Printf("\n")
			continue
		}
		for _, rec := range run.Result.Trace {
			fmt.Printf(`"%s","%s","%s",%d`, run.Function, run.Method, run.Result.Outcome, rec.Iter)
			if rec.Bracketed {
				fmt.Printf(`,"%.10f","%.10f"`, rec.A, rec.B)
			} else {
				fmt.Printf(`,,`)
			}
			fmt.Printf(`,"%.10f","%.6e","%.6e"`, rec.X, rec.FX, rec.Error)
			fmt.Printf("\n")
		}
	}
}
