// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/tmoreland/rootlab/internal/rootfind"
	"github.com/tmoreland/rootlab/pkg/output"
)

// FindRun finds a run by function label and method in the runs slice.
// Returns a pointer to the run if found, nil otherwise.
func FindRun(runs []output.Run, function, method string) *output.Run {
	for i := range runs {
		if runs[i].Function == function && runs[i].Method == method {
			return &runs[i]
		}
	}
	return nil
}

// FindRecord finds a record by 1-based iteration index in the trace.
// Returns a pointer to the record if found, nil otherwise.
func FindRecord(trace rootfind.Trace, iter int) *rootfind.Record {
	for i := range trace {
		if trace[i].Iter == iter {
			return &trace[i]
		}
	}
	return nil
}
