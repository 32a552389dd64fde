package output

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/tmoreland/rootlab/internal/rootfind"
	"github.com/tmoreland/rootlab/pkg/constants"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testRuns() []Run {
	return []Run{
		{
			Function: "x^5 + x - 1",
			Method:   constants.MethodFalsePosition,
			Result: rootfind.Result{
				Outcome: rootfind.OutcomeConverged,
				Root:    0.754878,
				Trace: rootfind.Trace{
					{Iter: 1, Method: constants.MethodFalsePosition, A: 0, B: 1, X: 0.5, FX: -0.46875, Error: 0.5, Bracketed: true},
					{Iter: 2, Method: constants.MethodFalsePosition, A: 0.5, B: 1, X: 0.754878, FX: -0.0001, Error: 0.254878, Bracketed: true},
				},
			},
		},
		{
			Function: "x^5 + x - 1",
			Method:   constants.MethodNewton,
			Result: rootfind.Result{
				Outcome: rootfind.OutcomeConverged,
				Root:    0.754878,
				Trace: rootfind.Trace{
					{Iter: 1, Method: constants.MethodNewton, X: 1.0, FX: 1.0, Error: 0.166667},
				},
			},
		},
		{
			Function: "x^2 + 1",
			Method:   constants.MethodFalsePosition,
			Result: rootfind.Result{
				Outcome: rootfind.OutcomeInvalidInput,
				Root:    math.NaN(),
			},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testRuns())
	})

	if !strings.Contains(out, "--- falseposition on x^5 + x - 1 ---") {
		t.Errorf("PrettyFormat missing run header, got:\n%s", out)
	}
	if !strings.Contains(out, "Iter |          a |          b |       root |") {
		t.Errorf("PrettyFormat missing bracketed table header")
	}
	if !strings.Contains(out, "Iter |     x_curr |") {
		t.Errorf("PrettyFormat missing unbracketed table header")
	}
	if !strings.Contains(out, "converged after 2 iterations, root estimate 0.754878") {
		t.Errorf("PrettyFormat missing outcome line, got:\n%s", out)
	}
	if !strings.Contains(out, "failed: invalid bracket (no sign change)") {
		t.Errorf("PrettyFormat missing invalid bracket note")
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat(testRuns())
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != `"function","method","outcome","iter","a","b","x","f(x)","error"` {
		t.Errorf("CsvFormat header = %q", lines[0])
	}
	// Two false position records, one Newton record, one invalid input row.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], `"falseposition","converged",1`) {
		t.Errorf("unexpected first data row: %q", lines[1])
	}
	// Newton rows leave the bracket columns empty.
	if !strings.Contains(lines[3], `"converged",1,,,`) {
		t.Errorf("expected empty bracket columns in Newton row: %q", lines[3])
	}
	if !strings.Contains(lines[4], `"invalid input"`) {
		t.Errorf("expected invalid input row: %q", lines[4])
	}
}

func TestCsvFormatEmptyTraceRun(t *testing.T) {
	// A singular stop on the first step leaves an empty trace; the run must
	// still appear in the CSV as an iteration-less summary row.
	runs := []Run{
		{
			Function: "x^2",
			Method:   constants.MethodNewton,
			Result: rootfind.Result{
				Outcome: rootfind.OutcomeSingular,
				Root:    0.0,
				Trace:   rootfind.Trace{},
			},
		},
	}

	out := captureStdout(t, func() {
		CsvFormat(runs)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one summary row, got %d lines:\n%s", len(lines), out)
	}
	if lines[1] != `"x^2","newton","singular",,,,,,` {
		t.Errorf("unexpected summary row: %q", lines[1])
	}
}
