// Package quintic bundles the five demonstration quintic functions, their
// derivatives, and the brackets the demonstration searches over.
package quintic

import "github.com/tmoreland/rootlab/internal/rootfind"

// Case is one bundled test function with its search bracket.
type Case struct {
	Key   string
	Label string
	F     rootfind.Func
	Deriv rootfind.Func
	A     float64
	B     float64
}

// Cases returns the bundled demonstration set in presentation order.
func Cases() []Case {
	return []Case{
		{
			Key:   "A",
			Label: "x^5 + x - 1",
			F:     func(x float64) float64 { return x*x*x*x*x + x - 1 },
			Deriv: func(x float64) float64 { return 5*x*x*x*x + 1 },
			A:     0.0,
			B:     1.0,
		},
		{
			Key:   "B",
			Label: "x^5 + 5x^3 - 4x + 1",
			F:     func(x float64) float64 { return x*x*x*x*x + 5*x*x*x - 4*x + 1 },
			Deriv: func(x float64) float64 { return 5*x*x*x*x + 15*x*x - 4 },
			A:     -1.0,
			B:     1.0,
		},
		{
			Key:   "C",
			Label: "x^5 + 2x^4 - x - 3",
			F:     func(x float64) float64 { return x*x*x*x*x + 2*x*x*x*x - x - 3 },
			Deriv: func(x float64) float64 { return 5*x*x*x*x + 8*x*x*x - 1 },
			A:     1.0,
			B:     2.0,
		},
		{
			Key:   "D",
			Label: "x^5 - 10",
			F:     func(x float64) float64 { return x*x*x*x*x - 10 },
			Deriv: func(x float64) float64 { return 5 * x * x * x * x },
			A:     1.0,
			B:     2.0,
		},
		{
			Key:   "E",
			Label: "x^5 + 2x^2 + x - 0.5",
			F:     func(x float64) float64 { return x*x*x*x*x + 2*x*x + x - 0.5 },
			Deriv: func(x float64) float64 { return 5*x*x*x*x + 4*x + 1 },
			A:     0.0,
			B:     1.0,
		},
	}
}
