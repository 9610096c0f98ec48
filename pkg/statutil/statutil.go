// Package statutil provides the sampling-plan helpers used to lay out
// parametric studies: coded-variable transforms, empirical distribution
// summaries, factor pairings, and low-discrepancy and random sampling
// sequences.
package statutil

import (
	"slices"
)

// Coded2Data maps a coded value in [-1, 1] onto the real scale spanned
// by the two limits. The limits may be given in either order.
func Coded2Data(c, limitA, limitB float64) float64 {
	lo, hi := min(limitA, limitB), max(limitA, limitB)

	return (c+1)*(hi-lo)*0.5 + lo
}

// Data2Coded maps a real-scale value onto the coded range [-1, 1]
// spanned by the two limits. The limits may be given in either order.
// Equal limits leave the map without an inverse and yield ±Inf or NaN.
func Data2Coded(x, limitA, limitB float64) float64 {
	lo, hi := min(limitA, limitB), max(limitA, limitB)

	return 2*(x-lo)/(hi-lo) - 1
}

// EmpiricalCDF returns the sorted copy of values together with the
// cumulative probability at each sorted point, i/n for i in 1..n.
// Empty input yields nil slices.
func EmpiricalCDF(values []float64) ([]float64, []float64) {
	if len(values) == 0 {
		return nil, nil
	}

	xs := slices.Clone(values)
	slices.Sort(xs)

	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = float64(i+1) / float64(len(xs))
	}

	return xs, ys
}

// PairCombinations returns every unordered pair of items, pairs ordered
// by the first then the second member's input position. Fewer than two
// items yield nil.
func PairCombinations(items []string) [][2]string {
	if len(items) < 2 {
		return nil
	}

	pairs := make([][2]string, 0, len(items)*(len(items)-1)/2)

	for i, first := range items[:len(items)-1] {
		for _, second := range items[i+1:] {
			pairs = append(pairs, [2]string{first, second})
		}
	}

	return pairs
}
