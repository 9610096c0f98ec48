// Package mathutil provides the numeric helpers used around simulation
// campaigns: engineering unit conversions, base-multiple rounding, prime
// generation, and gonum-backed integration, interpolation, and linear
// solving.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// StandardGravity is the standard acceleration of gravity in m/s².
const StandardGravity = 9.80665

// Conversions maps conversion names to their direct factors. The name
// reads source-target: converting N to kgf divides force by gravity at
// the inverse setting, kgf to N multiplies.
var Conversions = map[string]float64{
	"N-kgf":        StandardGravity,
	"MPa-kgf/cm2":  100 / StandardGravity,
	"kg/m3-kg/cm3": 1e-6,
}

// ErrUnknownConversion is returned for names missing from Conversions.
var ErrUnknownConversion = errors.New("mathutil: unknown conversion")

// Convert translates quantity through the named conversion factor.
// Direct conversion multiplies by the factor, inverse divides.
func Convert(quantity float64, name string, inverse bool) (float64, error) {
	factor, ok := Conversions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConversion, name)
	}

	if inverse {
		return quantity / factor, nil
	}

	return quantity * factor, nil
}

// RoundUpTo rounds x up to the next multiple of base.
func RoundUpTo(x float64, base int) int {
	return int(math.Ceil(x/float64(base))) * base
}

// RoundDownTo rounds x down to the previous multiple of base.
func RoundDownTo(x float64, base int) int {
	return int(math.Floor(x/float64(base))) * base
}

// Ishigami evaluates the Ishigami function of Ishigami & Homma (1990),
// a standard benchmark for sensitivity analysis: strongly non-linear,
// non-monotonic, with the x3 dependence described by Sobol & Levitan.
func Ishigami(x1, x2, x3 float64) float64 {
	return math.Sin(x1) + 7*math.Pow(math.Sin(x2), 2) + 0.1*math.Pow(x3, 4)*math.Sin(x1)
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// Returns nil for n < 1; n == 1 yields just start.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}

	if n == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(n-1)
	out := make([]float64, n)

	for i := range out {
		out[i] = start + step*float64(i)
	}

	// Pin the endpoint against accumulated float drift.
	out[n-1] = stop

	return out
}
