package mathutil

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("mathutil: slice length mismatch")

	// ErrTooFewPoints is returned when a series is too short to process.
	ErrTooFewPoints = errors.New("mathutil: too few points")

	// ErrNotAscending is returned when an abscissa series is unsorted.
	ErrNotAscending = errors.New("mathutil: series not in ascending order")

	// ErrEmptySystem is returned when a linear system has no equations.
	ErrEmptySystem = errors.New("mathutil: empty linear system")
)

// Trapezoid integrates y over x with the composite trapezoidal rule.
// The abscissae must be sorted in ascending order.
func Trapezoid(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: %d x values against %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewPoints, len(xs))
	}

	if !slices.IsSorted(xs) {
		return 0, ErrNotAscending
	}

	return integrate.Trapezoidal(xs, ys), nil
}

// AkimaResample fits an Akima spline through the (xs, ys) pairs and
// evaluates it on n evenly spaced abscissae spanning the same range.
// The fitted curve avoids the overshoot cubic splines show near
// outliers, which suits jagged response histories.
func AkimaResample(xs, ys []float64, n int) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: %d x values against %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	if len(xs) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 knots, got %d", ErrTooFewPoints, len(xs))
	}

	if n < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrTooFewPoints, n)
	}

	// The spline requires strictly increasing abscissae.
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, nil, ErrNotAscending
		}
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(xs, ys); err != nil {
		return nil, nil, fmt.Errorf("fit akima spline: %w", err)
	}

	resampledX := Linspace(xs[0], xs[len(xs)-1], n)
	resampledY := make([]float64, n)

	for i, x := range resampledX {
		resampledY[i] = spline.Predict(x)
	}

	return resampledX, resampledY, nil
}

// SolveLinear solves the square linear system a·x = b and returns x.
func SolveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrEmptySystem
	}

	if len(b) != n {
		return nil, fmt.Errorf("%w: %d equations against %d constants", ErrLengthMismatch, n, len(b))
	}

	flat := make([]float64, 0, n*n)

	for _, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row of %d coefficients in a %d-equation system", ErrLengthMismatch, len(row), n)
		}

		flat = append(flat, row...)
	}

	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("solve linear system: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}

// WhiteNoise draws n independent samples from a Normal(mu, sigma)
// distribution. A nil src falls back to the global random source.
func WhiteNoise(mu, sigma float64, n int, src rand.Source) []float64 {
	if n < 1 {
		return nil
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	out := make([]float64, n)

	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}
