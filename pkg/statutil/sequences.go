package statutil

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
)

// ErrInvalidShape is returned when a sequence is requested with a
// non-positive dimension or point count.
var ErrInvalidShape = errors.New("statutil: non-positive sequence shape")

// Halton produces a Halton low-discrepancy sequence of points rows by
// dims columns, one prime base per dimension, with values in (0, 1).
// Point j uses index j+1, so the origin never appears.
func Halton(dims, points int) ([][]float64, error) {
	if dims < 1 || points < 1 {
		return nil, fmt.Errorf("%w: %d dims, %d points", ErrInvalidShape, dims, points)
	}

	out := make([][]float64, points)
	for j := range out {
		out[j] = make([]float64, dims)
	}

	primes := mathutil.Primes(dims)
	logPoints := math.Log(float64(points + 1))

	for dim, prime := range primes {
		// Digits needed to expand the largest index in this base.
		n := int(math.Ceil(logPoints / math.Log(float64(prime))))

		invPowers := make([]float64, n)
		inv := 1.0

		for t := range invPowers {
			inv /= float64(prime)
			invPowers[t] = inv
		}

		for j := range points {
			d := j + 1
			sum := float64(d%prime) * invPowers[0]

			for t := 1; t < n; t++ {
				d /= prime
				sum += float64(d%prime) * invPowers[t]
			}

			out[j][dim] = sum
		}
	}

	return out, nil
}

// MonteCarlo produces a random sequence of points rows by dims columns
// with values uniform in [-1, 1]. A nil src falls back to the global
// random source. Non-positive shapes yield nil.
func MonteCarlo(dims, points int, src rand.Source) [][]float64 {
	if dims < 1 || points < 1 {
		return nil
	}

	dist := distuv.Uniform{Min: -1, Max: 1, Src: src}

	out := make([][]float64, points)
	for j := range out {
		row := make([]float64, dims)
		for i := range row {
			row[i] = dist.Rand()
		}

		out[j] = row
	}

	return out
}
