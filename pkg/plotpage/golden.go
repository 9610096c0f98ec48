package plotpage

import (
	"math"

	"github.com/rodrigo1392/misc-tools/pkg/mathutil"
)

// inchesPerPoint converts TeX points to inches.
const inchesPerPoint = 1.0 / 72.27

// goldenRatio is the height to width proportion used for figure
// sizing.
var goldenRatio = (math.Sqrt(5) - 1) / 2

// GoldenSize returns figure dimensions in inches for a width given in
// points, with the height set by the golden ratio. The width is scaled
// by fraction first, so a column plot can take a share of the text
// width.
func GoldenSize(widthPts, fraction float64) (width, height float64) {
	width = widthPts * fraction * inchesPerPoint
	height = width * goldenRatio

	return width, height
}

// AutoTicks returns count evenly spaced tick positions between minVal
// and maxVal. The endpoints are rounded to decimals before spacing and
// every position is rounded again after, matching how the positions
// will be printed.
func AutoTicks(minVal, maxVal float64, count, decimals int) []float64 {
	ticks := mathutil.Linspace(roundTo(minVal, decimals), roundTo(maxVal, decimals), count)
	for i, tick := range ticks {
		ticks[i] = roundTo(tick, decimals)
	}

	return ticks
}

func roundTo(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(x*scale) / scale
}
