package mathutil

import (
	"encoding/binary"
	"math"
	"slices"
)

// CheckConsecutive reports whether numbers form an unbroken run of
// consecutive integers, along with the 1-based sorted positions at
// which gaps open. The input slice is not modified.
func CheckConsecutive(numbers []int) (bool, []int) {
	if len(numbers) < 2 {
		return true, nil
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	unitSteps := 0

	var gaps []int

	for i := 1; i < len(sorted); i++ {
		diff := sorted[i] - sorted[i-1]
		if diff == 1 {
			unitSteps++
		}

		if diff > 1 {
			gaps = append(gaps, i+1)
		}
	}

	return unitSteps >= len(sorted)-1, gaps
}

// UniqueRows filters duplicate rows from a matrix, keeping the first
// occurrence of each and preserving input order.
func UniqueRows(rows [][]float64) [][]float64 {
	seen := make(map[string]struct{}, len(rows))
	unique := make([][]float64, 0, len(rows))

	for _, row := range rows {
		key := rowKey(row)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, row)
	}

	return unique
}

// rowKey packs a row into a byte string usable as a map key. Bit-level
// equality makes NaN entries compare equal to themselves.
func rowKey(row []float64) string {
	buf := make([]byte, 0, len(row)*8)
	for _, v := range row {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return string(buf)
}
