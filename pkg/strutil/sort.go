package strutil

import (
	"slices"
	"strings"
)

// NaturalSort returns a copy of items sorted so that digit runs compare
// numerically rather than lexicographically: "file2" sorts before
// "file10". The sort is stable and the input is not modified.
func NaturalSort(items []string) []string {
	sorted := make([]string, len(items))
	copy(sorted, items)

	slices.SortStableFunc(sorted, NaturalCompare)

	return sorted
}

// NaturalCompare is a three-way comparison suitable for
// [slices.SortStableFunc]. Strings are split into alternating text and
// digit segments; text segments compare lexicographically and digit
// segments numerically, with leading zeros ignored.
func NaturalCompare(a, b string) int {
	for a != "" || b != "" {
		if a == "" {
			return -1
		}

		if b == "" {
			return 1
		}

		aSeg, aRest, aNum := nextSegment(a)
		bSeg, bRest, bNum := nextSegment(b)

		var c int
		if aNum && bNum {
			c = compareDigitRuns(aSeg, bSeg)
		} else {
			c = strings.Compare(aSeg, bSeg)
		}

		if c != 0 {
			return c
		}

		a, b = aRest, bRest
	}

	return 0
}

// SortByLastNumber sorts items by the last number each one carries,
// breaking ties lexicographically. Fractional tokens use the stripped-dot
// key of [LastNumberKey]. When any item has no digits, the input is
// returned unchanged together with ErrNoDigits so callers can warn and
// carry on with the unsorted list.
func SortByLastNumber(items []string) ([]string, error) {
	keys := make(map[string]int64, len(items))

	for _, item := range items {
		key, err := LastNumberKey(item)
		if err != nil {
			return items, err
		}

		keys[item] = key
	}

	sorted := make([]string, len(items))
	copy(sorted, items)

	slices.SortStableFunc(sorted, func(a, b string) int {
		if keys[a] != keys[b] {
			if keys[a] < keys[b] {
				return -1
			}

			return 1
		}

		return strings.Compare(a, b)
	})

	return sorted, nil
}

// nextSegment splits off the leading run of digits or non-digits from s.
func nextSegment(s string) (seg, rest string, numeric bool) {
	numeric = isDigitByte(s[0])

	i := 1
	for i < len(s) && isDigitByte(s[i]) == numeric {
		i++
	}

	return s[:i], s[i:], numeric
}

// compareDigitRuns compares two digit runs numerically without parsing,
// so arbitrarily long runs cannot overflow. Leading zeros are ignored;
// "007" and "7" compare equal.
func compareDigitRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}
