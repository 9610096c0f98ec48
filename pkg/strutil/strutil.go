// Package strutil provides string helpers shared across the toolkit:
// digit extraction, spreadsheet-style character ranges, and list
// formatting for command lines.
package strutil

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrNoDigits is returned when a string holds no decimal digits.
	ErrNoDigits = errors.New("strutil: no digits in string")

	// ErrLabelOutOfRange is returned when a character range label is not
	// part of the generated a..zz sequence.
	ErrLabelOutOfRange = errors.New("strutil: label out of range")
)

var (
	digitRunPattern  = regexp.MustCompile(`\d+`)
	signedNumPattern = regexp.MustCompile(`-?\d+\.?\d*`)
)

// HasDigits reports whether s contains at least one decimal digit.
func HasDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// LastInt returns the last run of consecutive digits in s as an int,
// so "model_12_v3" yields 3. Returns ErrNoDigits when s has none.
func LastInt(s string) (int, error) {
	runs := digitRunPattern.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, s)
	}

	last := runs[len(runs)-1]

	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("parse digit run %q: %w", last, err)
	}

	return n, nil
}

// LastNumberKey returns the last signed decimal token in s as an integer
// sort key. The token may carry a fractional part; its dot is stripped
// rather than rounded, so "run-1.25" yields 125 and "v-2.5" yields -25.
// Returns ErrNoDigits when s has no digits.
func LastNumberKey(s string) (int64, error) {
	matches := signedNumPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, s)
	}

	last := strings.ReplaceAll(matches[len(matches)-1], ".", "")

	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number token %q: %w", last, err)
	}

	return n, nil
}

// CommandList formats items as a bracketed, single-quoted list literal
// suitable for passing to solver command lines: ["a", "b"] becomes
// "['a', 'b']". An empty slice yields "['']".
func CommandList(items []string) string {
	return "['" + strings.Join(items, "', '") + "']"
}

// JoinSpace joins items with single spaces.
func JoinSpace(items []string) string {
	return strings.Join(items, " ")
}

// UniqueFlatten flattens lists into a single slice keeping only the first
// occurrence of each value, in encounter order.
func UniqueFlatten(lists [][]string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, list := range lists {
		for _, item := range list {
			if seen[item] {
				continue
			}

			seen[item] = true

			result = append(result, item)
		}
	}

	return result
}

// CharRange returns spreadsheet-style column labels from start to end
// inclusive, drawn from the sequence a..z, aa..az, ba..bz, ... zz.
// Labels are matched case-insensitively; capitalize upper-cases the output.
// Returns ErrLabelOutOfRange when either label is not in the sequence.
func CharRange(start, end string, capitalize bool) ([]string, error) {
	seq := labelSequence()

	from := slices.Index(seq, strings.ToLower(start))
	if from < 0 {
		return nil, fmt.Errorf("%w: %q", ErrLabelOutOfRange, start)
	}

	to := slices.Index(seq, strings.ToLower(end))
	if to < 0 {
		return nil, fmt.Errorf("%w: %q", ErrLabelOutOfRange, end)
	}

	if to < from {
		return nil, fmt.Errorf("%w: %q precedes %q", ErrLabelOutOfRange, end, start)
	}

	out := make([]string, 0, to-from+1)
	for _, label := range seq[from : to+1] {
		if capitalize {
			label = strings.ToUpper(label)
		}

		out = append(out, label)
	}

	return out, nil
}

// labelSequence generates the 702-entry label list: the single letters
// a..z followed by the two-letter pairs aa..az, ba..bz, ... zz.
func labelSequence() []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	seq := make([]string, 0, len(letters)+len(letters)*len(letters))

	for _, c := range letters {
		seq = append(seq, string(c))
	}

	for _, first := range letters {
		for _, second := range letters {
			seq = append(seq, string(first)+string(second))
		}
	}

	return seq
}
