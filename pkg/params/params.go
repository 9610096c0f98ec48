// Package params reads the INI-style .cfg inputs that drive parametric
// simulation campaigns and coerces their values to Go types.
//
// A campaign file groups its variables in sections, but consumers address
// them by bare name, so Load flattens every section into one map with
// lowercased keys. Values keep the literal notation of the source file:
// numbers, quoted strings, and bracketed lists all parse to their
// natural Go representation.
package params

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Params holds every key of a campaign input file, merged across
// sections with lowercased names.
type Params map[string]any

// LoadOptions controls value coercion during Load.
type LoadOptions struct {
	// ZeroAsMissing maps the raw value "0" to nil, the convention older
	// campaign files use for "not set".
	ZeroAsMissing bool
}

// Load reads path and merges all its sections into one flat Params map.
// Later sections win on key collisions. Keys are lowercased; values go
// through ParseLiteral.
func Load(path string, opts LoadOptions) (Params, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read cfg %s: %w", path, err)
	}

	params := make(Params)

	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			raw := key.Value()

			if opts.ZeroAsMissing && strings.TrimSpace(raw) == "0" {
				params[strings.ToLower(key.Name())] = nil

				continue
			}

			params[strings.ToLower(key.Name())] = ParseLiteral(raw)
		}
	}

	return params, nil
}

// ParseLiteral converts a raw cfg value to its Go form, trying in order:
// boolean and nil words, integer, float, quoted string, bracketed list.
// Anything else stays a string, so a bare path and a quoted path read
// identically.
func ParseLiteral(raw string) any {
	trimmed := strings.TrimSpace(raw)

	switch trimmed {
	case "True":
		return true
	case "False":
		return false
	case "None":
		return nil
	}

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}

	if quoted(trimmed) {
		return trimmed[1 : len(trimmed)-1]
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return parseList(trimmed[1 : len(trimmed)-1])
	}

	return trimmed
}

// quoted reports whether s is wrapped in matching single or double quotes.
func quoted(s string) bool {
	if len(s) < 2 {
		return false
	}

	return (strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) ||
		(strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`))
}

// parseList splits a bracketed body on top-level commas and parses each
// element recursively. Nested brackets and quoted commas are respected.
func parseList(body string) []any {
	if strings.TrimSpace(body) == "" {
		return []any{}
	}

	elements := make([]any, 0)
	depth := 0
	start := 0

	var quote byte

	for i := range len(body) {
		c := body[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == ',' && depth == 0:
			elements = append(elements, ParseLiteral(body[start:i]))
			start = i + 1
		}
	}

	elements = append(elements, ParseLiteral(body[start:]))

	return elements
}
