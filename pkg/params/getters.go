package params

import "github.com/rodrigo1392/misc-tools/pkg/safeconv"

// String returns the value at key when it is a string.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)

	return s, ok
}

// Int returns the value at key coerced to int.
func (p Params) Int(key string) (int, bool) {
	return safeconv.ToInt(p[key])
}

// Float returns the value at key coerced to float64.
func (p Params) Float(key string) (float64, bool) {
	return safeconv.ToFloat64(p[key])
}

// List returns the value at key when it is a bracketed list.
func (p Params) List(key string) ([]any, bool) {
	list, ok := p[key].([]any)

	return list, ok
}

// Strings returns the list at key when every element is a string.
func (p Params) Strings(key string) ([]string, bool) {
	list, ok := p[key].([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, len(list))

	for i, v := range list {
		s, sok := v.(string)
		if !sok {
			return nil, false
		}

		out[i] = s
	}

	return out, true
}

// Floats returns the list at key with every element coerced to float64.
// Integer elements coerce; anything non-numeric fails the lookup.
func (p Params) Floats(key string) ([]float64, bool) {
	list, ok := p[key].([]any)
	if !ok {
		return nil, false
	}

	out := make([]float64, len(list))

	for i, v := range list {
		f, fok := safeconv.ToFloat64(v)
		if !fok {
			return nil, false
		}

		out[i] = f
	}

	return out, true
}
