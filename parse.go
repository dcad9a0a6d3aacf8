package textview

import (
	"strconv"
	"strings"
)

// ToInt parses the view as a base-10 int.
// Fails with a *ParseError carrying the offending text on malformed input.
func (v View) ToInt() (int, error) {
	s := v.String()
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Target: "int", Err: err}
	}
	return n, nil
}

// ToInt64 parses the view as a base-10 int64.
func (v View) ToInt64() (int64, error) {
	s := v.String()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Target: "int64", Err: err}
	}
	return n, nil
}

// ToFloat32 parses the view as a float32.
func (v View) ToFloat32() (float32, error) {
	s := v.String()
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, &ParseError{Input: s, Target: "float32", Err: err}
	}
	return float32(f), nil
}

// ToFloat64 parses the view as a float64.
func (v View) ToFloat64() (float64, error) {
	s := v.String()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Target: "float64", Err: err}
	}
	return f, nil
}

// ToBool parses the view as a boolean. Only the literals "true" and "false"
// are accepted, case-insensitively; anything else fails with a *ParseError.
func (v View) ToBool() (bool, error) {
	s := v.String()
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, &ParseError{Input: s, Target: "bool"}
	}
}
