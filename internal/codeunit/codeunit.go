// Package codeunit provides low-level helpers for working with UTF-16 code
// units: classification of surrogate halves and conversion between Go strings
// and code-unit slices.
//
// The surrogate ranges follow the Unicode standard:
//
//   - High (leading) surrogates: U+D800 .. U+DBFF
//   - Low (trailing) surrogates: U+DC00 .. U+DFFF
//
// A surrogate code unit is "bare" when it does not combine with its neighbor
// into a valid pair. Splitting and matching logic uses bare-ness to avoid
// cutting a valid pair in half.
package codeunit

import "unicode/utf16"

const (
	surrMin  = 0xD800
	surrHigh = 0xDC00
	surrMax  = 0xE000
)

// IsSurrogate reports whether u is in either surrogate range.
func IsSurrogate(u uint16) bool {
	return u >= surrMin && u < surrMax
}

// IsHighSurrogate reports whether u is a high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= surrMin && u < surrHigh
}

// IsLowSurrogate reports whether u is a low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= surrHigh && u < surrMax
}

// IsBare reports whether the surrogate at units[i] is unpaired. A high
// surrogate is paired only when immediately followed by a low surrogate; a
// low surrogate is paired only when immediately preceded by a high surrogate.
// Non-surrogate units are never bare.
func IsBare(units []uint16, i int) bool {
	u := units[i]
	switch {
	case IsHighSurrogate(u):
		return i+1 >= len(units) || !IsLowSurrogate(units[i+1])
	case IsLowSurrogate(u):
		return i == 0 || !IsHighSurrogate(units[i-1])
	default:
		return false
	}
}

// HasBare reports whether units contains any unpaired surrogate.
func HasBare(units []uint16) bool {
	for i := range units {
		if IsBare(units, i) {
			return true
		}
	}
	return false
}

// Encode converts a string to UTF-16 code units.
func Encode(s string) []uint16 {
	if len(s) == 0 {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// Decode converts UTF-16 code units to a string. Bare surrogates decode to
// U+FFFD per utf16.Decode.
func Decode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}
