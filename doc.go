// Package textview provides an immutable character-sequence view over a
// fixed text buffer, with UTF-16 code-unit semantics.
//
// A View wraps a sequence of code units. Every operation either reads the
// buffer or returns a new View; no operation mutates its receiver. This makes
// View values safe to share freely, including across goroutines.
//
// The package provides:
//
//   - Indexed access and sequence transformation (At, Map, FlatMap, Concat,
//     PadTo, Patch, Updated, Slice, Repeat)
//   - Line handling (Lines, LinesWithSeparators, StripLineEnd, StripMargin)
//   - Literal splitting with surrogate-pair awareness (SplitOn, SplitOnAny)
//   - Numeric and boolean parsing with typed errors (ToInt, ToBool, ...)
//   - printf-style formatting, including locale-aware formatting
//   - Grapheme-cluster iteration and monospace width measurement
//
// Basic usage:
//
//	v := textview.FromString("  |first\n  |second\n")
//	out := v.StripMargin()          // "first\nsecond\n"
//
//	it := out.Lines()
//	for it.Next() {
//	    fmt.Println(it.View().String())
//	}
//
// Code units:
//
// The element type is Unit, a UTF-16 code unit. Characters outside the basic
// multilingual plane occupy two units (a surrogate pair). Operations indexed
// by position count units, not characters; splitting never separates the two
// halves of a valid pair. Use Graphemes to iterate user-perceived characters.
package textview
