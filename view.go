package textview

import (
	"unicode"

	"github.com/dshills/textview/internal/codeunit"
)

// Unit is a single UTF-16 code unit, the element type of a View.
type Unit uint16

// View is an immutable character-sequence view over a fixed buffer of code
// units. Operations return new View values; the original is never modified.
// The zero View is the empty view.
type View struct {
	units []Unit
}

// FromString creates a view from a string, encoding it to UTF-16 code units.
func FromString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	raw := codeunit.Encode(s)
	units := make([]Unit, len(raw))
	for i, u := range raw {
		units[i] = Unit(u)
	}
	return View{units: units}
}

// FromUnits creates a view from a slice of code units. The slice is copied;
// later mutation of it does not affect the view.
func FromUnits(units []Unit) View {
	if len(units) == 0 {
		return View{}
	}
	cp := make([]Unit, len(units))
	copy(cp, units)
	return View{units: cp}
}

// Of creates a view from individual code units.
func Of(units ...Unit) View {
	return FromUnits(units)
}

// Len returns the number of code units in the view.
func (v View) Len() int {
	return len(v.units)
}

// IsEmpty returns true if the view contains no code units.
func (v View) IsEmpty() bool {
	return len(v.units) == 0
}

// String returns the view's text. Bare surrogates decode to U+FFFD.
func (v View) String() string {
	return codeunit.Decode(v.raw())
}

// Units returns a copy of the view's code units.
func (v View) Units() []Unit {
	if len(v.units) == 0 {
		return nil
	}
	cp := make([]Unit, len(v.units))
	copy(cp, v.units)
	return cp
}

// Equal returns true if two views contain the same code units.
func (v View) Equal(other View) bool {
	if len(v.units) != len(other.units) {
		return false
	}
	for i, u := range v.units {
		if other.units[i] != u {
			return false
		}
	}
	return true
}

// At returns the code unit at position i.
// Fails with ErrIndexOutOfRange when i < 0 or i >= Len.
func (v View) At(i int) (Unit, error) {
	if i < 0 || i >= len(v.units) {
		return 0, indexError(i, len(v.units))
	}
	return v.units[i], nil
}

// Map applies f to every code unit, returning the transformed view.
func (v View) Map(f func(Unit) Unit) View {
	if len(v.units) == 0 {
		return View{}
	}
	out := make([]Unit, len(v.units))
	for i, u := range v.units {
		out[i] = f(u)
	}
	return View{units: out}
}

// FlatMap applies f to every code unit and concatenates the results. f may
// return zero or more units per input unit.
func (v View) FlatMap(f func(Unit) []Unit) View {
	if len(v.units) == 0 {
		return View{}
	}
	out := make([]Unit, 0, len(v.units))
	for _, u := range v.units {
		out = append(out, f(u)...)
	}
	if len(out) == 0 {
		return View{}
	}
	return View{units: out}
}

// Concat returns a view containing v followed by other.
func (v View) Concat(other View) View {
	if len(v.units) == 0 {
		return other
	}
	if len(other.units) == 0 {
		return v
	}
	out := make([]Unit, 0, len(v.units)+len(other.units))
	out = append(out, v.units...)
	out = append(out, other.units...)
	return View{units: out}
}

// PadTo returns v extended to length n by appending fill. If the view is
// already at least n units long, it is returned unchanged.
func (v View) PadTo(n int, fill Unit) View {
	if n <= len(v.units) {
		return v
	}
	out := make([]Unit, n)
	copy(out, v.units)
	for i := len(v.units); i < n; i++ {
		out[i] = fill
	}
	return View{units: out}
}

// Patch replaces replaced units starting at from with replacement. from is
// clamped to [0, Len]; a from at or past the end appends replacement; excess
// replaced beyond the remaining length is ignored.
func (v View) Patch(from int, replacement View, replaced int) View {
	if from < 0 {
		from = 0
	}
	if from > len(v.units) {
		from = len(v.units)
	}
	if replaced < 0 {
		replaced = 0
	}
	end := from + replaced
	if end > len(v.units) {
		end = len(v.units)
	}

	out := make([]Unit, 0, from+len(replacement.units)+len(v.units)-end)
	out = append(out, v.units[:from]...)
	out = append(out, replacement.units...)
	out = append(out, v.units[end:]...)
	if len(out) == 0 {
		return View{}
	}
	return View{units: out}
}

// Updated returns a view with the unit at index replaced by value.
// Fails with ErrIndexOutOfRange when index is outside [0, Len).
func (v View) Updated(index int, value Unit) (View, error) {
	if index < 0 || index >= len(v.units) {
		return View{}, indexError(index, len(v.units))
	}
	out := make([]Unit, len(v.units))
	copy(out, v.units)
	out[index] = value
	return View{units: out}, nil
}

// Slice returns the units in [from, until). from is clamped to >= 0 and
// until to <= Len; the result is empty whenever the clamped start is at or
// past the clamped end.
func (v View) Slice(from, until int) View {
	if from < 0 {
		from = 0
	}
	if until > len(v.units) {
		until = len(v.units)
	}
	if from >= until {
		return View{}
	}
	out := make([]Unit, until-from)
	copy(out, v.units[from:until])
	return View{units: out}
}

// Repeat returns v concatenated with itself n times. n <= 0 yields the
// empty view.
func (v View) Repeat(n int) View {
	if n <= 0 || len(v.units) == 0 {
		return View{}
	}
	out := make([]Unit, 0, n*len(v.units))
	for i := 0; i < n; i++ {
		out = append(out, v.units...)
	}
	return View{units: out}
}

// Capitalize uppercases the first code unit if it is lowercase; an empty
// view stays empty. Units whose uppercase form does not fit in a single
// code unit are left unchanged.
func (v View) Capitalize() View {
	if len(v.units) == 0 {
		return v
	}
	r := rune(v.units[0])
	if !unicode.IsLower(r) {
		return v
	}
	upper := unicode.ToUpper(r)
	if upper > 0xFFFF {
		return v
	}
	out, _ := v.Updated(0, Unit(upper))
	return out
}

// StripPrefix removes prefix if the view starts with it; otherwise the view
// is returned unchanged.
func (v View) StripPrefix(prefix View) View {
	if !v.hasPrefix(prefix) {
		return v
	}
	return v.Slice(len(prefix.units), len(v.units))
}

// StripSuffix removes suffix if the view ends with it; otherwise the view
// is returned unchanged.
func (v View) StripSuffix(suffix View) View {
	n := len(v.units) - len(suffix.units)
	if n < 0 {
		return v
	}
	for i, u := range suffix.units {
		if v.units[n+i] != u {
			return v
		}
	}
	if len(suffix.units) == 0 {
		return v
	}
	return v.Slice(0, n)
}

// ReplaceAll replaces every non-overlapping literal occurrence of old with
// replacement. An empty old returns the view unchanged.
func (v View) ReplaceAll(old, replacement View) View {
	if len(old.units) == 0 || len(v.units) < len(old.units) {
		return v
	}
	out := make([]Unit, 0, len(v.units))
	i := 0
	for i <= len(v.units)-len(old.units) {
		if v.matchAt(old, i) {
			out = append(out, replacement.units...)
			i += len(old.units)
			continue
		}
		out = append(out, v.units[i])
		i++
	}
	out = append(out, v.units[i:]...)
	if len(out) == 0 {
		return View{}
	}
	return View{units: out}
}

func (v View) hasPrefix(prefix View) bool {
	if len(prefix.units) > len(v.units) {
		return false
	}
	return v.matchAt(prefix, 0)
}

// matchAt reports whether needle occurs at unit offset i.
func (v View) matchAt(needle View, i int) bool {
	for j, u := range needle.units {
		if v.units[i+j] != u {
			return false
		}
	}
	return true
}

// raw returns the units widened to []uint16 for the utf16 codec.
func (v View) raw() []uint16 {
	if len(v.units) == 0 {
		return nil
	}
	raw := make([]uint16, len(v.units))
	for i, u := range v.units {
		raw[i] = uint16(u)
	}
	return raw
}

// subview returns a view sharing no storage with v over [from, until).
// Callers must pass a valid range.
func (v View) subview(from, until int) View {
	if from >= until {
		return View{}
	}
	out := make([]Unit, until-from)
	copy(out, v.units[from:until])
	return View{units: out}
}
