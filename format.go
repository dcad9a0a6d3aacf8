package textview

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format treats the view as a printf-style verb string and formats args
// with it. View and []Unit arguments are unwrapped to their text before
// formatting; verb mismatches surface in the output the way the fmt package
// reports them.
func (v View) Format(args ...any) View {
	return FromString(fmt.Sprintf(v.String(), unwrapArgs(args)...))
}

// FormatLocale is Format with locale-aware number and plural handling for
// the given language tag.
func (v View) FormatLocale(tag language.Tag, args ...any) View {
	p := message.NewPrinter(tag)
	return FromString(p.Sprintf(v.String(), unwrapArgs(args)...))
}

// unwrapArgs converts view-typed arguments to plain strings so %s and %q
// verbs see text rather than a struct.
func unwrapArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch t := a.(type) {
		case View:
			out[i] = t.String()
		case *View:
			if t == nil {
				out[i] = a
				continue
			}
			out[i] = t.String()
		case []Unit:
			out[i] = FromUnits(t).String()
		case Unit:
			out[i] = uint16(t)
		default:
			out[i] = a
		}
	}
	return out
}
