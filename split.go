package textview

import (
	"regexp"
	"strings"

	"github.com/dshills/textview/internal/codeunit"
)

// Splitter is the pattern-matching collaborator used to break a view into
// fragments. The default implementation delegates to the regexp package;
// callers may inject their own.
//
// Split follows platform split-with-limit-zero semantics: when no match
// occurs the input is returned as a single fragment, and otherwise all
// trailing empty fragments are dropped.
type Splitter interface {
	Split(v View) ([]View, error)
}

// NewLiteralSplitter returns a Splitter matching any single code unit in
// set. Non-surrogate sets are escaped and compiled as a regular expression
// character class; a compile failure is reported as a *PatternError. Sets
// containing surrogate code units are matched by a direct code-unit scan,
// since an unpaired surrogate has no regular-expression representation; such
// separators match only bare surrogates, never half of a valid pair.
func NewLiteralSplitter(set ...Unit) (Splitter, error) {
	cp := make([]Unit, len(set))
	copy(cp, set)

	for _, u := range cp {
		if codeunit.IsSurrogate(uint16(u)) {
			return &unitSplitter{set: cp}, nil
		}
	}

	pattern := classPattern(cp)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &regexpSplitter{set: cp, re: re}, nil
}

// SplitOn splits the view on literal occurrences of sep. The separator is
// escaped before being handed to the regexp collaborator. A separator that
// is a surrogate code unit only matches bare surrogates.
//
//	FromString("a.b").SplitOn('.')  // ["a", "b"]
//	FromString("a.").SplitOn('.')   // ["a"]
//	FromString(".").SplitOn('.')    // []
//	FromString("").SplitOn('.')     // [""]
func (v View) SplitOn(sep Unit) ([]View, error) {
	s, err := NewLiteralSplitter(sep)
	if err != nil {
		return nil, err
	}
	return s.Split(v)
}

// SplitOnAny splits the view on any code unit in seps, built as a character
// class. An empty seps produces an empty class, which the collaborator
// rejects with a *PatternError.
func (v View) SplitOnAny(seps ...Unit) ([]View, error) {
	s, err := NewLiteralSplitter(seps...)
	if err != nil {
		return nil, err
	}
	return s.Split(v)
}

// regexpSplitter delegates to a compiled regular expression. Views holding
// bare surrogates cannot round-trip through the regexp engine's UTF-8 input,
// so those fall back to the code-unit scan.
type regexpSplitter struct {
	set []Unit
	re  *regexp.Regexp
}

func (s *regexpSplitter) Split(v View) ([]View, error) {
	if codeunit.HasBare(v.raw()) {
		return splitUnits(v, s.set), nil
	}

	parts := s.re.Split(v.String(), -1)
	if len(parts) == 1 {
		return []View{v}, nil
	}
	frags := make([]View, len(parts))
	for i, p := range parts {
		frags[i] = FromString(p)
	}
	return dropTrailingEmpty(frags), nil
}

// unitSplitter matches separator units directly against the buffer. It is
// the collaborator for surrogate-containing separator sets.
type unitSplitter struct {
	set []Unit
}

func (s *unitSplitter) Split(v View) ([]View, error) {
	return splitUnits(v, s.set), nil
}

// splitUnits splits at every set member, requiring surrogate members to be
// bare at the match position.
func splitUnits(v View, set []Unit) []View {
	raw := v.raw()
	var frags []View
	start := 0
	for i, u := range v.units {
		if !unitInSet(u, set) {
			continue
		}
		if codeunit.IsSurrogate(uint16(u)) && !codeunit.IsBare(raw, i) {
			continue
		}
		frags = append(frags, v.subview(start, i))
		start = i + 1
	}
	if frags == nil {
		return []View{v}
	}
	frags = append(frags, v.subview(start, v.Len()))
	return dropTrailingEmpty(frags)
}

func unitInSet(u Unit, set []Unit) bool {
	for _, s := range set {
		if s == u {
			return true
		}
	}
	return false
}

// dropTrailingEmpty removes all trailing empty fragments, possibly leaving
// zero fragments.
func dropTrailingEmpty(frags []View) []View {
	n := len(frags)
	for n > 0 && frags[n-1].IsEmpty() {
		n--
	}
	return frags[:n]
}

// classPattern builds a character-class pattern source from non-surrogate
// units, escaping class metacharacters.
func classPattern(set []Unit) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, u := range set {
		r := rune(u)
		switch r {
		case '\\', '[', ']', '^', '-':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
