package textview

// Line terminator code units. A line ends at a line feed or form feed; a
// carriage return is only consumed as part of a CR LF sequence.
const (
	unitLF = Unit(0x0A)
	unitFF = Unit(0x0C)
	unitCR = Unit(0x0D)
)

// DefaultMarginChar is the margin character used by StripMargin.
const DefaultMarginChar = Unit('|')

// isLineBreak reports whether u terminates a line.
func isLineBreak(u Unit) bool {
	return u == unitLF || u == unitFF
}

// LineIterator is a single-pass cursor over the lines of a view. Obtain one
// from Lines or LinesWithSeparators; once exhausted a fresh iterator is
// required to re-scan.
type LineIterator struct {
	view  View
	pos   int
	cur   View
	strip bool
}

// Next advances to the next line.
// Returns true if there is a line, false if iteration is complete.
func (it *LineIterator) Next() bool {
	if it.pos >= it.view.Len() {
		return false
	}

	end := it.view.Len()
	for i := it.pos; i < it.view.Len(); i++ {
		if isLineBreak(it.view.units[i]) {
			end = i + 1
			break
		}
	}

	it.cur = it.view.subview(it.pos, end)
	if it.strip {
		it.cur = it.cur.StripLineEnd()
	}
	it.pos = end
	return true
}

// View returns the current line.
func (it *LineIterator) View() View {
	return it.cur
}

// Text returns the current line as a string.
func (it *LineIterator) Text() string {
	return it.cur.String()
}

// LinesWithSeparators returns an iterator over the view's lines, each
// terminated by (and including) the line feed or form feed that ends it, or
// running to the end of the buffer for the final fragment. An empty view
// yields zero lines.
func (v View) LinesWithSeparators() *LineIterator {
	return &LineIterator{view: v}
}

// Lines returns an iterator over the view's lines with StripLineEnd applied
// to each. An empty view yields zero lines.
func (v View) Lines() *LineIterator {
	return &LineIterator{view: v, strip: true}
}

// StripLineEnd removes one trailing line feed or form feed. When the removed
// unit is a line feed preceded by a carriage return, the carriage return is
// removed as well.
func (v View) StripLineEnd() View {
	n := len(v.units)
	if n == 0 {
		return v
	}
	last := v.units[n-1]
	if !isLineBreak(last) {
		return v
	}
	if last == unitLF && n >= 2 && v.units[n-2] == unitCR {
		return v.subview(0, n-2)
	}
	return v.subview(0, n-1)
}

// StripMargin strips leading whitespace followed by DefaultMarginChar from
// every line of the view.
func (v View) StripMargin() View {
	return v.StripMarginWith(DefaultMarginChar)
}

// StripMarginWith processes each line of the view: units with a code at or
// below space (0x20) are skipped; if the next unit equals marginChar, the
// skipped run and the margin character are dropped and only the remainder is
// kept. Lines without a margin character are kept unchanged, including their
// leading whitespace. The processed lines are concatenated with their
// original separators.
func (v View) StripMarginWith(marginChar Unit) View {
	if len(v.units) == 0 {
		return v
	}

	out := make([]Unit, 0, len(v.units))
	it := v.LinesWithSeparators()
	for it.Next() {
		line := it.View()
		i := 0
		for i < line.Len() && line.units[i] <= Unit(' ') {
			i++
		}
		if i < line.Len() && line.units[i] == marginChar {
			out = append(out, line.units[i+1:]...)
		} else {
			out = append(out, line.units...)
		}
	}
	if len(out) == 0 {
		return View{}
	}
	return View{units: out}
}
