package textview

import "github.com/rivo/uniseg"

// GraphemeIterator is a single-pass cursor over the grapheme clusters
// (user-perceived characters) of a view. Obtain one from Graphemes; a fresh
// iterator is required to re-scan.
type GraphemeIterator struct {
	g *uniseg.Graphemes
}

// Graphemes returns an iterator over the view's grapheme clusters. Bare
// surrogates appear as replacement characters, matching String.
func (v View) Graphemes() *GraphemeIterator {
	return &GraphemeIterator{g: uniseg.NewGraphemes(v.String())}
}

// Next advances to the next grapheme cluster.
// Returns true if there is a cluster, false if iteration is complete.
func (it *GraphemeIterator) Next() bool {
	return it.g.Next()
}

// View returns the current cluster.
func (it *GraphemeIterator) View() View {
	return FromString(it.g.Str())
}

// Text returns the current cluster as a string.
func (it *GraphemeIterator) Text() string {
	return it.g.Str()
}

// Width returns the monospace display width of the view.
func (v View) Width() int {
	return uniseg.StringWidth(v.String())
}
