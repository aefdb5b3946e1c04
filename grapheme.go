package cstring

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Graphemes splits s into user-perceived characters (grapheme
// clusters). A codepoint sequence such as a ZWJ emoji or a base letter
// with combining marks forms a single element.
func (s String) Graphemes() []String {
	var out []String
	g := uniseg.NewGraphemes(string(s.r))
	for g.Next() {
		out = append(out, String{r: g.Runes()})
	}
	return out
}

// NumGraphemes returns the number of grapheme clusters in s.
func (s String) NumGraphemes() int {
	return uniseg.GraphemeClusterCount(string(s.r))
}

// Width returns the number of terminal cells s occupies, counting
// East Asian wide characters as two.
func (s String) Width() int {
	return runewidth.StringWidth(string(s.r))
}

// Normalize returns s in Unicode normalization form NFC. Combining
// sequences with a precomposed equivalent collapse to a single
// codepoint, which changes Len and all positions accordingly.
func (s String) Normalize() String {
	return String{r: []rune(norm.NFC.String(string(s.r)))}
}
