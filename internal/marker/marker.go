// Package marker holds the static per-kind tables the converter consults:
// which elements are bracketed by structural markers and which render as a
// fixed run instead of their children.
package marker

import (
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/richtext"
)

// Pair says which markers an element kind gets.
type Pair struct {
	Opening bool
	Closing bool
}

var blockPair = Pair{Opening: true, Closing: true}

var policy = map[atom.Atom]Pair{
	atom.P:          blockPair,
	atom.Div:        blockPair,
	atom.Li:         blockPair,
	atom.Ul:         blockPair,
	atom.Ol:         blockPair,
	atom.Blockquote: blockPair,
	atom.H1:         blockPair,
	atom.H2:         blockPair,
	atom.H3:         blockPair,
	atom.H4:         blockPair,
	atom.H5:         blockPair,
	atom.H6:         blockPair,
	atom.Pre:        blockPair,
	atom.Figure:     blockPair,
	atom.Figcaption: blockPair,
	atom.Dl:         blockPair,
	atom.Dt:         blockPair,
	atom.Dd:         blockPair,
	atom.Table:      blockPair,
	atom.Tr:         blockPair,
	atom.Section:    blockPair,
	atom.Article:    blockPair,
	atom.Header:     blockPair,
	atom.Footer:     blockPair,
	atom.Address:    blockPair,
}

// Policy returns the markers for kind. Inline and unknown kinds get none.
func Policy(kind atom.Atom) Pair {
	return policy[kind]
}

// IsBlock reports whether kind is bracketed by markers.
func IsBlock(kind atom.Atom) bool {
	p := policy[kind]
	return p.Opening || p.Closing
}

// Run materializes a marker for element kind using attrs as the style
// context. Opening markers are a zero width space, closing ones a newline.
func Run(kind attr.MarkerKind, element atom.Atom, attrs attr.Set) richtext.Run {
	text := richtext.OpeningChar
	if kind == attr.MarkerClosing {
		text = richtext.ClosingChar
	}
	return richtext.Run{
		Text:  text,
		Attrs: attrs.With(attr.Marker{Kind: kind, Element: element}),
	}
}

// Representation builds the fixed rendering of an implicit element.
type Representation func(attrs attr.Set) richtext.Text

var implicit = map[atom.Atom]Representation{
	atom.Br: func(attrs attr.Set) richtext.Text {
		return richtext.Text{{Text: "\n", Attrs: attrs}}
	},
	atom.Img:   attachment,
	atom.Video: attachment,
	atom.Hr: func(attrs attr.Set) richtext.Text {
		return richtext.Text{{Text: richtext.ObjectChar, Attrs: attrs.With(attr.Rule{})}}
	},
}

func attachment(attrs attr.Set) richtext.Text {
	return richtext.Text{{Text: richtext.ObjectChar, Attrs: attrs}}
}

// Implicit returns the fixed representation for kind, if it has one.
func Implicit(kind atom.Atom) (Representation, bool) {
	r, ok := implicit[kind]
	return r, ok
}
