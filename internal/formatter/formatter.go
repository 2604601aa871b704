// Package formatter holds the small attribute transforms applied by the
// cascade for block-level elements.
package formatter

import (
	"github.com/riverfjs/richtextify-go/internal/attr"
)

// DefaultIndent is the indent added per nesting level, in points.
const DefaultIndent = 16

// Formatter transforms an attribute set. Implementations are pure.
type Formatter interface {
	Apply(attr.Set) attr.Set
}

// Func adapts a plain function to Formatter.
type Func func(attr.Set) attr.Set

func (f Func) Apply(s attr.Set) attr.Set { return f(s) }

// Chain applies formatters left to right.
type Chain []Formatter

func (c Chain) Apply(s attr.Set) attr.Set {
	for _, f := range c {
		s = f.Apply(s)
	}
	return s
}

// List adds list formatting. Nested lists go one level deeper than the
// list they sit in, whatever its kind.
type List struct {
	Kind   attr.ListKind
	Start  int // number of the first item
	Indent float64
}

func (l List) Apply(s attr.Set) attr.Set {
	step := l.Indent
	if step <= 0 {
		step = DefaultIndent
	}
	depth := 1
	if prev, ok := s.List(); ok {
		depth = prev.Depth + 1
	}
	return s.With(attr.ListStyle{
		Kind:   l.Kind,
		Depth:  depth,
		Start:  l.Start,
		Indent: float64(depth) * step,
	})
}

// Blockquote adds quote formatting, nesting like List.
type Blockquote struct {
	Indent float64
}

func (b Blockquote) Apply(s attr.Set) attr.Set {
	step := b.Indent
	if step <= 0 {
		step = DefaultIndent
	}
	depth := 1
	if prev, ok := s.Quote(); ok {
		depth = prev.Depth + 1
	}
	return s.With(attr.QuoteStyle{Depth: depth, Indent: float64(depth) * step})
}

// Heading records the heading level. Levels outside 1..6 are clamped.
type Heading struct {
	Level int
}

func (h Heading) Apply(s attr.Set) attr.Set {
	return s.With(attr.HeadingStyle{Level: min(max(h.Level, 1), 6)})
}
