package attr

import (
	"fmt"

	"golang.org/x/net/html/atom"
)

// ListKind tells ordered lists from unordered ones.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
)

func (k ListKind) String() string {
	if k == ListOrdered {
		return "ordered"
	}
	return "unordered"
}

// ListStyle is list formatting. Levels nest: an inner list's style replaces
// the outer one with Depth incremented.
type ListStyle struct {
	Kind   ListKind
	Depth  int
	Start  int
	Indent float64
}

func (l ListStyle) String() string {
	return fmt.Sprintf("%s/%d", l.Kind, l.Depth)
}

// QuoteStyle is blockquote formatting.
type QuoteStyle struct {
	Depth  int
	Indent float64
}

func (q QuoteStyle) String() string {
	return fmt.Sprintf("quote/%d", q.Depth)
}

// HeadingStyle records the heading level, 1 to 6.
type HeadingStyle struct {
	Level int
}

func (h HeadingStyle) String() string {
	return fmt.Sprintf("h%d", h.Level)
}

// MarkerKind is the side of a block a structural marker sits on.
type MarkerKind int

const (
	MarkerOpening MarkerKind = iota
	MarkerClosing
)

func (k MarkerKind) String() string {
	if k == MarkerClosing {
		return "closing"
	}
	return "opening"
}

// Marker tags an invisible run as a block boundary.
type Marker struct {
	Kind    MarkerKind
	Element atom.Atom
}

func (m Marker) String() string {
	return fmt.Sprintf("%s:%s", m.Kind, m.Element)
}
