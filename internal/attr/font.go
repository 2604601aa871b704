package attr

import (
	"fmt"
	"strings"
)

// Traits is a set of symbolic font traits.
type Traits uint8

const (
	TraitBold Traits = 1 << iota
	TraitItalic
)

// Has reports whether all traits in t2 are set in t.
func (t Traits) Has(t2 Traits) bool {
	return t&t2 == t2
}

func (t Traits) String() string {
	var names []string
	if t.Has(TraitBold) {
		names = append(names, "bold")
	}
	if t.Has(TraitItalic) {
		names = append(names, "italic")
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Font is a base font identity plus symbolic traits.
type Font struct {
	Family string
	Size   float64
	Traits Traits
}

// WithTraits unions t into the font's traits; the base identity is kept.
func (f Font) WithTraits(t Traits) Font {
	f.Traits |= t
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s %g %s", f.Family, f.Size, f.Traits)
}
