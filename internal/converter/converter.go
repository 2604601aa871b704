// Package converter turns a markup tree into styled runs.
//
// Conversion is a single top-down pass: every element resolves the
// attributes its children inherit, implicit elements short-circuit to a fixed
// rendering, and block elements are bracketed with structural markers built
// from the parent's attributes. The converter holds no state between calls.
package converter

import (
	"fmt"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/cascade"
	"github.com/riverfjs/richtextify-go/internal/marker"
	"github.com/riverfjs/richtextify-go/internal/node"
	"github.com/riverfjs/richtextify-go/internal/richtext"
)

// ContractViolation is the panic value raised when the input breaks the
// converter's preconditions.
type ContractViolation struct {
	Reason string
}

func (c ContractViolation) Error() string {
	return "richtextify: contract violation: " + c.Reason
}

// Converter converts nodes using one cascade resolver.
type Converter struct {
	resolver *cascade.Resolver
}

// New returns a converter. A nil resolver uses default options.
func New(resolver *cascade.Resolver) *Converter {
	if resolver == nil {
		resolver = cascade.New(cascade.Options{})
	}
	return &Converter{resolver: resolver}
}

// Convert renders n with the inherited attributes. inherited must carry a
// font descriptor.
func (c *Converter) Convert(n node.Node, inherited attr.Set) richtext.Text {
	if !inherited.Has(attr.KeyFont) {
		panic(ContractViolation{Reason: attr.ErrMissingFont.Error()})
	}
	b := richtext.NewBuilder()
	c.convert(b, n, inherited)
	return b.Text()
}

func (c *Converter) convert(b *richtext.Builder, n node.Node, inherited attr.Set) {
	switch n := n.(type) {
	case *node.Text:
		if n == nil {
			panic(ContractViolation{Reason: "nil text"})
		}
		b.Add(richtext.Run{Text: n.Content, Attrs: inherited})
	case *node.Comment:
		if n == nil {
			panic(ContractViolation{Reason: "nil comment"})
		}
		b.Add(richtext.Run{Text: n.Content, Attrs: inherited})
	case *node.Element:
		if n == nil {
			panic(ContractViolation{Reason: "nil element"})
		}
		c.convertElement(b, n, inherited)
	default:
		panic(ContractViolation{Reason: fmt.Sprintf("unexpected node %T", n)})
	}
}

func (c *Converter) convertElement(b *richtext.Builder, el *node.Element, inherited attr.Set) {
	kind := el.Kind()
	childAttrs := c.resolver.Resolve(el, inherited)

	// implicit elements never visit their children
	if repr, ok := marker.Implicit(kind); ok {
		b.Append(repr(childAttrs))
		return
	}

	pair := marker.Policy(kind)
	if pair.Opening {
		b.Add(marker.Run(attr.MarkerOpening, kind, inherited))
	}
	for _, child := range el.Children {
		c.convert(b, child, childAttrs)
	}
	if pair.Closing {
		b.Add(marker.Run(attr.MarkerClosing, kind, inherited))
	}
}
