// Package cascade resolves the attribute set an element hands to its
// children. Rules are keyed by element kind and applied in a fixed order;
// later rules win where keys collide.
package cascade

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/formatter"
	"github.com/riverfjs/richtextify-go/internal/media"
	"github.com/riverfjs/richtextify-go/internal/node"
)

type kindSet map[atom.Atom]struct{}

func kinds(list ...atom.Atom) kindSet {
	s := make(kindSet, len(list))
	for _, a := range list {
		s[a] = struct{}{}
	}
	return s
}

func (s kindSet) has(a atom.Atom) bool {
	_, ok := s[a]
	return ok
}

// Equivalence classes: legacy and modern names for the same role.
var (
	boldKinds      = kinds(atom.B, atom.Strong)
	italicKinds    = kinds(atom.I, atom.Em, atom.Cite, atom.Dfn)
	strikeKinds    = kinds(atom.S, atom.Strike, atom.Del)
	underlineKinds = kinds(atom.U, atom.Ins)
	headingLevels  = map[atom.Atom]int{
		atom.H1: 1, atom.H2: 2, atom.H3: 3,
		atom.H4: 4, atom.H5: 5, atom.H6: 6,
	}
)

// Options tune the values the resolver attaches.
type Options struct {
	Indent           float64 // list and quote indent per level
	ImageOverlayIcon string
	VideoOverlayIcon string
}

// Resolver computes child-facing attribute sets.
type Resolver struct {
	opts Options
}

// New returns a resolver.
func New(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve returns the attribute set el's children inherit. It panics with
// attr.ErrMissingFont when inherited has no font descriptor.
func (r *Resolver) Resolve(el *node.Element, inherited attr.Set) attr.Set {
	_ = inherited.Font()
	return r.Rules(el).Apply(inherited)
}

// Rules returns the formatters el contributes, in application order.
func (r *Resolver) Rules(el *node.Element) formatter.Chain {
	kind := el.Kind()
	var chain formatter.Chain

	var traits attr.Traits
	if boldKinds.has(kind) {
		traits |= attr.TraitBold
	}
	if italicKinds.has(kind) {
		traits |= attr.TraitItalic
	}
	if traits != 0 {
		chain = append(chain, addTraits(traits))
	}

	if kind == atom.A {
		chain = append(chain, set(attr.Link(el.AttrOr("href", ""))))
	}
	if strikeKinds.has(kind) {
		chain = append(chain, set(attr.Strikethrough(true)))
	}
	if underlineKinds.has(kind) {
		chain = append(chain, set(attr.Underline(true)))
	}
	if kind == atom.Blockquote {
		chain = append(chain, formatter.Blockquote{Indent: r.opts.Indent})
	}
	if kind == atom.Img {
		p := media.NewPlaceholder(media.KindImage,
			el.AttrOr("src", ""), "", el.AttrOr("class", ""), r.opts.ImageOverlayIcon)
		chain = append(chain, set(attr.Media{Placeholder: p}))
	}

	switch kind {
	case atom.Ol:
		chain = append(chain, formatter.List{Kind: attr.ListOrdered, Start: listStart(el), Indent: r.opts.Indent})
	case atom.Ul:
		chain = append(chain, formatter.List{Kind: attr.ListUnordered, Start: 1, Indent: r.opts.Indent})
	}

	if level, ok := headingLevels[kind]; ok {
		chain = append(chain, formatter.Heading{Level: level})
	}
	if kind == atom.Video {
		p := media.NewPlaceholder(media.KindVideo,
			videoSource(el), el.AttrOr("poster", ""), el.AttrOr("class", ""), r.opts.VideoOverlayIcon)
		chain = append(chain, set(attr.Media{Placeholder: p}))
	}
	return chain
}

func addTraits(t attr.Traits) formatter.Func {
	return func(s attr.Set) attr.Set {
		font := s.Font()
		if font.Traits.Has(t) {
			return s
		}
		return s.With(font.WithTraits(t))
	}
}

func set(v attr.Value) formatter.Func {
	return func(s attr.Set) attr.Set {
		return s.With(v)
	}
}

func listStart(el *node.Element) int {
	v, ok := el.Attr("start")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 1
	}
	return n
}

// videoSource prefers the element's own src and falls back to the first
// <source> child that has one.
func videoSource(el *node.Element) string {
	if src, ok := el.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return src
	}
	for _, c := range el.Children {
		if child, ok := c.(*node.Element); ok && child.Kind() == atom.Source {
			if src, ok := child.Attr("src"); ok {
				return src
			}
		}
	}
	return ""
}
