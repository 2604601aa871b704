// Package node holds the read-only markup tree consumed by the converter.
//
// The tree is built by a front-end (see internal/parser) and borrowed by the
// converter; nothing in this module mutates a Node after it was built.
package node

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Node is one of *Text, *Comment or *Element. The set is closed: the
// unexported method keeps other packages from adding variants.
type Node interface {
	node()
}

// Text is a run of character data, already whitespace-normalized by the parser.
type Text struct {
	Content string
}

// Comment is a markup comment. It renders like text.
type Comment struct {
	Content string
}

// Attr is a single key/value attribute in document order.
type Attr struct {
	Key   string
	Value string
}

// Element is a named node with ordered attributes and children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Text) node()    {}
func (*Comment) node() {}
func (*Element) node() {}

// Kind returns the standardized element kind, or 0 when the name is not a
// known element. Names are matched case-insensitively.
func (e *Element) Kind() atom.Atom {
	return atom.Lookup([]byte(strings.ToLower(e.Name)))
}

// Attr returns the value of the first attribute named key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Key, key) {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or def when it is absent.
func (e *Element) AttrOr(key, def string) string {
	if v, ok := e.Attr(key); ok {
		return v
	}
	return def
}

// E builds an element. attrs alternate key, value; a trailing key without a
// value is ignored.
func E(name string, attrs []string, children ...Node) *Element {
	el := &Element{Name: name, Children: children}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Key: attrs[i], Value: attrs[i+1]})
	}
	return el
}

// T builds a text node.
func T(content string) *Text {
	return &Text{Content: content}
}

// C builds a comment node.
func C(content string) *Comment {
	return &Comment{Content: content}
}
