package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/richtextify-go/internal/marker"
	"github.com/riverfjs/richtextify-go/internal/node"
)

// ErrNoRoot is returned when the requested conversion root is not found.
var ErrNoRoot = errors.New("conversion root not found")

// HTMLOptions controls the HTML front-end.
type HTMLOptions struct {
	// RootSelector is a CSS selector choosing the subtree to convert. The
	// first match wins. Empty means <body>.
	RootSelector string
}

// HTML parses an HTML document and returns the conversion root.
func HTML(r io.Reader, opts HTMLOptions, log *zap.Logger) (node.Node, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse html: %w", err)
	}

	var root *html.Node
	if opts.RootSelector != "" {
		sel := goquery.NewDocumentFromNode(doc).Find(opts.RootSelector).First()
		if sel.Length() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoRoot, opts.RootSelector)
		}
		root = sel.Get(0)
	} else {
		root = findElement(doc, atom.Body)
	}
	if root == nil {
		return nil, ErrNoRoot
	}

	n := fromHTML(root, false)
	if n == nil {
		return nil, ErrNoRoot
	}
	log.Debug("Parsed html", zap.String("root", root.Data), zap.Int("nodes", Count(n)))
	return n, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// fromHTML copies an html.Node subtree. Doctype and other non-content nodes
// return nil.
func fromHTML(n *html.Node, pre bool) node.Node {
	switch n.Type {
	case html.TextNode:
		return &node.Text{Content: n.Data}
	case html.CommentNode:
		return &node.Comment{Content: n.Data}
	case html.ElementNode:
		el := &node.Element{Name: n.Data}
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Attrs = append(el.Attrs, node.Attr{Key: key, Value: a.Val})
		}
		inPre := pre || n.DataAtom == atom.Pre
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTML(c, inPre); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		if !inPre {
			el.Children = normalizeSpace(el, el.Children)
		}
		return el
	default:
		return nil
	}
}

// normalizeSpace collapses whitespace in text children and drops
// whitespace-only text that only separates block elements.
func normalizeSpace(parent *node.Element, children []node.Node) []node.Node {
	blockParent := marker.IsBlock(parent.Kind()) || parent.Kind() == atom.Body
	out := make([]node.Node, 0, len(children))
	for i, c := range children {
		t, ok := c.(*node.Text)
		if !ok {
			out = append(out, c)
			continue
		}
		collapsed := collapse(t.Content)
		if strings.TrimSpace(collapsed) == "" {
			if blockParent && (isBlockAt(children, i-1) || isBlockAt(children, i+1) || i == 0 || i == len(children)-1) {
				continue
			}
		}
		out = append(out, &node.Text{Content: collapsed})
	}
	return out
}

func isBlockAt(children []node.Node, i int) bool {
	if i < 0 || i >= len(children) {
		return false
	}
	el, ok := children[i].(*node.Element)
	return ok && (marker.IsBlock(el.Kind()) || el.Kind() == atom.Br || el.Kind() == atom.Hr)
}

func collapse(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				b.WriteByte(' ')
			}
			space = true
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

// Count returns the number of nodes in the subtree rooted at n.
func Count(n node.Node) int {
	el, ok := n.(*node.Element)
	if !ok {
		return 1
	}
	total := 1
	for _, c := range el.Children {
		total += Count(c)
	}
	return total
}
