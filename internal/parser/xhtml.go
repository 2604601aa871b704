package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/richtextify-go/internal/node"
)

// XHTML parses a well-formed XHTML (or any XML) document. The root is the
// first <body> element if present, otherwise the document element.
func XHTML(r io.Reader, log *zap.Logger) (node.Node, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("could not parse xhtml: %w", err)
	}

	root := doc.FindElement("//body")
	if root == nil {
		root = doc.Root()
	}
	if root == nil {
		return nil, ErrNoRoot
	}

	n := fromXML(root, false)
	log.Debug("Parsed xhtml", zap.String("root", root.Tag), zap.Int("nodes", Count(n)))
	return n, nil
}

func fromXML(el *etree.Element, pre bool) *node.Element {
	out := &node.Element{Name: el.Tag}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || a.Key == "xmlns" {
			continue
		}
		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}
		out.Attrs = append(out.Attrs, node.Attr{Key: key, Value: a.Value})
	}

	inPre := pre || strings.EqualFold(el.Tag, atom.Pre.String())
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			out.Children = append(out.Children, fromXML(t, inPre))
		case *etree.CharData:
			out.Children = append(out.Children, &node.Text{Content: t.Data})
		case *etree.Comment:
			out.Children = append(out.Children, &node.Comment{Content: t.Data})
		}
	}
	if !inPre {
		out.Children = normalizeSpace(out, out.Children)
	}
	return out
}
