// Package parser loads HTML markup into dom trees.
package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/headerbar/dom"
)

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*dom.HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}
	doc := dom.NewHTMLDocumentNode()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := convert(doc, c); n != nil {
			doc.AppendChild(n)
		}
	}
	return doc, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*dom.HTMLDocument, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFragment parses markup as if it were the contents of context and
// returns the resulting nodes owned by doc. A nil context parses in body.
func ParseFragment(doc *dom.HTMLDocument, context *dom.Node, r io.Reader) ([]*dom.Node, error) {
	name := "body"
	if context != nil && context.NodeType == dom.ElementNode {
		name = context.NodeName
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fragment in <%s>", name)
	}
	out := make([]*dom.Node, 0, len(nodes))
	for _, n := range nodes {
		if c := convert(doc, n); c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// AppendMarkup parses markup in the context of parent and appends the
// result to it.
func AppendMarkup(doc *dom.HTMLDocument, parent *dom.Node, markup string) error {
	nodes, err := ParseFragment(doc, parent, strings.NewReader(markup))
	if err != nil {
		return err
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}

func namespaceOf(ns string) dom.Namespace {
	switch ns {
	case "svg":
		return dom.Svgns
	case "math":
		return dom.Mathmlns
	default:
		return dom.Htmlns
	}
}

func convert(doc *dom.HTMLDocument, n *html.Node) *dom.Node {
	var out *dom.Node
	switch n.Type {
	case html.ElementNode:
		out = doc.CreateElementNS(namespaceOf(n.Namespace), n.Data)
		for _, a := range n.Attr {
			out.SetAttribute(a.Key, a.Val)
		}
	case html.TextNode:
		return doc.CreateTextNode(n.Data)
	case html.CommentNode:
		return doc.CreateComment(n.Data)
	default:
		// doctypes and raw nodes have no counterpart in dom.
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(doc, c); child != nil {
			out.AppendChild(child)
		}
	}
	return out
}
