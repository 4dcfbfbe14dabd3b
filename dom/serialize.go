package dom

import (
	"strings"
)

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.NodeName + ">"
		if node.Attributes == nil || node.Attributes.Length == 0 {
			return e
		}
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range node.Attributes.Names() {
			e += "\n" + spaces + name + "=\"" + node.Attributes.Attrs[name].Value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the subtree in the html5lib tree-construction test format.
func (node *Node) String() string {
	ident := 1
	if node.NodeType == DocumentNode {
		ident = 0
	}
	return strings.TrimRight(node.serialize(ident), "\n")
}

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// SerializeHTML renders the children of node as markup.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeHTML(node *Node) string {
	var b strings.Builder
	serializeChildren(&b, node)
	return b.String()
}

// OuterHTML renders node itself along with its children.
func OuterHTML(node *Node) string {
	var b strings.Builder
	serializeOne(&b, node)
	return b.String()
}

func serializeChildren(b *strings.Builder, node *Node) {
	for _, child := range node.ChildNodes {
		serializeOne(b, child)
	}
}

func serializeOne(b *strings.Builder, child *Node) {
	switch child.NodeType {
	case ElementNode:
		b.WriteString("<" + child.NodeName)
		for _, k := range child.Attributes.Names() {
			b.WriteString(" " + k + "=\"" + escapeString(child.Attributes.Attrs[k].Value, true) + "\"")
		}
		b.WriteString(">")
		if voidElements[child.NodeName] {
			return
		}
		serializeChildren(b, child)
		b.WriteString("</" + child.NodeName + ">")
	case TextNode:
		switch child.ParentNode.TagName() {
		case "STYLE", "SCRIPT", "XMP", "IFRAME", "NOEMBED", "NOFRAMES", "PLAINTEXT":
			b.WriteString(child.Text.Data)
		default:
			b.WriteString(escapeString(child.Text.Data, false))
		}
	case CommentNode:
		b.WriteString("<!--" + child.Comment.Data + "-->")
	case DocumentNode:
		serializeChildren(b, child)
	}
}
