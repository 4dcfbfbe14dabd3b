package dom

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL, ContentType, CompatMode string
	Type                         string
}

// https://html.spec.whatwg.org/#the-document-object
type HTMLDocument struct {
	*Node
}

// NewHTMLDocumentNode returns a document with no children.
func NewHTMLDocumentNode() *HTMLDocument {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{
			URL:         "about:blank",
			ContentType: "text/html",
			CompatMode:  "CSS1Compat",
			Type:        "html",
		},
	}
	n.OwnerDocument = n
	return &HTMLDocument{Node: n}
}

// NewHTMLDocument returns a document holding the minimal html, head and
// body skeleton.
func NewHTMLDocument() *HTMLDocument {
	d := NewHTMLDocumentNode()
	html := d.AppendChild(d.CreateElement("html"))
	html.AppendChild(d.CreateElement("head"))
	html.AppendChild(d.CreateElement("body"))
	return d
}

// CreateElement creates an unattached HTML element owned by d.
// https://dom.spec.whatwg.org/#dom-document-createelement
func (d *HTMLDocument) CreateElement(localName string) *Node {
	return NewDOMElement(d.Node, localName, Htmlns)
}

// CreateElementNS creates an unattached element in namespace ns.
func (d *HTMLDocument) CreateElementNS(ns Namespace, localName string) *Node {
	return NewDOMElement(d.Node, localName, ns)
}

func (d *HTMLDocument) CreateTextNode(data string) *Node {
	return NewTextNode(d.Node, data)
}

func (d *HTMLDocument) CreateComment(data string) *Node {
	return NewComment(data, d.Node)
}

// DocumentElement is the first element child of the document.
func (d *HTMLDocument) DocumentElement() *Node {
	for _, child := range d.ChildNodes {
		if child.NodeType == ElementNode {
			return child
		}
	}
	return nil
}

func (d *HTMLDocument) Head() *Node {
	return d.childOfRoot("head")
}

func (d *HTMLDocument) Body() *Node {
	return d.childOfRoot("body")
}

func (d *HTMLDocument) childOfRoot(name string) *Node {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for _, child := range root.ChildNodes {
		if child.NodeType == ElementNode && child.NodeName == name {
			return child
		}
	}
	return nil
}
