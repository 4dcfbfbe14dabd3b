package dom

import (
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// Walkable is the read-only view of a node that ancestry lookups climb.
// *Node implements it; anything else that can report a tag, an attribute
// and a parent can stand in for a tree.
type Walkable interface {
	TagName() string
	GetAttribute(qualifiedName string) string
	Parent() Walkable
}

// NewDOMElement creates an element owned by od. The element is not attached
// anywhere.
func NewDOMElement(od *Node, name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	if namespace == Htmlns {
		name = strings.ToLower(name)
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
		},
	}

	n.Attributes = NewNamedNodeMap(map[string]string{}, n)
	return n
}

// NewTextNode returns a text node with its Data section filled.
func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(text),
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       NewCommentData(data),
	}
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document

	listeners []*listener
}

// TagName is the HTML-uppercased qualified name for elements and the empty
// string for everything else.
// https://dom.spec.whatwg.org/#dom-element-tagname
func (n *Node) TagName() string {
	if n == nil || n.NodeType != ElementNode || n.Element == nil {
		return ""
	}
	qn := n.LocalName
	if n.Prefix != "" {
		qn = n.Prefix + ":" + qn
	}
	if n.NamespaceURI == Htmlns {
		return strings.ToUpper(qn)
	}
	return qn
}

// Parent returns the parent as a Walkable, or a nil interface at the top of
// the chain.
func (n *Node) Parent() Walkable {
	if n == nil || n.ParentNode == nil {
		return nil
	}
	return n.ParentNode
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// TextContent concatenates the data of every descendant text node.
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	}
	var b strings.Builder
	for _, child := range n.ChildNodes {
		if child.NodeType == CommentNode {
			continue
		}
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// SetTextContent replaces every child with a single text node.
func (n *Node) SetTextContent(text string) {
	for len(n.ChildNodes) > 0 {
		n.RemoveChild(n.ChildNodes[0])
	}
	if text == "" {
		return
	}
	n.AppendChild(NewTextNode(n.OwnerDocument, text))
}

// canInsert is the hierarchy half of the pre-insert validity check: on may
// be neither n nor one of n's ancestors.
// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) canInsert(on *Node) bool {
	return on != nil && !on.Contains(n)
}

// InsertBefore moves on in front of child. It returns nil and leaves the
// tree untouched when child is not one of n's children or when on would
// become its own ancestor.
// https://dom.spec.whatwg.org/#concept-node-pre-insert
func (n *Node) InsertBefore(on, child *Node) *Node {
	if !n.canInsert(on) {
		return nil
	}
	if child != nil && n.ChildNodes.Contains(child) == -1 {
		return nil
	}
	if child == on {
		child = on.NextSibling
	}
	if child == nil {
		return n.AppendChild(on)
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}

	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	}
	child.PreviousSibling = on
	if i == 0 {
		n.FirstChild = on
	}
	return on
}

// AppendChild moves on to the end of n's children, detaching it from its
// previous parent first. Appending n or an ancestor of n returns nil.
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if !n.canInsert(on) {
		return nil
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if len(n.ChildNodes) == 0 {
		n.FirstChild, n.LastChild = nil, nil
	} else {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil
	return node
}

// GetElementByID does a depth-first search of n's descendants.
func (n *Node) GetElementByID(id string) *Node {
	for _, child := range n.ChildNodes {
		if child.NodeType == ElementNode && child.GetAttribute("id") == id {
			return child
		}
		if found := child.GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}

// GetElementsByTagName returns descendants named qualifiedName in tree order.
func (n *Node) GetElementsByTagName(qualifiedName string) NodeList {
	qualifiedName = strings.ToLower(qualifiedName)
	var found NodeList
	for _, child := range n.ChildNodes {
		if child.NodeType == ElementNode && (qualifiedName == "*" || child.NodeName == qualifiedName) {
			found = append(found, child)
		}
		found = append(found, child.GetElementsByTagName(qualifiedName)...)
	}
	return found
}

// IsConnected reports whether n's root is a document.
func (n *Node) IsConnected() bool {
	return n.getRoot().NodeType == DocumentNode
}

func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}

	return prev
}
