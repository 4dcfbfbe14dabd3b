package dom

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is the element-specific part of a Node.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap
}

func (n *Node) HasAttributes() bool {
	return n.Element != nil && n.Attributes.Length > 0
}

func (n *Node) GetAttributeNames() []string {
	if n.Element == nil {
		return nil
	}
	return n.Attributes.Names()
}

// GetAttribute returns the attribute value, or the empty string when n is
// not an element or carries no such attribute.
func (n *Node) GetAttribute(qualifiedName string) string {
	if n == nil || n.Element == nil || n.Attributes == nil {
		return ""
	}
	if attr := n.Attributes.GetNamedItem(qualifiedName); attr != nil {
		return attr.Value
	}
	return ""
}

func (n *Node) SetAttribute(qualifiedName, value string) {
	if n.Element == nil {
		return
	}
	if attr := n.Attributes.GetNamedItem(qualifiedName); attr != nil {
		attr.Value = value
		return
	}
	n.Attributes.SetNamedItem(NewAttr(qualifiedName, value, n))
}

func (n *Node) RemoveAttribute(qualifiedName string) {
	if n.Element == nil {
		return
	}
	n.Attributes.RemoveNamedItem(qualifiedName)
}

func (n *Node) HasAttribute(qualifiedName string) bool {
	return n.Element != nil && n.Attributes.GetNamedItem(qualifiedName) != nil
}

// https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (n *Node) ToggleAttribute(qualifiedName string, force ...bool) bool {
	has := n.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		n.SetAttribute(qualifiedName, "")
	case !want && has:
		n.RemoveAttribute(qualifiedName)
	}
	return want
}

// ClassName is the reflected "class" attribute.
func (n *Node) ClassName() string {
	return n.GetAttribute("class")
}

func (n *Node) SetClassName(className string) {
	n.SetAttribute("class", className)
}

// ClassList returns a live token list over the "class" attribute.
func (n *Node) ClassList() *DOMTokenList {
	return &DOMTokenList{owner: n, attribute: "class"}
}
