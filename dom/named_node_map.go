package dom

import (
	"sort"
	"strings"
)

func NewNamedNodeMap(attrs map[string]string, oe *Node) *NamedNodeMap {
	a := make(map[string]*Attr, len(attrs))
	for k, v := range attrs {
		a[k] = NewAttr(k, v, oe)
	}
	return &NamedNodeMap{
		Length:            len(a),
		Attrs:             a,
		AssociatedElement: oe,
	}
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Length            int
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	return n.getAttributeByName(qn)
}

func (n *NamedNodeMap) isHTML() bool {
	return n.AssociatedElement != nil &&
		n.AssociatedElement.Element != nil &&
		n.AssociatedElement.NamespaceURI == Htmlns
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) getAttributeByName(qn string) *Attr {
	if n.isHTML() {
		qn = strings.ToLower(qn)
	}

	if v, ok := n.Attrs[qn]; ok {
		return v
	}

	return nil
}

func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement
	if n.isHTML() {
		s.LocalName = strings.ToLower(s.LocalName)
		s.Name = strings.ToLower(s.Name)
	}

	oldAttr, ok := n.Attrs[s.LocalName]
	n.Attrs[s.LocalName] = s
	if !ok {
		n.Length++
		return nil
	}
	return oldAttr
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	attr := n.getAttributeByName(qn)
	if attr == nil {
		return nil
	}
	delete(n.Attrs, attr.LocalName)
	n.Length--
	attr.OwnerElement = nil
	return attr
}

// Names returns the attribute names in a stable, sorted order.
func (n *NamedNodeMap) Names() []string {
	keys := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
