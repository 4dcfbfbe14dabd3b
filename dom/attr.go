package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

func NewAttr(name, value string, owner *Node) *Attr {
	return &Attr{
		LocalName:    name,
		Name:         name,
		Value:        value,
		OwnerElement: owner,
	}
}
