package header

import "github.com/heathj/headerbar/dom"

// elements memoizes the nodes a widget builds. A slot is filled the first
// time it is asked for and kept for the life of the widget.
type elements struct {
	nodes map[string]*dom.Node
}

func newElements() *elements {
	return &elements{nodes: make(map[string]*dom.Node)}
}

// get returns the cached node for key, building it on first use. If build
// itself fills the slot, the node stored first wins.
func (c *elements) get(key string, build func() *dom.Node) *dom.Node {
	if n, ok := c.nodes[key]; ok {
		return n
	}
	n := build()
	if existing, ok := c.nodes[key]; ok {
		return existing
	}
	c.nodes[key] = n
	return n
}

func (c *elements) has(key string) bool {
	_, ok := c.nodes[key]
	return ok
}
