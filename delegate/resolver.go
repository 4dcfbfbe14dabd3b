package delegate

import (
	"strings"

	"github.com/heathj/headerbar/dom"
)

// DefaultBoundary is the tag above which directives are never looked up.
const DefaultBoundary = "body"

// Resolver finds the nearest ancestor, the start node included, that
// carries a non-empty attribute. The zero value uses DefaultBoundary.
type Resolver struct {
	Boundary string
}

var defaultResolver = Resolver{Boundary: DefaultBoundary}

func (r Resolver) boundary() string {
	if r.Boundary == "" {
		return DefaultBoundary
	}
	return strings.ToLower(r.Boundary)
}

// closest walks from target towards the root. It stops at the boundary tag,
// at the first non-empty value of attribute, or when the chain runs out.
func (r Resolver) closest(target dom.Walkable, attribute string) (dom.Walkable, string) {
	if attribute == "" {
		return nil, ""
	}
	boundary := r.boundary()
	for node := target; node != nil; node = node.Parent() {
		if strings.ToLower(node.TagName()) == boundary {
			return nil, ""
		}
		if value := node.GetAttribute(attribute); value != "" {
			return node, value
		}
	}
	return nil, ""
}

// ClosestAttribute returns the value of the nearest non-empty attribute.
// An empty attribute name returns immediately without touching target.
func (r Resolver) ClosestAttribute(target dom.Walkable, attribute string) (string, bool) {
	node, value := r.closest(target, attribute)
	return value, node != nil
}

// ClosestElement returns the node owning the nearest non-empty attribute,
// or nil. Callers compare the result against a known node to tell whether
// an event started inside that node's subtree.
func (r Resolver) ClosestElement(target dom.Walkable, attribute string) dom.Walkable {
	node, _ := r.closest(target, attribute)
	return node
}

// ClosestAttribute resolves with the default boundary.
func ClosestAttribute(target dom.Walkable, attribute string) (string, bool) {
	return defaultResolver.ClosestAttribute(target, attribute)
}

// ClosestElement resolves with the default boundary.
func ClosestElement(target dom.Walkable, attribute string) dom.Walkable {
	return defaultResolver.ClosestElement(target, attribute)
}
