// Package delegate routes DOM events to methods named in an element
// attribute. An attribute such as
//
//	data-handle-event="click:show keydown:hide :log"
//
// on an element, or on any of its ancestors below the boundary tag, makes a
// Dispatcher call "show" for clicks, "hide" for key presses and "log" for
// every event type.
package delegate

import "strings"

// DefaultAttribute is the attribute name the widgets in this module read
// their directives from.
const DefaultAttribute = "data-handle-event"

const separator = ":"

// Binding pairs an event type with a method name. An empty EventType matches
// every event.
type Binding struct {
	EventType  string
	MethodName string
}

// Matches reports whether the binding applies to events of eventType.
func (b Binding) Matches(eventType string) bool {
	return b.EventType == "" || b.EventType == eventType
}

// Wildcard reports whether the binding matches any event type.
func (b Binding) Wildcard() bool {
	return b.EventType == ""
}

func (b Binding) String() string {
	return b.EventType + separator + b.MethodName
}

// ParseDirective splits a directive into its bindings. Tokens are separated
// by runs of whitespace and each must be exactly "type:method". The first
// token that is not stops parsing; only the bindings before it are
// returned.
func ParseDirective(directive string) []Binding {
	tokens := strings.Fields(directive)
	bindings := make([]Binding, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, separator)
		if len(parts) != 2 {
			break
		}
		bindings = append(bindings, Binding{EventType: parts[0], MethodName: parts[1]})
	}
	return bindings
}
