package dom

import "strings"

// DOMTokenList is a live, whitespace-separated view over one attribute.
// https://dom.spec.whatwg.org/#interface-domtokenlist
type DOMTokenList struct {
	owner     *Node
	attribute string
}

func (l *DOMTokenList) tokens() []string {
	return strings.Fields(l.owner.GetAttribute(l.attribute))
}

func (l *DOMTokenList) write(tokens []string) {
	l.owner.SetAttribute(l.attribute, strings.Join(tokens, " "))
}

func (l *DOMTokenList) Length() int {
	return len(l.tokens())
}

func (l *DOMTokenList) Contains(token string) bool {
	for _, t := range l.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends each token not already present.
func (l *DOMTokenList) Add(tokens ...string) {
	current := l.tokens()
	changed := false
	for _, token := range tokens {
		if token == "" || containsToken(current, token) {
			continue
		}
		current = append(current, token)
		changed = true
	}
	if changed {
		l.write(current)
	}
}

func (l *DOMTokenList) Remove(tokens ...string) {
	if !l.owner.HasAttribute(l.attribute) {
		return
	}
	current := l.tokens()
	kept := current[:0]
	for _, t := range current {
		if !containsToken(tokens, t) {
			kept = append(kept, t)
		}
	}
	l.write(kept)
}

// Toggle flips token and reports whether it is now present.
func (l *DOMTokenList) Toggle(token string) bool {
	if l.Contains(token) {
		l.Remove(token)
		return false
	}
	l.Add(token)
	return true
}

func (l *DOMTokenList) String() string {
	return strings.Join(l.tokens(), " ")
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
