package header

import (
	"github.com/heathj/headerbar/delegate"
	"github.com/heathj/headerbar/dom"
)

const showClass = "show"

// MenuAction runs when a menu item is clicked.
type MenuAction func(m *Menu, e *dom.Event)

// Menu is the profile dropdown. It is hidden until shown and listens for
// clicks on the profile container through its dispatcher.
type Menu struct {
	profile    *Profile
	elements   *elements
	dispatcher *delegate.Dispatcher
}

func NewMenu(profile *Profile) *Menu {
	m := &Menu{
		profile:  profile,
		elements: newElements(),
	}
	h := profile.Header()
	m.dispatcher = delegate.NewDispatcher(h.Attribute(), delegate.Methods{
		"show":   func(*dom.Event) { m.Show() },
		"hide":   func(*dom.Event) { m.Hide() },
		"toggle": func(*dom.Event) { m.Toggle() },
	}, delegate.WithResolver(h.resolver), delegate.WithLogger(h.log.WithField("receiver", "menu")))
	return m
}

func (m *Menu) Profile() *Profile {
	return m.profile
}

// Container is the ul.submenu holding the items.
func (m *Menu) Container() *dom.Node {
	return m.elements.get("container", func() *dom.Node {
		ul := m.profile.Header().Document().CreateElement("ul")
		ul.SetClassName("submenu")
		return ul
	})
}

// AddItem appends li > a > (i, text) and returns the anchor. A non-nil
// action is called with the menu on every click of the anchor.
func (m *Menu) AddItem(text, icon string, action MenuAction) *dom.Node {
	doc := m.profile.Header().Document()
	li := doc.CreateElement("li")
	a := doc.CreateElement("a")

	a.AppendChild(m.profile.Header().Icon(icon))
	a.AppendChild(doc.CreateTextNode(text))

	if action != nil {
		a.AddEventListener("click", dom.EventHandler(func(e *dom.Event) {
			action(m, e)
		}), false)
	}

	li.AppendChild(a)
	m.Container().AppendChild(li)

	return a
}

func (m *Menu) Out() *dom.Node {
	return m.Container()
}

// HandleEvent implements dom.EventListener.
func (m *Menu) HandleEvent(e *dom.Event) {
	m.dispatcher.HandleEvent(e)
}

func (m *Menu) Dispatcher() *delegate.Dispatcher {
	return m.dispatcher
}

func (m *Menu) Show() *Menu {
	m.Container().ClassList().Add(showClass)
	return m
}

func (m *Menu) Hide() *Menu {
	m.Container().ClassList().Remove(showClass)
	return m
}

func (m *Menu) Toggle() *Menu {
	m.Container().ClassList().Toggle(showClass)
	return m
}

// Status reports whether the menu is shown.
func (m *Menu) Status() bool {
	return m.Container().ClassList().Contains(showClass)
}
