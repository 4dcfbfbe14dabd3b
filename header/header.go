// Package header builds the page header widget: a title on the left and a
// profile block with a dropdown menu on the right. Clicks are routed with
// the directives of package delegate.
package header

import (
	"github.com/sirupsen/logrus"

	"github.com/heathj/headerbar/delegate"
	"github.com/heathj/headerbar/dom"
)

type Option func(*Header)

// WithAttribute sets the attribute directives are read from.
func WithAttribute(name string) Option {
	return func(h *Header) {
		h.attribute = name
	}
}

// WithBoundary sets the tag the ancestry walk stops at.
func WithBoundary(tag string) Option {
	return func(h *Header) {
		h.resolver = delegate.Resolver{Boundary: tag}
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(h *Header) {
		h.log = log
	}
}

type Header struct {
	doc       *dom.HTMLDocument
	attribute string
	resolver  delegate.Resolver
	url       string
	log       *logrus.Entry

	elements   *elements
	profile    *Profile
	dispatcher *delegate.Dispatcher

	subscription *dom.Registration
}

// New creates a header whose nodes are owned by doc.
func New(doc *dom.HTMLDocument, opts ...Option) *Header {
	h := &Header{
		doc:       doc,
		attribute: delegate.DefaultAttribute,
		resolver:  delegate.Resolver{Boundary: delegate.DefaultBoundary},
		url:       "/",
		log:       logrus.WithField("component", "header"),
		elements:  newElements(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.dispatcher = delegate.NewDispatcher(h.attribute, delegate.Methods{
		"close": h.Close,
	}, delegate.WithResolver(h.resolver), delegate.WithLogger(h.log.WithField("receiver", "header")))
	h.profile = NewProfile(h)
	return h
}

func (h *Header) Document() *dom.HTMLDocument {
	return h.doc
}

// Attribute is the directive attribute name shared by the header's parts.
func (h *Header) Attribute() string {
	return h.attribute
}

func (h *Header) URL() string {
	return h.url
}

func (h *Header) SetURL(url string) *Header {
	h.url = url
	return h
}

func (h *Header) Profile() *Profile {
	return h.profile
}

// Icon returns a new i.material-icons element showing name.
func (h *Header) Icon(name string) *dom.Node {
	icon := h.doc.CreateElement("i")
	icon.SetClassName("material-icons")
	icon.SetTextContent(name)
	return icon
}

func (h *Header) Title() *dom.Node {
	return h.elements.get("title", func() *dom.Node {
		title := h.doc.CreateElement("h6")
		title.SetClassName("title")
		return title
	})
}

// SetTitle appends a link to the header URL labelled text.
func (h *Header) SetTitle(text string) *Header {
	a := h.doc.CreateElement("a")
	a.SetAttribute("href", h.url)
	a.SetClassName("title-text ellipsis")
	a.AppendChild(h.doc.CreateTextNode(text))
	h.Title().AppendChild(a)
	return h
}

func (h *Header) Row() *dom.Node {
	return h.elements.get("header", func() *dom.Node {
		left, right := h.Left(), h.Right()
		row := h.doc.CreateElement("header")
		row.SetClassName("pure-g")
		row.AppendChild(left)
		row.AppendChild(right)
		return row
	})
}

func (h *Header) Left() *dom.Node {
	return h.elements.get("left", func() *dom.Node {
		title := h.Title()
		left := h.doc.CreateElement("div")
		left.SetClassName("pure-u-6-24")
		left.AppendChild(title)
		return left
	})
}

func (h *Header) Right() *dom.Node {
	return h.elements.get("right", func() *dom.Node {
		profile := h.profile.Out()
		right := h.doc.CreateElement("div")
		right.SetClassName("pure-u-18-24")
		right.AppendChild(profile)
		return right
	})
}

func (h *Header) Out() *dom.Node {
	return h.Row()
}

// Close hides the menu when e did not start inside the profile container.
// Until the profile has been rendered there is no menu to hide.
func (h *Header) Close(e *dom.Event) {
	if e == nil {
		return
	}
	profile := h.profile
	if !profile.elements.has("container") {
		return
	}
	menu := profile.Menu()
	owner := h.resolver.ClosestElement(e.Target, h.attribute)
	if owner != dom.Walkable(profile.Container()) && menu.Status() {
		h.log.WithField("event", e.Type).Debug("dismissing menu")
		menu.Hide()
	}
}

// HandleEvent implements dom.EventListener for directives naming the
// header's methods.
func (h *Header) HandleEvent(e *dom.Event) {
	h.dispatcher.HandleEvent(e)
}

func (h *Header) Dispatcher() *delegate.Dispatcher {
	return h.dispatcher
}

// Attach subscribes the header to document-level clicks so that clicks
// outside the profile dismiss the menu. Attaching twice is a no-op.
func (h *Header) Attach() *Header {
	if h.subscription != nil {
		return h
	}
	reg := h.doc.AddEventListener("click", dom.EventHandler(h.Close), false)
	h.subscription = &reg
	h.log.WithField("subscription", reg.ID.String()).Debug("attached to document")
	return h
}

// Detach drops the document subscription. Detaching twice is a no-op.
func (h *Header) Detach() *Header {
	if h.subscription == nil {
		return h
	}
	h.subscription.Remove()
	h.log.WithField("subscription", h.subscription.ID.String()).Debug("detached from document")
	h.subscription = nil
	return h
}

func (h *Header) Attached() bool {
	return h.subscription != nil
}
