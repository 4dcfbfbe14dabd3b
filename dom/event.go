package dom

import "time"

type EventPhase uint

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case CapturingPhase:
		return "capturing"
	case AtTargetPhase:
		return "at-target"
	case BubblingPhase:
		return "bubbling"
	default:
		return "none"
	}
}

// EventInit carries the optional flags of the Event constructor.
type EventInit struct {
	Bubbles, Cancelable bool
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type             string
	Target           *Node
	CurrentTarget    *Node
	EventPhase       EventPhase
	Bubbles          bool
	Cancelable       bool
	DefaultPrevented bool
	IsTrusted        bool
	TimeStamp        time.Time

	stopPropagation, stopImmediatePropagation bool
}

func NewEvent(eventType string, init EventInit) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    init.Bubbles,
		Cancelable: init.Cancelable,
		TimeStamp:  time.Now(),
	}
}

// ComposedPath returns the propagation path, target first.
func (e *Event) ComposedPath() NodeList {
	var path NodeList
	for n := e.Target; n != nil; n = n.ParentNode {
		path = append(path, n)
	}
	return path
}

func (e *Event) StopPropagation() {
	e.stopPropagation = true
}

func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediatePropagation = true
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.DefaultPrevented = true
	}
}

// https://html.spec.whatwg.org/#eventhandler
type EventHandler func(e *Event)

// HandleEvent lets a plain function act as an EventListener.
func (h EventHandler) HandleEvent(e *Event) {
	h(e)
}

// EventListener is the callback interface objects implement to receive
// dispatched events.
// https://dom.spec.whatwg.org/#callbackdef-eventlistener
type EventListener interface {
	HandleEvent(e *Event)
}
