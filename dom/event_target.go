package dom

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Registration identifies one AddEventListener call so it can be undone.
type Registration struct {
	ID      uuid.UUID
	Type    string
	Capture bool

	target *Node
}

// Remove unregisters the listener from the node it was added to.
func (r Registration) Remove() bool {
	if r.target == nil {
		return false
	}
	return r.target.RemoveEventListener(r)
}

type listener struct {
	Registration
	callback EventListener
	removed  bool
}

// AddEventListener registers l for events of eventType reaching n.
// https://dom.spec.whatwg.org/#dom-eventtarget-addeventlistener
func (n *Node) AddEventListener(eventType string, l EventListener, capture bool) Registration {
	if l == nil {
		return Registration{}
	}
	reg := Registration{
		ID:      uuid.New(),
		Type:    eventType,
		Capture: capture,
		target:  n,
	}
	n.listeners = append(n.listeners, &listener{Registration: reg, callback: l})
	return reg
}

// RemoveEventListener drops the registration and reports whether it was
// still present.
func (n *Node) RemoveEventListener(r Registration) bool {
	for i, l := range n.listeners {
		if l.ID == r.ID {
			l.removed = true
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for eventType.
func (n *Node) ListenerCount(eventType string) int {
	count := 0
	for _, l := range n.listeners {
		if l.Type == eventType {
			count++
		}
	}
	return count
}

// DispatchEvent runs the capture, target and bubble phases for e with n as
// the target. It returns false if a listener cancelled the event.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func (n *Node) DispatchEvent(e *Event) bool {
	e.Target = n
	e.stopPropagation, e.stopImmediatePropagation = false, false
	path := e.ComposedPath()

	logrus.WithFields(logrus.Fields{
		"event":  e.Type,
		"target": n.NodeName,
		"depth":  len(path),
	}).Debug("dispatching event")

	e.EventPhase = CapturingPhase
	for i := len(path) - 1; i > 0 && !e.stopPropagation; i-- {
		path[i].invoke(e, onlyCapture)
	}

	if !e.stopPropagation {
		e.EventPhase = AtTargetPhase
		n.invoke(e, onlyCapture)
		n.invoke(e, onlyBubble)
	}

	if e.Bubbles {
		e.EventPhase = BubblingPhase
		for i := 1; i < len(path) && !e.stopPropagation; i++ {
			path[i].invoke(e, onlyBubble)
		}
	}

	e.EventPhase = NoneEventPhase
	e.CurrentTarget = nil
	return !e.DefaultPrevented
}

type listenerFilter bool

const (
	onlyCapture listenerFilter = true
	onlyBubble  listenerFilter = false
)

// invoke calls n's matching listeners. The list is copied first so that
// listeners added during dispatch wait for the next event and listeners
// removed during dispatch are skipped.
func (n *Node) invoke(e *Event, capture listenerFilter) {
	if len(n.listeners) == 0 {
		return
	}
	snapshot := make([]*listener, len(n.listeners))
	copy(snapshot, n.listeners)

	e.CurrentTarget = n
	for _, l := range snapshot {
		if l.removed || l.Type != e.Type || l.Capture != bool(capture) {
			continue
		}
		callListener(l, e)
		if e.stopImmediatePropagation {
			return
		}
	}
}

func callListener(l *listener, e *Event) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"event":    e.Type,
				"listener": l.ID.String(),
				"phase":    e.EventPhase.String(),
			}).Warnf("listener panicked: %v", r)
		}
	}()
	l.callback.HandleEvent(e)
}
