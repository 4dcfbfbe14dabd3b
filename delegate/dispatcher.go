package delegate

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/heathj/headerbar/dom"
)

// Method is a dispatchable receiver method.
type Method func(e *dom.Event)

// Methods maps the names usable in a directive to the receiver's methods.
// A receiver registers it once at construction; names missing from it, or
// mapped to nil, are skipped at dispatch time.
type Methods map[string]Method

// Dispatcher is the event listener a receiver hands to the DOM. It resolves
// the directive above the event target and calls the matching methods.
type Dispatcher struct {
	attribute string
	methods   Methods
	resolver  Resolver
	log       *logrus.Entry
}

type Option func(*Dispatcher)

// WithResolver overrides the boundary used for the ancestry walk.
func WithResolver(r Resolver) Option {
	return func(d *Dispatcher) {
		d.resolver = r
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher returns a dispatcher reading directives from attribute.
func NewDispatcher(attribute string, methods Methods, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		attribute: attribute,
		methods:   make(Methods, len(methods)),
		resolver:  defaultResolver,
		log:       logrus.WithField("component", "delegate"),
	}
	for name, m := range methods {
		d.methods[name] = m
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Attribute() string {
	return d.attribute
}

// Methods returns the sorted names that directives may refer to.
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.methods))
	for name, m := range d.methods {
		if m != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Bindings returns the bindings that would fire for e, in directive order.
func (d *Dispatcher) Bindings(e *dom.Event) []Binding {
	if e == nil || e.Target == nil {
		return nil
	}
	directive, ok := d.resolver.ClosestAttribute(e.Target, d.attribute)
	if !ok {
		return nil
	}
	var fire []Binding
	for _, b := range ParseDirective(directive) {
		if !b.Matches(e.Type) || d.methods[b.MethodName] == nil {
			continue
		}
		fire = append(fire, b)
	}
	return fire
}

// HandleEvent implements dom.EventListener. Nothing happens when no
// directive is found; a method that panics is logged and the remaining
// bindings still run.
func (d *Dispatcher) HandleEvent(e *dom.Event) {
	for _, b := range d.Bindings(e) {
		d.call(b, e)
	}
}

func (d *Dispatcher) call(b Binding, e *dom.Event) {
	log := d.log.WithFields(logrus.Fields{
		"event":  e.Type,
		"method": b.MethodName,
	})
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("method panicked: %v", r)
		}
	}()
	log.Debug("invoking method")
	d.methods[b.MethodName](e)
}
