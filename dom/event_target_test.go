package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type trace struct {
	entries []string
}

func (tr *trace) listener(name string) EventHandler {
	return func(e *Event) {
		tr.entries = append(tr.entries, name+"@"+e.EventPhase.String())
	}
}

func tree() (*HTMLDocument, *Node, *Node) {
	doc := NewHTMLDocument()
	outer := doc.Body().AppendChild(doc.CreateElement("div"))
	inner := outer.AppendChild(doc.CreateElement("span"))
	return doc, outer, inner
}

func TestDispatchPhases(t *testing.T) {
	doc, outer, inner := tree()
	tr := &trace{}
	doc.AddEventListener("click", tr.listener("doc-capture"), true)
	doc.AddEventListener("click", tr.listener("doc"), false)
	outer.AddEventListener("click", tr.listener("outer-capture"), true)
	outer.AddEventListener("click", tr.listener("outer"), false)
	inner.AddEventListener("click", tr.listener("inner"), false)
	inner.AddEventListener("click", tr.listener("inner-capture"), true)
	inner.AddEventListener("keydown", tr.listener("inner-key"), false)

	e := NewEvent("click", EventInit{Bubbles: true})
	assert.True(t, inner.DispatchEvent(e))
	assert.Equal(t, []string{
		"doc-capture@capturing",
		"outer-capture@capturing",
		"inner-capture@at-target",
		"inner@at-target",
		"outer@bubbling",
		"doc@bubbling",
	}, tr.entries)
	assert.Equal(t, inner, e.Target)
	assert.Nil(t, e.CurrentTarget)
	assert.Equal(t, NoneEventPhase, e.EventPhase)
}

func TestDispatchWithoutBubbles(t *testing.T) {
	doc, _, inner := tree()
	tr := &trace{}
	doc.AddEventListener("focus", tr.listener("doc"), false)
	inner.AddEventListener("focus", tr.listener("inner"), false)

	inner.DispatchEvent(NewEvent("focus", EventInit{}))
	assert.Equal(t, []string{"inner@at-target"}, tr.entries)
}

func TestStopPropagation(t *testing.T) {
	doc, outer, inner := tree()
	tr := &trace{}
	outer.AddEventListener("click", EventHandler(func(e *Event) {
		tr.entries = append(tr.entries, "outer")
		e.StopPropagation()
	}), false)
	outer.AddEventListener("click", tr.listener("outer-second"), false)
	doc.AddEventListener("click", tr.listener("doc"), false)

	inner.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	assert.Equal(t, []string{"outer", "outer-second@bubbling"}, tr.entries)

	tr.entries = nil
	outer.AddEventListener("keydown", EventHandler(func(e *Event) {
		tr.entries = append(tr.entries, "outer")
		e.StopImmediatePropagation()
	}), false)
	outer.AddEventListener("keydown", tr.listener("outer-second"), false)
	inner.DispatchEvent(NewEvent("keydown", EventInit{Bubbles: true}))
	assert.Equal(t, []string{"outer"}, tr.entries)
}

func TestPreventDefault(t *testing.T) {
	_, _, inner := tree()
	inner.AddEventListener("submit", EventHandler(func(e *Event) { e.PreventDefault() }), false)

	assert.True(t, inner.DispatchEvent(NewEvent("submit", EventInit{})))
	assert.False(t, inner.DispatchEvent(NewEvent("submit", EventInit{Cancelable: true})))
}

func TestRemoveEventListener(t *testing.T) {
	doc, _, inner := tree()
	tr := &trace{}
	reg := doc.AddEventListener("click", tr.listener("doc"), false)
	assert.Equal(t, 1, doc.ListenerCount("click"))

	assert.True(t, reg.Remove())
	assert.False(t, reg.Remove())
	assert.False(t, Registration{}.Remove())
	assert.Equal(t, 0, doc.ListenerCount("click"))

	inner.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	assert.Empty(t, tr.entries)
	assert.Equal(t, Registration{}, doc.AddEventListener("click", nil, false))
}

func TestReentrantListenerChanges(t *testing.T) {
	_, outer, inner := tree()
	tr := &trace{}
	var second Registration
	outer.AddEventListener("click", EventHandler(func(e *Event) {
		tr.entries = append(tr.entries, "first")
		second.Remove()
		outer.AddEventListener("click", tr.listener("late"), false)
	}), false)
	second = outer.AddEventListener("click", tr.listener("second"), false)

	inner.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	assert.Equal(t, []string{"first"}, tr.entries)
}

func TestPanickingListenerIsContained(t *testing.T) {
	_, outer, inner := tree()
	tr := &trace{}
	outer.AddEventListener("click", EventHandler(func(*Event) { panic("broken") }), false)
	outer.AddEventListener("click", tr.listener("after"), false)

	assert.NotPanics(t, func() {
		inner.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	})
	assert.Equal(t, []string{"after@bubbling"}, tr.entries)
}
