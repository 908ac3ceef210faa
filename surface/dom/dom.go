//go:build js && wasm

// Package dom drives the browser document through syscall/js.
package dom

import (
	"fmt"
	"syscall/js"

	"github.com/AnatoleLucet/blaze/surface"
)

// key of the expando property linking a DOM node to its Node
const idKey = "__blazeID"

// Node is the handle of a DOM node. There is at most one Node per DOM node.
type Node struct {
	id int
	v  js.Value

	listeners map[subscription]js.Func
}

type subscription struct {
	event string
	l     surface.Listener
}

// Value returns the underlying DOM node.
func (n *Node) Value() js.Value {
	return n.v
}

type Surface struct {
	doc js.Value

	next  int
	nodes map[int]*Node
}

var (
	_ surface.Surface         = (*Surface)(nil)
	_ surface.FormValueSetter = (*Surface)(nil)
)

func New() *Surface {
	return &Surface{
		doc:   js.Global().Get("document"),
		nodes: make(map[int]*Node),
	}
}

// Container returns the first element matching selector.
func (s *Surface) Container(selector string) (*Node, error) {
	v := s.doc.Call("querySelector", selector)
	if v.IsNull() {
		return nil, fmt.Errorf("dom: no element matches %q", selector)
	}
	return s.wrap(v), nil
}

func (s *Surface) wrap(v js.Value) *Node {
	if id := v.Get(idKey); id.Type() == js.TypeNumber {
		if n, ok := s.nodes[id.Int()]; ok {
			return n
		}
	}

	s.next++
	n := &Node{id: s.next, v: v, listeners: make(map[subscription]js.Func)}
	v.Set(idKey, n.id)
	s.nodes[n.id] = n
	return n
}

// forget drops the handles and listeners of a detached subtree.
func (s *Surface) forget(v js.Value) {
	if id := v.Get(idKey); id.Type() == js.TypeNumber {
		if n, ok := s.nodes[id.Int()]; ok {
			for key, fn := range n.listeners {
				v.Call("removeEventListener", key.event, fn)
				fn.Release()
			}
			delete(s.nodes, n.id)
		}
	}

	children := v.Get("childNodes")
	for i := range children.Length() {
		s.forget(children.Index(i))
	}
}

func node(h surface.Handle) *Node {
	n, ok := h.(*Node)
	if !ok || n == nil {
		panic(fmt.Sprintf("dom: %T is not a dom node", h))
	}
	return n
}

func (s *Surface) CreateNode(tag string) surface.Handle {
	return s.wrap(s.doc.Call("createElement", tag))
}

func (s *Surface) CreateTextNode(text string) surface.Handle {
	return s.wrap(s.doc.Call("createTextNode", text))
}

func (s *Surface) SetText(h surface.Handle, text string) {
	node(h).v.Set("nodeValue", text)
}

func (s *Surface) SetProperty(h surface.Handle, name string, value any) {
	n := node(h)
	switch v := value.(type) {
	case bool:
		if v {
			n.v.Call("setAttribute", name, "")
		} else {
			n.v.Call("removeAttribute", name)
		}
	default:
		n.v.Call("setAttribute", name, fmt.Sprint(value))
	}
}

func (s *Surface) RemoveProperty(h surface.Handle, name string) {
	n := node(h)
	n.v.Call("removeAttribute", name)

	switch name {
	case "value":
		n.v.Set("value", "")
	case "checked":
		n.v.Set("checked", false)
	}
}

// SetFormValue sets the live property rather than the attribute.
func (s *Surface) SetFormValue(h surface.Handle, name string, value any) {
	n := node(h)
	switch v := value.(type) {
	case string, bool, int, int64, float64:
		n.v.Set(name, v)
	default:
		n.v.Set(name, fmt.Sprint(v))
	}
}

func (s *Surface) SetStyleProperty(h surface.Handle, name, value string) {
	style := node(h).v.Get("style")
	if value == "" {
		style.Call("removeProperty", name)
		return
	}
	style.Call("setProperty", name, value)
}

func (s *Surface) AddEventSubscription(h surface.Handle, event string, l surface.Listener) {
	n := node(h)
	key := subscription{event, l}
	if _, ok := n.listeners[key]; ok {
		return
	}

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := surface.Event{Type: event, Target: n}
		if len(args) > 0 {
			ev.Data = args[0]
			if target := args[0].Get("target"); target.Truthy() {
				if v := target.Get("value"); v.Type() == js.TypeString {
					ev.Value = v.String()
				}
				ev.Checked = target.Get("checked").Truthy()
			}
		}
		l.HandleEvent(ev)
		return nil
	})

	n.listeners[key] = fn
	n.v.Call("addEventListener", event, fn)
}

func (s *Surface) RemoveEventSubscription(h surface.Handle, event string, l surface.Listener) {
	n := node(h)
	key := subscription{event, l}

	fn, ok := n.listeners[key]
	if !ok {
		return
	}
	delete(n.listeners, key)

	n.v.Call("removeEventListener", event, fn)
	fn.Release()
}

func (s *Surface) AppendChild(parent, child surface.Handle) {
	node(parent).v.Call("appendChild", node(child).v)
}

func (s *Surface) InsertBefore(parent, child surface.Handle, index int) {
	p := node(parent).v
	p.Call("insertBefore", node(child).v, p.Get("childNodes").Index(index))
}

func (s *Surface) ReplaceChildAt(parent surface.Handle, index int, child surface.Handle) {
	p := node(parent).v
	old := p.Get("childNodes").Index(index)
	p.Call("replaceChild", node(child).v, old)
	s.forget(old)
}

func (s *Surface) RemoveChildAt(parent surface.Handle, index int) {
	p := node(parent).v
	old := p.Get("childNodes").Index(index)
	p.Call("removeChild", old)
	s.forget(old)
}

func (s *Surface) ChildAt(parent surface.Handle, index int) surface.Handle {
	return s.wrap(node(parent).v.Get("childNodes").Index(index))
}

func (s *Surface) ChildCount(parent surface.Handle) int {
	return node(parent).v.Get("childNodes").Length()
}

// Microtask queues task with the browser's queueMicrotask, for blaze.WithScheduler.
func Microtask(task func()) {
	var fn js.Func
	fn = js.FuncOf(func(js.Value, []js.Value) any {
		defer fn.Release()
		task()
		return nil
	})
	js.Global().Call("queueMicrotask", fn)
}
