// Package memory is a headless surface: an in-memory node tree that records every
// operation applied to it. It backs the terminal surface and the tests.
package memory

import (
	"fmt"
	"slices"

	"github.com/AnatoleLucet/blaze/surface"
)

// Node is a surface node. Text nodes have an empty Tag.
type Node struct {
	ID   int
	Tag  string
	Text string

	Props     map[string]any
	Form      map[string]any
	Style     map[string]string
	Listeners map[string][]surface.Listener

	Parent   *Node
	Children []*Node
}

func (n *Node) IsText() bool { return n.Tag == "" }

// TextContent concatenates the text of every text node under n.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}

	text := ""
	for _, c := range n.Children {
		text += c.TextContent()
	}
	return text
}

// Value returns the live form value name, falling back to the attribute.
func (n *Node) Value(name string) any {
	if v, ok := n.Form[name]; ok {
		return v
	}
	return n.Props[name]
}

// Find returns the first node under n (n included) matching pred, depth first.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node under n (n included) matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var found []*Node
	n.walk(func(c *Node) {
		if pred(c) {
			found = append(found, c)
		}
	})
	return found
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// ByTag matches elements of the given tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// ByAttr matches elements whose attribute name is set to value.
func ByAttr(name string, value any) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.Props[name]
		return ok && fmt.Sprint(v) == fmt.Sprint(value)
	}
}

// ByText matches nodes whose text content is text.
func ByText(text string) func(*Node) bool {
	return func(n *Node) bool { return !n.IsText() && n.TextContent() == text }
}

type OpKind string

const (
	OpCreate         OpKind = "create"
	OpCreateText     OpKind = "createText"
	OpSetText        OpKind = "setText"
	OpSetProperty    OpKind = "setProperty"
	OpRemoveProperty OpKind = "removeProperty"
	OpSetStyle       OpKind = "setStyle"
	OpSetFormValue   OpKind = "setFormValue"
	OpSubscribe      OpKind = "subscribe"
	OpUnsubscribe    OpKind = "unsubscribe"
	OpAppend         OpKind = "append"
	OpInsert         OpKind = "insert"
	OpReplace        OpKind = "replace"
	OpRemove         OpKind = "remove"
)

// Op is a recorded surface operation. Nodes are referred to by ID.
type Op struct {
	Kind   OpKind
	Target int
	Child  int
	Index  int
	Name   string
	Value  string
}

func (op Op) String() string {
	return fmt.Sprintf("%s #%d child=#%d index=%d %s=%s", op.Kind, op.Target, op.Child, op.Index, op.Name, op.Value)
}

// Surface implements surface.Surface over Nodes.
type Surface struct {
	nextID int
	ops    []Op
}

var (
	_ surface.Surface         = (*Surface)(nil)
	_ surface.FormValueSetter = (*Surface)(nil)
)

func New() *Surface {
	return &Surface{}
}

// NewContainer creates a detached element to render into. It isn't recorded.
func (s *Surface) NewContainer(tag string) *Node {
	return s.newNode(tag)
}

func (s *Surface) newNode(tag string) *Node {
	s.nextID++
	return &Node{
		ID:        s.nextID,
		Tag:       tag,
		Props:     make(map[string]any),
		Form:      make(map[string]any),
		Style:     make(map[string]string),
		Listeners: make(map[string][]surface.Listener),
	}
}

// Ops returns the operations recorded since the last Reset.
func (s *Surface) Ops() []Op {
	return slices.Clone(s.ops)
}

// Count returns how many recorded operations are of one of the given kinds.
func (s *Surface) Count(kinds ...OpKind) int {
	count := 0
	for _, op := range s.ops {
		if slices.Contains(kinds, op.Kind) {
			count++
		}
	}
	return count
}

// Reset forgets the recorded operations.
func (s *Surface) Reset() {
	s.ops = nil
}

func (s *Surface) record(op Op) {
	s.ops = append(s.ops, op)
}

func node(h surface.Handle) *Node {
	n, ok := h.(*Node)
	if !ok || n == nil {
		panic(fmt.Sprintf("memory: %T is not a memory node", h))
	}
	return n
}

func (s *Surface) CreateNode(tag string) surface.Handle {
	n := s.newNode(tag)
	s.record(Op{Kind: OpCreate, Target: n.ID, Name: tag})
	return n
}

func (s *Surface) CreateTextNode(text string) surface.Handle {
	n := s.newNode("")
	n.Text = text
	s.record(Op{Kind: OpCreateText, Target: n.ID, Value: text})
	return n
}

func (s *Surface) SetText(h surface.Handle, text string) {
	n := node(h)
	n.Text = text
	s.record(Op{Kind: OpSetText, Target: n.ID, Value: text})
}

func (s *Surface) SetProperty(h surface.Handle, name string, value any) {
	n := node(h)
	n.Props[name] = value
	s.record(Op{Kind: OpSetProperty, Target: n.ID, Name: name, Value: fmt.Sprint(value)})
}

func (s *Surface) RemoveProperty(h surface.Handle, name string) {
	n := node(h)
	delete(n.Props, name)
	delete(n.Form, name)
	s.record(Op{Kind: OpRemoveProperty, Target: n.ID, Name: name})
}

func (s *Surface) SetStyleProperty(h surface.Handle, name, value string) {
	n := node(h)
	if value == "" {
		delete(n.Style, name)
	} else {
		n.Style[name] = value
	}
	s.record(Op{Kind: OpSetStyle, Target: n.ID, Name: name, Value: value})
}

func (s *Surface) SetFormValue(h surface.Handle, name string, value any) {
	n := node(h)
	n.Form[name] = value
	s.record(Op{Kind: OpSetFormValue, Target: n.ID, Name: name, Value: fmt.Sprint(value)})
}

func (s *Surface) AddEventSubscription(h surface.Handle, event string, l surface.Listener) {
	n := node(h)
	n.Listeners[event] = append(n.Listeners[event], l)
	s.record(Op{Kind: OpSubscribe, Target: n.ID, Name: event})
}

func (s *Surface) RemoveEventSubscription(h surface.Handle, event string, l surface.Listener) {
	n := node(h)
	if i := slices.Index(n.Listeners[event], l); i >= 0 {
		n.Listeners[event] = slices.Delete(n.Listeners[event], i, i+1)
	}
	if len(n.Listeners[event]) == 0 {
		delete(n.Listeners, event)
	}
	s.record(Op{Kind: OpUnsubscribe, Target: n.ID, Name: event})
}

func (s *Surface) AppendChild(parent, child surface.Handle) {
	p, c := node(parent), node(child)
	detach(c)

	c.Parent = p
	p.Children = append(p.Children, c)
	s.record(Op{Kind: OpAppend, Target: p.ID, Child: c.ID, Index: len(p.Children) - 1})
}

func (s *Surface) InsertBefore(parent, child surface.Handle, index int) {
	p, c := node(parent), node(child)
	detach(c)
	checkIndex(p, index, len(p.Children))

	c.Parent = p
	p.Children = slices.Insert(p.Children, index, c)
	s.record(Op{Kind: OpInsert, Target: p.ID, Child: c.ID, Index: index})
}

func (s *Surface) ReplaceChildAt(parent surface.Handle, index int, child surface.Handle) {
	p, c := node(parent), node(child)
	detach(c)
	checkIndex(p, index, len(p.Children)-1)

	p.Children[index].Parent = nil
	c.Parent = p
	p.Children[index] = c
	s.record(Op{Kind: OpReplace, Target: p.ID, Child: c.ID, Index: index})
}

func (s *Surface) RemoveChildAt(parent surface.Handle, index int) {
	p := node(parent)
	checkIndex(p, index, len(p.Children)-1)

	c := p.Children[index]
	c.Parent = nil
	p.Children = slices.Delete(p.Children, index, index+1)
	s.record(Op{Kind: OpRemove, Target: p.ID, Child: c.ID, Index: index})
}

func (s *Surface) ChildAt(parent surface.Handle, index int) surface.Handle {
	p := node(parent)
	checkIndex(p, index, len(p.Children)-1)
	return p.Children[index]
}

func (s *Surface) ChildCount(parent surface.Handle) int {
	return len(node(parent).Children)
}

// Fire delivers ev to every listener n has for event.
func (s *Surface) Fire(n *Node, event string, ev surface.Event) {
	ev.Type = event
	ev.Target = n

	for _, l := range slices.Clone(n.Listeners[event]) {
		l.HandleEvent(ev)
	}
}

func detach(c *Node) {
	p := c.Parent
	if p == nil {
		return
	}
	if i := slices.Index(p.Children, c); i >= 0 {
		p.Children = slices.Delete(p.Children, i, i+1)
	}
	c.Parent = nil
}

func checkIndex(p *Node, index, last int) {
	if index < 0 || index > last {
		panic(fmt.Sprintf("memory: index %d out of range for #%d (%d children)", index, p.ID, len(p.Children)))
	}
}
