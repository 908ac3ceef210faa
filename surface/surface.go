// Package surface defines the presentation tree the blaze runtime drives.
//
// A Surface is anything that can hold a tree of nodes with properties, styles and
// event subscriptions: the browser DOM, a terminal screen, or an in-memory double.
// The runtime only ever talks to it through the operations below, addressing
// children by position.
package surface

// Handle is an opaque reference to a surface node.
// Handles must be comparable, the runtime uses containers as map keys.
type Handle any

// Event is delivered to listeners when a surface node emits an event.
type Event struct {
	// Type is the lower-cased event name ("click", "input", ...).
	Type string

	// Target is the node the event was emitted on.
	Target Handle

	// Value and Checked carry live form state for input-like nodes.
	Value   string
	Checked bool

	// Data holds surface specific payloads (a js.Value, a tea.KeyMsg, ...).
	Data any
}

// Listener receives events. Implementations must be comparable so that a surface
// can find the subscription to remove by equality.
type Listener interface {
	HandleEvent(Event)
}

type Surface interface {
	CreateNode(tag string) Handle
	CreateTextNode(text string) Handle

	// SetText overwrites the content of a text node in place.
	SetText(h Handle, text string)

	SetProperty(h Handle, name string, value any)
	RemoveProperty(h Handle, name string)

	// SetStyleProperty sets a single style property, an empty value removes it.
	SetStyleProperty(h Handle, name, value string)

	AddEventSubscription(h Handle, event string, l Listener)
	RemoveEventSubscription(h Handle, event string, l Listener)

	AppendChild(parent, child Handle)
	InsertBefore(parent, child Handle, index int)
	ReplaceChildAt(parent Handle, index int, child Handle)
	RemoveChildAt(parent Handle, index int)

	ChildAt(parent Handle, index int) Handle
	ChildCount(parent Handle) int
}

// FormValueSetter is implemented by surfaces that distinguish live form state
// (an input's current value, a checkbox's checked state) from static attributes.
// Surfaces that don't implement it receive SetProperty instead.
type FormValueSetter interface {
	SetFormValue(h Handle, name string, value any)
}

// Insert places child at index, appending when index is past the last child.
func Insert(s Surface, parent, child Handle, index int) {
	if index >= s.ChildCount(parent) {
		s.AppendChild(parent, child)
		return
	}

	s.InsertBefore(parent, child, index)
}
