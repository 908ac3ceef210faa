// Package blaze renders declarative node trees onto a surface and keeps the
// surface in sync as component state changes.
package blaze

import (
	"log/slog"
	"slices"

	"github.com/AnatoleLucet/blaze/internal"
	"github.com/AnatoleLucet/blaze/surface"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type (
	// Node is any description node: text (strings, numbers, booleans), nil, an
	// *Element, an *Instance or a Fragment.
	Node = internal.Node

	// Props is the raw property mapping of an element or a component.
	Props = internal.PropMap

	Style    = internal.Style
	Element  = internal.Element
	Fragment = internal.Fragment
	Instance = internal.Instance
	Listener = internal.Listener
	Kind     = internal.Kind

	// Ctx is the render context passed to components, hooks need it.
	Ctx = internal.Ctx

	Event = surface.Event

	NodeKindError = internal.NodeKindError
	HookError     = internal.HookError
)

const (
	KindInvalid   = internal.KindInvalid
	KindNull      = internal.KindNull
	KindText      = internal.KindText
	KindElement   = internal.KindElement
	KindComponent = internal.KindComponent
	KindFragment  = internal.KindFragment
)

var (
	ErrInvalidNodeKind      = internal.ErrInvalidNodeKind
	ErrHookOutsideComponent = internal.ErrHookOutsideComponent
	ErrHookOrder            = internal.ErrHookOrder
	ErrUpdateLoop           = internal.ErrUpdateLoop
	ErrAlreadyMounted       = internal.ErrAlreadyMounted
)

// El creates an element description.
//
// Recognized props: "style" (a Style or a map), "className"/"class", "value" and
// "checked" (live form state), keys starting with "on" bound to a func(Event),
// a func() or a *Listener (the lower-cased rest of the key is the event name),
// and "children". Any other key is a plain attribute. Children passed as
// arguments take precedence over the "children" prop.
func El(tag string, props Props, children ...Node) *Element {
	classified, explicit, ok := internal.ClassifyProps(props)
	if len(children) == 0 && ok {
		children = explicit
	}

	return &Element{
		Tag:      tag,
		Props:    classified,
		Children: slices.Clone(children),
	}
}

// C creates a component instance description. Children are merged into the
// props: the "children" key of a Props map, or the Children []Node field of a
// props struct or struct pointer (a copy is made, props is never modified).
// With any other props type the children are only available from Ctx.Children.
func C[P any](component func(*Ctx, P) Node, props P, children ...Node) *Instance {
	render := func(c *internal.Ctx, p any) Node {
		return component(c, as[P](p))
	}

	return internal.NewInstance(component, render, props, slices.Clone(children))
}

// Frag groups nodes without a wrapping surface node.
func Frag(children ...Node) Fragment {
	return Fragment(children)
}

// On wraps an event handler in a Listener. Reusing the same Listener across
// renders keeps the surface subscription untouched.
func On(fn func(Event)) *Listener {
	return internal.NewListener(fn)
}

func KindOf(n Node) Kind              { return internal.KindOf(n) }
func IsText(n Node) bool              { return internal.IsText(n) }
func IsNull(n Node) bool              { return internal.IsNull(n) }
func IsElement(n Node) bool           { return internal.IsElement(n) }
func IsComponentInstance(n Node) bool { return internal.IsComponentInstance(n) }
func IsFragment(n Node) bool          { return internal.IsFragment(n) }

// Option configures a Runtime.
type Option = internal.Option

// WithLogger sets the logger used for debug traces and unhandled errors.
func WithLogger(l *slog.Logger) Option {
	return func(o *internal.Options) { o.Logger = l }
}

// WithScheduler sets how flushes are deferred when a state update is dispatched
// outside of a turn, e.g. with the browser's queueMicrotask.
func WithScheduler(schedule func(task func())) Option {
	return func(o *internal.Options) { o.Schedule = schedule }
}

// WithErrorHandler receives errors from event handlers and scheduled flushes.
func WithErrorHandler(fn func(error)) Option {
	return func(o *internal.Options) { o.OnError = fn }
}

// WithMaxPasses bounds the number of update passes a single flush may run before
// failing with ErrUpdateLoop.
func WithMaxPasses(n int) Option {
	return func(o *internal.Options) { o.MaxPasses = n }
}

// WithCleanupBeforeRerun makes effects run their previous cleanup before running
// again. By default cleanups only run when the component unmounts.
func WithCleanupBeforeRerun() Option {
	return func(o *internal.Options) { o.CleanupBeforeRerun = true }
}

type Runtime struct {
	rt *internal.Runtime
}

// NewRuntime creates a runtime driving the given surface.
func NewRuntime(s surface.Surface, opts ...Option) *Runtime {
	return &Runtime{internal.NewRuntime(s, opts...)}
}

// Render mounts node into container the first time, and reconciles the mounted
// tree against node on subsequent calls.
func (r *Runtime) Render(node Node, container surface.Handle) error {
	return r.rt.Render(node, container)
}

// Mount is Render for a container that must not be mounted yet.
func (r *Runtime) Mount(node Node, container surface.Handle) error {
	return r.rt.Mount(node, container)
}

// Unmount tears down the tree mounted in container, running every effect cleanup.
func (r *Runtime) Unmount(container surface.Handle) error {
	return r.rt.Unmount(container)
}

// Mounted reports whether container holds a tree rendered by this runtime.
func (r *Runtime) Mounted(container surface.Handle) bool {
	return r.rt.Mounted(container)
}

// Batch runs fn as a single turn, state updates dispatched inside are flushed
// together when it returns.
func (r *Runtime) Batch(fn func()) error {
	return r.rt.Batch(fn)
}

// Flush applies pending state updates and re-renders the affected components.
func (r *Runtime) Flush() error {
	return r.rt.Flush()
}

// Pending returns the number of state updates waiting for a flush.
func (r *Runtime) Pending() int {
	return r.rt.Pending()
}

// Surface returns the surface the runtime drives.
func (r *Runtime) Surface() surface.Surface {
	return r.rt.Surface()
}
