package internal

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/AnatoleLucet/blaze/surface"
)

// PropMap is the raw property mapping accepted by the node constructors.
type PropMap = map[string]any

type renderFunc func(*Ctx, any) Node

// Instance is a component instance description: a component function, the props
// it is rendered with at this position, and the runtime state attached once mounted.
type Instance struct {
	Name     string
	Props    any
	Children []Node

	id     uintptr
	render renderFunc

	state *instanceState
}

// NewInstance builds a component instance. fn is only used for its identity and
// name, render is what gets called.
func NewInstance(fn any, render func(*Ctx, any) Node, props any, children []Node) *Instance {
	id := reflect.ValueOf(fn).Pointer()

	return &Instance{
		Name:     funcName(id),
		Props:    withChildren(props, children),
		Children: children,

		id:     id,
		render: render,
	}
}

// SameComponent reports whether two instances were built from the same component function.
func (i *Instance) SameComponent(other *Instance) bool {
	return i.id == other.id
}

// Snapshot returns the node last rendered by this instance, nil if not mounted.
func (i *Instance) Snapshot() Node {
	if i.state == nil {
		return nil
	}
	return i.state.snapshot
}

func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "component"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// withChildren merges children into props: the "children" key of a map, or the
// Children []Node field of a struct or a struct pointer. Other props are left
// as is, the children then only reach the component through Ctx.Children.
func withChildren(props any, children []Node) any {
	if len(children) == 0 {
		return props
	}

	switch p := props.(type) {
	case nil:
		return PropMap{"children": children}
	case PropMap:
		merged := make(PropMap, len(p)+1)
		for k, v := range p {
			merged[k] = v
		}
		merged["children"] = children
		return merged
	}

	rv := reflect.ValueOf(props)
	ptr := rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	if ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return props
	}

	// the caller's struct is copied, never written to
	v := reflect.New(rv.Type()).Elem()
	v.Set(rv)
	f := v.FieldByName("Children")
	if !f.IsValid() || !f.CanSet() || f.Type() != reflect.TypeOf(children) {
		return props
	}
	f.Set(reflect.ValueOf(children))

	if ptr {
		return v.Addr().Interface()
	}
	return v.Interface()
}

// host is the description whose flattened children populate a surface container.
type host interface {
	hostChildren() []Node
}

// root tracks a tree mounted directly into a container.
type root struct {
	container surface.Handle
	node      Node

	// children of the container that existed before mounting
	base int
}

func (r *root) hostChildren() []Node { return []Node{r.node} }

// instanceState is the bookkeeping of a mounted component instance. It outlives
// the description it was created for: on every same-component update it moves to
// the new description, so dispatches from older renders still reach it.
type instanceState struct {
	rt   *Runtime
	node *Instance

	snapshot Node
	hooks    []*hook

	container surface.Handle
	host      host

	// number of component ancestors, used to re-render parents first
	depth int

	mounted bool
	dirty   bool
	inHeap  bool

	renders int
}

func (r *Runtime) attach(inst *Instance, container surface.Handle, h host, depth int) *instanceState {
	if inst.state != nil && inst.state.mounted {
		r.log.Warn("blaze: component instance mounted at two positions", "component", inst.Name)
	}

	s := &instanceState{
		rt:        r,
		node:      inst,
		container: container,
		host:      h,
		depth:     depth,
		mounted:   true,
	}
	inst.state = s

	return s
}

// offset returns the index of the instance's first surface node in its container.
func (s *instanceState) offset() (int, bool) {
	if s.host == nil {
		return 0, false
	}

	base := 0
	if r, ok := s.host.(*root); ok {
		base = r.base
	}

	i, ok := offsetOf(s.host.hostChildren(), s)
	return base + i, ok
}

func offsetOf(nodes []Node, target *instanceState) (int, bool) {
	offset := 0

	for _, n := range Flatten(nodes) {
		if inst, ok := n.(*Instance); ok && inst != nil && inst.state != nil {
			if inst.state == target {
				return offset, true
			}

			// the snapshot shares the container unless it is an element
			if i, ok := offsetOf([]Node{inst.state.snapshot}, target); ok {
				return offset + i, true
			}
		}

		offset += RunLength(n)
	}

	return 0, false
}

// dispose runs the effect cleanups in hook order and drops the hooks.
func (s *instanceState) dispose() {
	s.mounted = false
	s.dirty = false

	for _, h := range s.hooks {
		if h.kind == hookEffect && h.cleanup != nil {
			cleanup := h.cleanup
			h.cleanup = nil
			cleanup()
		}
	}
	s.hooks = nil
}
