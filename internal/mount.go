package internal

import (
	"maps"
	"slices"

	"github.com/AnatoleLucet/blaze/surface"
	"go.uber.org/multierr"
)

func (r *Runtime) mount(n Node, container surface.Handle) error {
	rt := &root{
		container: container,
		node:      n,
		base:      r.surface.ChildCount(container),
	}
	r.roots[container] = rt

	run, err := r.build(n, container, rt, 0)
	for _, h := range run {
		r.surface.AppendChild(container, h)
	}

	return err
}

// build creates the detached surface run for n. Instances found at this level are
// recorded as living in container, under h, at the given depth.
// An invalid node contributes nothing, its siblings are still built.
func (r *Runtime) build(n Node, container surface.Handle, h host, depth int) ([]surface.Handle, error) {
	switch KindOf(n) {
	case KindNull:
		return nil, nil

	case KindText:
		return []surface.Handle{r.surface.CreateTextNode(TextOf(n))}, nil

	case KindElement:
		handle, err := r.buildElement(n.(*Element), depth)
		return []surface.Handle{handle}, err

	case KindFragment:
		var (
			run  []surface.Handle
			errs error
		)
		for _, child := range Flatten(members(n)) {
			handles, err := r.build(child, container, h, depth)
			run = append(run, handles...)
			errs = multierr.Append(errs, err)
		}
		return run, errs

	case KindComponent:
		s := r.attach(n.(*Instance), container, h, depth)

		snapshot, err := r.renderInstance(s)
		if err != nil {
			return nil, err
		}
		return r.build(snapshot, container, h, depth+1)

	default:
		return nil, &NodeKindError{Value: n}
	}
}

func (r *Runtime) buildElement(el *Element, depth int) (surface.Handle, error) {
	handle := r.surface.CreateNode(el.Tag)

	var errs error
	for _, child := range Flatten(el.Children) {
		run, err := r.build(child, handle, el, depth)
		errs = multierr.Append(errs, err)

		for _, h := range run {
			r.surface.AppendChild(handle, h)
		}
	}

	// props are sorted by kind: styles and event subscriptions come last
	for _, p := range el.Props {
		r.applyProp(handle, p)
	}

	return handle, errs
}

func (r *Runtime) applyProp(h surface.Handle, p Prop) {
	switch p.Kind {
	case PropAttribute, PropClass:
		r.surface.SetProperty(h, p.Name, p.Value)
	case PropFormValue:
		r.setFormValue(h, p.Name, p.Value)
	case PropStyle:
		for _, name := range slices.Sorted(maps.Keys(p.Style)) {
			r.surface.SetStyleProperty(h, name, p.Style[name])
		}
	case PropEvent:
		r.surface.AddEventSubscription(h, p.Name, boundListener{r, p.Listener})
	}
}

func (r *Runtime) removeProp(h surface.Handle, p Prop) {
	switch p.Kind {
	case PropAttribute, PropClass, PropFormValue:
		r.surface.RemoveProperty(h, p.Name)
	case PropStyle:
		for _, name := range slices.Sorted(maps.Keys(p.Style)) {
			r.surface.SetStyleProperty(h, name, "")
		}
	case PropEvent:
		r.surface.RemoveEventSubscription(h, p.Name, boundListener{r, p.Listener})
	}
}

func (r *Runtime) setFormValue(h surface.Handle, name string, value any) {
	if fv, ok := r.surface.(surface.FormValueSetter); ok {
		fv.SetFormValue(h, name, value)
		return
	}
	r.surface.SetProperty(h, name, value)
}
