package internal

import (
	"maps"
	"slices"

	"github.com/AnatoleLucet/blaze/surface"
	"go.uber.org/multierr"
)

// update brings the surface run of old, starting at index in parent, up to
// date with next. h and depth describe where instances found at this level live.
func (r *Runtime) update(old, next Node, parent surface.Handle, index int, h host, depth int) error {
	oldKind, nextKind := KindOf(old), KindOf(next)

	// an invalid old node never got surface nodes
	if oldKind == KindInvalid {
		oldKind, old = KindNull, nil
	}

	// an invalid new node is reported and treated as null, so the surface keeps
	// matching the new tree
	if nextKind == KindInvalid {
		return multierr.Append(&NodeKindError{Value: next}, r.replace(old, nil, parent, index, h, depth))
	}

	if oldKind != nextKind {
		return r.replace(old, next, parent, index, h, depth)
	}

	switch nextKind {
	case KindNull:
		return nil

	case KindComponent:
		o, n := old.(*Instance), next.(*Instance)
		if !o.SameComponent(n) || o.state == nil {
			return r.replace(old, next, parent, index, h, depth)
		}
		return r.updateComponent(o, n, parent, index, h, depth)

	case KindText:
		if text := TextOf(next); text != TextOf(old) {
			r.surface.SetText(r.surface.ChildAt(parent, index), text)
		}
		return nil

	case KindFragment:
		return r.updateChildren(members(old), members(next), parent, index, h, depth)

	case KindElement:
		o, n := old.(*Element), next.(*Element)
		if o.Tag != n.Tag {
			return r.replace(old, next, parent, index, h, depth)
		}
		return r.updateElement(o, n, r.surface.ChildAt(parent, index), depth)
	}

	return nil
}

// replace unmounts old, removes its run and puts the run built for next in its place.
func (r *Runtime) replace(old, next Node, parent surface.Handle, index int, h host, depth int) error {
	length := RunLength(old)
	r.unmount(old)

	run, err := r.build(next, parent, h, depth)

	if length == 1 && len(run) == 1 {
		r.surface.ReplaceChildAt(parent, index, run[0])
		return err
	}

	for range length {
		r.surface.RemoveChildAt(parent, index)
	}
	for i, handle := range run {
		surface.Insert(r.surface, parent, handle, index+i)
	}

	return err
}

// updateComponent hands the instance state over to next and re-renders it when
// its props changed. Children are not part of the comparison.
func (r *Runtime) updateComponent(old, next *Instance, parent surface.Handle, index int, h host, depth int) error {
	s := old.state

	s.container = parent
	s.host = h
	s.depth = depth

	if old == next {
		rehost([]Node{s.snapshot}, parent, h, depth+1)
		return nil
	}

	next.state = s
	s.node = next

	if !PropsChanged(old.Props, next.Props) {
		rehost([]Node{s.snapshot}, parent, h, depth+1)
		return nil
	}

	prev := s.snapshot
	snapshot, err := r.renderInstance(s)
	if err != nil {
		return err
	}

	return r.update(prev, snapshot, parent, index, h, depth+1)
}

// rehost moves the instances rendered into the same container as nodes, the
// ones reached without crossing an element, to host h.
func rehost(nodes []Node, container surface.Handle, h host, depth int) {
	for _, n := range Flatten(nodes) {
		inst, ok := n.(*Instance)
		if !ok || inst == nil || inst.state == nil {
			continue
		}

		s := inst.state
		s.container = container
		s.host = h
		s.depth = depth
		rehost([]Node{s.snapshot}, container, h, depth+1)
	}
}

// updateChildren diffs two child lists position by position after flattening
// them. The cursor tracks the surface index of the current position: it moves
// past the run each updated position occupies now.
func (r *Runtime) updateChildren(old, next []Node, parent surface.Handle, start int, h host, depth int) error {
	olds, nexts := Flatten(old), Flatten(next)

	var errs error
	cursor := start

	for i := range max(len(olds), len(nexts)) {
		var o, n Node
		if i < len(olds) {
			o = olds[i]
		}
		if i < len(nexts) {
			n = nexts[i]
		}

		errs = multierr.Append(errs, r.update(o, n, parent, cursor, h, depth))
		cursor += RunLength(n)
	}

	return errs
}

func (r *Runtime) updateElement(old, next *Element, handle surface.Handle, depth int) error {
	err := r.updateChildren(old.Children, next.Children, handle, 0, next, depth)
	r.updateProps(old.Props, next.Props, handle)
	return err
}

func (r *Runtime) updateProps(old, next Props, handle surface.Handle) {
	prev := old.lookup()

	for _, p := range next {
		o, had := prev[p.key()]
		delete(prev, p.key())

		switch p.Kind {
		case PropStyle:
			r.updateStyle(o.Style, p.Style, handle)
		case PropEvent:
			if had && o.Listener == p.Listener {
				continue
			}
			if had {
				r.surface.RemoveEventSubscription(handle, o.Name, boundListener{r, o.Listener})
			}
			r.surface.AddEventSubscription(handle, p.Name, boundListener{r, p.Listener})
		default:
			if !had || !SameValue(o.Value, p.Value) {
				r.applyProp(handle, p)
			}
		}
	}

	// whatever is left was dropped from next
	for _, p := range old {
		if _, gone := prev[p.key()]; gone {
			r.removeProp(handle, p)
		}
	}
}

func (r *Runtime) updateStyle(old, next Style, handle surface.Handle) {
	for _, name := range slices.Sorted(maps.Keys(next)) {
		if value, ok := old[name]; !ok || value != next[name] {
			r.surface.SetStyleProperty(handle, name, next[name])
		}
	}

	for _, name := range slices.Sorted(maps.Keys(old)) {
		if _, ok := next[name]; !ok {
			r.surface.SetStyleProperty(handle, name, "")
		}
	}
}
