package internal

import "fmt"

// renderInstance calls the component function of s with a fresh render context
// and records the returned node as the instance's snapshot.
func (r *Runtime) renderInstance(s *instanceState) (Node, error) {
	ctx := newCtx(s)

	var snapshot Node
	err := r.tracker.RunWithContext(ctx, func() {
		snapshot = s.node.render(ctx, s.node.Props)
	})
	s.dirty = false
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", s.node.Name, err)
	}

	s.snapshot = snapshot
	s.renders++

	r.log.Debug("blaze: render component", "component", s.node.Name, "depth", s.depth, "renders", s.renders)
	return snapshot, nil
}

// rerender renders a dirty instance on its own and reconciles its surface run.
func (r *Runtime) rerender(s *instanceState) error {
	index, ok := s.offset()
	if !ok {
		r.log.Warn("blaze: dropping update for detached component", "component", s.node.Name)
		s.dirty = false
		return nil
	}

	prev := s.snapshot
	next, err := r.renderInstance(s)
	if err != nil {
		return err
	}

	return r.update(prev, next, s.container, index, s.host, s.depth+1)
}

// unmount walks a subtree and disposes every mounted instance in it, descendants
// before the instance itself.
func (r *Runtime) unmount(n Node) {
	switch KindOf(n) {
	case KindElement:
		for _, child := range n.(*Element).Children {
			r.unmount(child)
		}
	case KindFragment:
		for _, child := range members(n) {
			r.unmount(child)
		}
	case KindComponent:
		s := n.(*Instance).state
		if s == nil || !s.mounted {
			return
		}

		r.unmount(s.snapshot)
		s.dispose()

		if s.inHeap {
			r.dirty.Remove(s)
		}
	}
}
