package internal

import "slices"

// UseEffect runs effect synchronously during this render when the dependency list
// changed since the previous render, when there was none before, or when deps is
// nil. The returned function replaces the cell's cleanup, which runs when the
// instance unmounts (and before the next run if the runtime was built with
// cleanup-before-rerun).
func (c *Ctx) UseEffect(effect func() func(), deps []any) {
	h, created := c.next(hookEffect)

	run := created || deps == nil || !h.hasDeps || !sameDeps(h.deps, deps)
	if !run {
		return
	}

	if !created && h.cleanup != nil && c.state.rt.opts.CleanupBeforeRerun {
		cleanup := h.cleanup
		h.cleanup = nil
		cleanup()
	}

	h.deps = slices.Clone(deps)
	h.hasDeps = deps != nil

	// the previous cleanup, if it didn't run, is superseded
	h.cleanup = effect()
}

func sameDeps(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}

	for i := range next {
		if !SameValue(prev[i], next[i]) {
			return false
		}
	}

	return true
}
