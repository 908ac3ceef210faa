package blaze

import "github.com/AnatoleLucet/blaze/internal"

// SetState updates a state cell. Updates are queued and applied on the next flush.
type SetState[T any] struct {
	dispatch func(any)
}

// Set replaces the value.
func (s SetState[T]) Set(v T) {
	s.dispatch(internal.Updater(func(any) any { return v }))
}

// Update computes the next value from the value left by the previously queued update.
func (s SetState[T]) Update(fn func(prev T) T) {
	s.dispatch(internal.Updater(func(prev any) any { return fn(as[T](prev)) }))
}

// UseState returns the current value of a state cell and its setter.
func UseState[T any](c *Ctx, initial T) (T, SetState[T]) {
	v, dispatch := c.UseState(initial)
	return as[T](v), SetState[T]{dispatch}
}

// UseReducer returns the current state of a reducer cell and a dispatch function.
func UseReducer[S, A any](c *Ctx, reducer func(S, A) S, initial S) (S, func(A)) {
	v, dispatch := c.UseReducer(func(state, action any) any {
		return reducer(as[S](state), as[A](action))
	}, initial)

	return as[S](v), func(a A) { dispatch(a) }
}

// UseEffect runs effect during render when deps changed since the previous
// render. A nil deps runs it on every render, Deps() only on the first one.
// The returned function, if any, runs when the component unmounts.
func UseEffect(c *Ctx, effect func() func(), deps []any) {
	c.UseEffect(effect, deps)
}

// Deps builds a dependency list for UseEffect. Deps() is an empty, non-nil list.
func Deps(values ...any) []any {
	if values == nil {
		return []any{}
	}
	return values
}
