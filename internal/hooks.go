package internal

type hookKind int

const (
	hookState hookKind = iota
	hookEffect
)

func (k hookKind) String() string {
	switch k {
	case hookState:
		return "state"
	case hookEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// hook is a single slot of an instance's hook list.
type hook struct {
	kind  hookKind
	index int

	// state and reducer cells
	current  any
	previous any

	// effect cells
	deps    []any
	hasDeps bool
	cleanup func()
}

// Reducer computes the next state of a cell from its current state and an action.
type Reducer func(state, action any) any

// Updater is a state action computing the next value from the previous one.
type Updater func(prev any) any

func replaceReducer(state, action any) any {
	switch fn := action.(type) {
	case Updater:
		return fn(state)
	case func(any) any:
		return fn(state)
	default:
		return action
	}
}

// UseReducer returns the current value of the reducer cell at the cursor and a
// dispatch function. Dispatches are queued, the reducer runs when the runtime
// flushes, against the value left by the previous queued action.
func (c *Ctx) UseReducer(reducer Reducer, initial any) (any, func(action any)) {
	h, created := c.next(hookState)
	if created {
		h.current = initial
		h.previous = initial
	}

	s := c.state
	dispatch := func(action any) {
		s.rt.enqueue(mutation{
			state:   s,
			cell:    h,
			reducer: reducer,
			action:  action,
		})
	}

	return h.current, dispatch
}

// UseState is UseReducer with a reducer that replaces the value, or calls the
// action with the previous value when it is an Updater.
func (c *Ctx) UseState(initial any) (any, func(action any)) {
	return c.UseReducer(replaceReducer, initial)
}

// Previous returns the value the state cell at index held before its last
// transition. It is meant for inspection in tests and tools.
func (c *Ctx) Previous(index int) any {
	if c == nil || c.state == nil || index < 0 || index >= len(c.state.hooks) {
		return nil
	}
	return c.state.hooks[index].previous
}
