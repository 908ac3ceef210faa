package internal

type Tracker struct {
	// context of the component currently rendering, nil between renders
	current *Ctx
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RunWithContext calls fn with ctx live. Hook misuse panics raised by fn are
// returned as errors, any other panic propagates.
func (t *Tracker) RunWithContext(ctx *Ctx, fn func()) (err error) {
	prev := t.current
	t.current = ctx
	ctx.live = true

	defer func() {
		ctx.live = false
		t.current = prev

		if r := recover(); r != nil {
			if he, ok := r.(*HookError); ok {
				err = he
				return
			}
			panic(r)
		}
	}()

	fn()
	return nil
}

func (t *Tracker) Current() *Ctx {
	return t.current
}

func (t *Tracker) IsRendering() bool {
	return t.current != nil
}
