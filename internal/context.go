package internal

// Ctx is the render context handed to a component function. It identifies the
// instance being rendered and the position of the next hook call. It is only
// valid during that synchronous call, on the goroutine running it.
type Ctx struct {
	state  *instanceState
	cursor int

	gid  int64
	live bool
}

func newCtx(s *instanceState) *Ctx {
	return &Ctx{state: s, gid: getGID()}
}

// Children returns the children the instance was created with.
func (c *Ctx) Children() []Node {
	if c == nil || c.state == nil {
		return nil
	}
	return c.state.node.Children
}

// Component returns the name of the component being rendered.
func (c *Ctx) Component() string {
	if c == nil || c.state == nil {
		return ""
	}
	return c.state.node.Name
}

// Runtime returns the runtime rendering the instance.
func (c *Ctx) Runtime() *Runtime {
	if c == nil || c.state == nil {
		return nil
	}
	return c.state.rt
}

func (c *Ctx) check() {
	if c == nil || c.state == nil {
		hookMisuse(ErrHookOutsideComponent, "no render context")
	}
	if !c.live {
		hookMisuse(ErrHookOutsideComponent, "render of %s already returned", c.state.node.Name)
	}
	if gid := getGID(); gid != c.gid {
		hookMisuse(ErrHookOutsideComponent, "%s is rendering on goroutine %d, hook called from %d", c.state.node.Name, c.gid, gid)
	}
}

// next returns the hook at the cursor, creating it on first render.
func (c *Ctx) next(kind hookKind) (*hook, bool) {
	c.check()

	s := c.state
	i := c.cursor
	c.cursor++

	if i < len(s.hooks) {
		h := s.hooks[i]
		if h.kind != kind {
			hookMisuse(ErrHookOrder, "%s hook %d was a %s, now a %s", s.node.Name, i, h.kind, kind)
		}
		return h, false
	}

	h := &hook{kind: kind, index: i}
	s.hooks = append(s.hooks, h)
	return h, true
}
