package blaze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/blaze/surface/memory"
)

func newTestRuntime(opts ...Option) (*Runtime, *memory.Surface, *memory.Node) {
	s := memory.New()
	root := s.NewContainer("root")
	rt := NewRuntime(s, append([]Option{WithLogger(nil)}, opts...)...)
	return rt, s, root
}

func assertOps(t *testing.T, want []memory.Op, s *memory.Surface) {
	t.Helper()
	if diff := cmp.Diff(want, s.Ops()); diff != "" {
		t.Errorf("surface operations mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	t.Run("mounts text, elements and props", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		err := rt.Render(El("div", Props{
			"id":        "main",
			"className": "box",
			"style":     Style{"color": "red"},
		}, "hello ", 42, nil, true), root)

		require.NoError(t, err)
		assert.Equal(t, `<div class="box" id="main" style="color: red">hello 42true</div>`, memory.InnerHTML(root))
	})

	t.Run("applies props after children", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("div", Props{"onClick": func() {}, "id": "x"}, "t"), root))

		assertOps(t, []memory.Op{
			{Kind: memory.OpCreate, Target: 2, Name: "div"},
			{Kind: memory.OpCreateText, Target: 3, Value: "t"},
			{Kind: memory.OpAppend, Target: 2, Child: 3},
			{Kind: memory.OpSetProperty, Target: 2, Name: "id", Value: "x"},
			{Kind: memory.OpSubscribe, Target: 2, Name: "click"},
			{Kind: memory.OpAppend, Target: 1, Child: 2},
		}, s)
	})

	t.Run("rendering the same tree twice mutates nothing", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		click := On(func(Event) {})
		view := func() Node {
			return El("ul", Props{"className": "list"},
				El("li", Props{"style": Style{"color": "red"}, "onClick": click}, "a"),
				Frag("b", nil, Frag(El("p", nil, 1))),
			)
		}

		require.NoError(t, rt.Render(view(), root))
		s.Reset()

		require.NoError(t, rt.Render(view(), root))
		assert.Empty(t, s.Ops())
	})

	t.Run("fragments flatten in leaf order", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("div", nil, Frag("a", Frag("b", Frag("c")), "d"), Frag(), "e"), root))

		div := root.Children[0]
		assert.Len(t, div.Children, 5)
		assert.Equal(t, "abcde", div.TextContent())

		// only leaf positions matter, not the nesting shape
		s.Reset()
		require.NoError(t, rt.Render(El("div", nil, "a", Frag(Frag("b", "c"), "d", Frag("e"))), root))
		assert.Empty(t, s.Ops())
	})

	t.Run("appending a list item inserts exactly one node", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("ul", nil,
			El("li", nil, "Item 1"),
			El("li", nil, "Item 2"),
		), root))

		ul := root.Children[0]
		require.Len(t, ul.Children, 2)
		first, second := ul.Children[0], ul.Children[1]
		assert.Equal(t, "Item 1", first.TextContent())
		assert.Equal(t, "Item 2", second.TextContent())

		s.Reset()
		require.NoError(t, rt.Render(El("ul", nil,
			El("li", nil, "Item 1"),
			El("li", nil, "Item 2"),
			El("li", nil, "Item 3"),
		), root))

		assertOps(t, []memory.Op{
			{Kind: memory.OpCreate, Target: 7, Name: "li"},
			{Kind: memory.OpCreateText, Target: 8, Value: "Item 3"},
			{Kind: memory.OpAppend, Target: 7, Child: 8},
			{Kind: memory.OpAppend, Target: ul.ID, Child: 7, Index: 2},
		}, s)

		assert.Same(t, first, ul.Children[0])
		assert.Same(t, second, ul.Children[1])
		assert.Equal(t, "Item 3", ul.Children[2].TextContent())
	})

	t.Run("updates text in place", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("p", nil, "a"), root))
		text := root.Children[0].Children[0]

		s.Reset()
		require.NoError(t, rt.Render(El("p", nil, "b"), root))

		assertOps(t, []memory.Op{{Kind: memory.OpSetText, Target: text.ID, Value: "b"}}, s)
		assert.Same(t, text, root.Children[0].Children[0])
	})

	t.Run("null placeholders keep sibling positions", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		view := func(show bool) Node {
			var banner Node
			if show {
				banner = El("strong", nil, "new")
			}
			return El("div", nil, "a", banner, "b", El("span", nil, "c"))
		}

		require.NoError(t, rt.Render(view(false), root))
		assert.Equal(t, "<div>ab<span>c</span></div>", memory.InnerHTML(root))
		span := root.Children[0].Children[2]

		s.Reset()
		require.NoError(t, rt.Render(view(true), root))
		assert.Equal(t, "<div>a<strong>new</strong>b<span>c</span></div>", memory.InnerHTML(root))
		assert.Equal(t, 1, s.Count(memory.OpInsert))
		assert.Equal(t, 0, s.Count(memory.OpRemove, memory.OpReplace, memory.OpSetText))
		assert.Same(t, span, root.Children[0].Children[3])

		s.Reset()
		require.NoError(t, rt.Render(view(false), root))
		assert.Equal(t, "<div>ab<span>c</span></div>", memory.InnerHTML(root))
		assert.Equal(t, 1, s.Count(memory.OpRemove))
		assert.Same(t, span, root.Children[0].Children[2])
	})

	t.Run("removes trailing children", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("ul", nil, El("li", nil, 1), El("li", nil, 2), El("li", nil, 3)), root))
		s.Reset()
		require.NoError(t, rt.Render(El("ul", nil, El("li", nil, 1)), root))

		assert.Equal(t, "<ul><li>1</li></ul>", memory.InnerHTML(root))
		assert.Equal(t, 2, s.Count(memory.OpRemove))
		assert.Len(t, s.Ops(), 2)
	})

	t.Run("replaces on tag change", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("div", nil, El("p", nil, "x")), root))
		s.Reset()
		require.NoError(t, rt.Render(El("div", nil, El("span", nil, "x")), root))

		assert.Equal(t, "<div><span>x</span></div>", memory.InnerHTML(root))
		assert.Equal(t, 1, s.Count(memory.OpReplace))
	})

	t.Run("replaces on kind change", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		require.NoError(t, rt.Render(El("div", nil, "x", "y"), root))
		s.Reset()
		require.NoError(t, rt.Render(El("div", nil, El("b", nil, "x"), Frag("y", "z")), root))

		assert.Equal(t, "<div><b>x</b>yz</div>", memory.InnerHTML(root))
		assert.Equal(t, 1, s.Count(memory.OpReplace))
		// b's text child, then "z"
		assert.Equal(t, 2, s.Count(memory.OpAppend))
	})

	t.Run("diffs props", func(t *testing.T) {
		rt, s, root := newTestRuntime()

		log := []string{}
		first := On(func(ev Event) { log = append(log, "first "+ev.Value) })
		second := On(func(ev Event) { log = append(log, "second "+ev.Value) })

		require.NoError(t, rt.Render(El("input", Props{
			"id":      "a",
			"title":   "t",
			"value":   "x",
			"style":   Style{"color": "red", "width": "2"},
			"onInput": first,
		}), root))
		input := root.Children[0]

		s.Reset()
		require.NoError(t, rt.Render(El("input", Props{
			"id":      "b",
			"value":   "y",
			"style":   Style{"color": "blue"},
			"onInput": second,
		}), root))

		assertOps(t, []memory.Op{
			{Kind: memory.OpSetProperty, Target: input.ID, Name: "id", Value: "b"},
			{Kind: memory.OpSetFormValue, Target: input.ID, Name: "value", Value: "y"},
			{Kind: memory.OpSetStyle, Target: input.ID, Name: "color", Value: "blue"},
			{Kind: memory.OpSetStyle, Target: input.ID, Name: "width"},
			{Kind: memory.OpUnsubscribe, Target: input.ID, Name: "input"},
			{Kind: memory.OpSubscribe, Target: input.ID, Name: "input"},
			{Kind: memory.OpRemoveProperty, Target: input.ID, Name: "title"},
		}, s)

		assert.Equal(t, map[string]any{"id": "b"}, input.Props)
		assert.Equal(t, "y", input.Value("value"))
		assert.Equal(t, map[string]string{"color": "blue"}, input.Style)

		s.Fire(input, "input", Event{Value: "z"})
		assert.Equal(t, []string{"second z"}, log)
	})

	t.Run("removes every prop kind", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		require.NoError(t, rt.Render(El("p", Props{
			"className": "c",
			"checked":   true,
			"style":     Style{"color": "red"},
			"onClick":   func() {},
		}), root))
		require.NoError(t, rt.Render(El("p", nil), root))

		p := root.Children[0]
		assert.Empty(t, p.Props)
		assert.Empty(t, p.Form)
		assert.Empty(t, p.Style)
		assert.Empty(t, p.Listeners)
	})

	t.Run("invalid nodes are reported and skipped", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		err := rt.Render(El("div", nil, "a", struct{}{}, "b"), root)
		assert.ErrorIs(t, err, ErrInvalidNodeKind)

		var kindErr *NodeKindError
		require.ErrorAs(t, err, &kindErr)
		assert.Equal(t, struct{}{}, kindErr.Value)
		assert.Equal(t, "<div>ab</div>", memory.InnerHTML(root))

		require.NoError(t, rt.Render(El("div", nil, "a", "x", "b"), root))
		assert.Equal(t, "<div>axb</div>", memory.InnerHTML(root))

		err = rt.Render(El("div", nil, "a", map[string]int{}, "b"), root)
		assert.ErrorIs(t, err, ErrInvalidNodeKind)
		assert.Equal(t, "<div>ab</div>", memory.InnerHTML(root))
	})

	t.Run("variadic children override the children prop", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		require.NoError(t, rt.Render(Frag(
			El("p", Props{"children": "from prop"}),
			El("p", Props{"children": "from prop"}, "from args"),
		), root))

		assert.Equal(t, "<p>from prop</p><p>from args</p>", memory.InnerHTML(root))
	})
}

func TestMount(t *testing.T) {
	t.Run("fails on a mounted container", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		require.NoError(t, rt.Mount("a", root))
		assert.True(t, rt.Mounted(root))
		assert.ErrorIs(t, rt.Mount("b", root), ErrAlreadyMounted)
		assert.Equal(t, "a", root.TextContent())
	})

	t.Run("keeps existing container children", func(t *testing.T) {
		rt, s, root := newTestRuntime()
		s.AppendChild(root, s.CreateTextNode("before "))

		require.NoError(t, rt.Render(Frag("a", "b"), root))
		assert.Equal(t, "before ab", root.TextContent())

		require.NoError(t, rt.Render(Frag("b"), root))
		assert.Equal(t, "before b", root.TextContent())

		require.NoError(t, rt.Unmount(root))
		assert.Equal(t, "before ", root.TextContent())
		assert.False(t, rt.Mounted(root))
	})

	t.Run("unmount runs cleanups and removes the tree", func(t *testing.T) {
		rt, _, root := newTestRuntime()

		log := []string{}
		comp := func(c *Ctx, p Props) Node {
			UseEffect(c, func() func() {
				return func() { log = append(log, "cleanup") }
			}, Deps())
			return Frag(El("p", nil, "a"), El("p", nil, "b"))
		}

		require.NoError(t, rt.Render(C(comp, nil), root))
		assert.Len(t, root.Children, 2)

		require.NoError(t, rt.Unmount(root))
		assert.Empty(t, root.Children)
		assert.Equal(t, []string{"cleanup"}, log)

		// a second unmount is a no-op
		require.NoError(t, rt.Unmount(root))
		assert.Equal(t, []string{"cleanup"}, log)
	})

	t.Run("containers are independent", func(t *testing.T) {
		rt, s, left := newTestRuntime()
		right := s.NewContainer("root")

		counter := func(c *Ctx, _ Props) Node {
			n, set := UseState(c, 0)
			return El("button", Props{"onClick": func() { set.Update(inc) }}, n)
		}

		require.NoError(t, rt.Render(C(counter, nil), left))
		require.NoError(t, rt.Render(C(counter, nil), right))

		s.Fire(left.Children[0], "click", Event{})
		s.Fire(left.Children[0], "click", Event{})
		s.Fire(right.Children[0], "click", Event{})

		assert.Equal(t, "2", left.TextContent())
		assert.Equal(t, "1", right.TextContent())
	})
}

func TestNodeKinds(t *testing.T) {
	comp := func(c *Ctx, _ Props) Node { return nil }

	assert.Equal(t, KindText, KindOf("x"))
	assert.Equal(t, KindNull, KindOf(nil))
	assert.True(t, IsElement(El("div", nil)))
	assert.True(t, IsComponentInstance(C(comp, nil)))
	assert.True(t, IsFragment(Frag()))
	assert.True(t, IsText(3.5))
	assert.True(t, IsNull(nil))
	assert.Equal(t, KindInvalid, KindOf(struct{}{}))
}
