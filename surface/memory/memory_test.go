package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/blaze/surface"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) HandleEvent(ev surface.Event) {
	*r.log = append(*r.log, r.name+" "+ev.Type+" "+ev.Value)
}

func TestSurface(t *testing.T) {
	t.Run("records operations", func(t *testing.T) {
		s := New()
		root := s.NewContainer("root")
		assert.Empty(t, s.Ops())

		p := s.CreateNode("p")
		text := s.CreateTextNode("hi")
		s.AppendChild(p, text)
		s.AppendChild(root, p)
		s.SetProperty(p, "id", 3)
		s.SetText(text, "ho")

		assert.Equal(t, []Op{
			{Kind: OpCreate, Target: 2, Name: "p"},
			{Kind: OpCreateText, Target: 3, Value: "hi"},
			{Kind: OpAppend, Target: 2, Child: 3},
			{Kind: OpAppend, Target: 1, Child: 2},
			{Kind: OpSetProperty, Target: 2, Name: "id", Value: "3"},
			{Kind: OpSetText, Target: 3, Value: "ho"},
		}, s.Ops())
		assert.Equal(t, 2, s.Count(OpAppend))
		assert.Equal(t, `<p id="3">ho</p>`, InnerHTML(root))

		s.Reset()
		assert.Empty(t, s.Ops())
	})

	t.Run("positional child operations", func(t *testing.T) {
		s := New()
		root := s.NewContainer("root")

		a, b, c, d := s.CreateTextNode("a"), s.CreateTextNode("b"), s.CreateTextNode("c"), s.CreateTextNode("d")
		s.AppendChild(root, a)
		s.AppendChild(root, c)
		s.InsertBefore(root, b, 1)
		assert.Equal(t, "abc", root.TextContent())

		s.ReplaceChildAt(root, 2, d)
		assert.Equal(t, "abd", root.TextContent())
		assert.Nil(t, c.(*Node).Parent)

		s.RemoveChildAt(root, 0)
		assert.Equal(t, "bd", root.TextContent())
		assert.Equal(t, 2, s.ChildCount(root))
		assert.Same(t, d.(*Node), s.ChildAt(root, 1))
	})

	t.Run("moving a node detaches it", func(t *testing.T) {
		s := New()
		left, right := s.NewContainer("left"), s.NewContainer("right")

		x := s.CreateTextNode("x")
		s.AppendChild(left, x)
		s.AppendChild(right, x)

		assert.Empty(t, left.Children)
		assert.Same(t, right, x.(*Node).Parent)
	})

	t.Run("out of range indices panic", func(t *testing.T) {
		s := New()
		root := s.NewContainer("root")

		assert.Panics(t, func() { s.RemoveChildAt(root, 0) })
		assert.Panics(t, func() { s.ChildAt(root, -1) })
		assert.Panics(t, func() { s.InsertBefore(root, s.CreateTextNode("x"), 1) })
		assert.Panics(t, func() { s.SetText("not a node", "x") })
	})

	t.Run("styles and form values", func(t *testing.T) {
		s := New()
		input := s.CreateNode("input").(*Node)

		s.SetProperty(input, "value", "attr")
		assert.Equal(t, "attr", input.Value("value"))

		s.SetFormValue(input, "value", "live")
		assert.Equal(t, "live", input.Value("value"))

		s.RemoveProperty(input, "value")
		assert.Nil(t, input.Value("value"))

		s.SetStyleProperty(input, "color", "red")
		s.SetStyleProperty(input, "width", "3")
		s.SetStyleProperty(input, "color", "")
		assert.Equal(t, map[string]string{"width": "3"}, input.Style)
	})

	t.Run("events", func(t *testing.T) {
		s := New()
		button := s.CreateNode("button").(*Node)

		log := []string{}
		first, second := recorder{"first", &log}, recorder{"second", &log}

		s.AddEventSubscription(button, "click", first)
		s.AddEventSubscription(button, "click", second)
		s.Fire(button, "click", surface.Event{Value: "v"})

		s.RemoveEventSubscription(button, "click", first)
		s.Fire(button, "click", surface.Event{})

		s.RemoveEventSubscription(button, "click", second)
		s.Fire(button, "click", surface.Event{})

		assert.Equal(t, []string{"first click v", "second click v", "second click "}, log)
		assert.Empty(t, button.Listeners)
	})
}

func TestFind(t *testing.T) {
	s := New()
	root := s.NewContainer("root")

	for _, label := range []string{"one", "two"} {
		li := s.CreateNode("li")
		s.SetProperty(li, "data-label", label)
		s.AppendChild(li, s.CreateTextNode(label))
		s.AppendChild(root, li)
	}

	assert.Len(t, root.FindAll(ByTag("li")), 2)
	assert.Equal(t, "two", root.Find(ByAttr("data-label", "two")).TextContent())
	assert.Equal(t, "one", root.Find(ByText("one")).Props["data-label"])
	assert.Nil(t, root.Find(ByTag("table")))
}

func TestDump(t *testing.T) {
	s := New()
	root := s.NewContainer("main")

	button := s.CreateNode("button")
	s.SetProperty(button, "class", "primary")
	s.SetStyleProperty(button, "color", "red")
	s.SetFormValue(button, "value", 1)
	s.AddEventSubscription(button, "click", recorder{})
	s.AppendChild(button, s.CreateTextNode("go"))
	s.AppendChild(root, button)
	s.AppendChild(root, s.CreateTextNode(""))

	t.Run("yaml", func(t *testing.T) {
		data, err := Dump(root)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(data, &got))

		assert.Equal(t, map[string]any{
			"tag": "main",
			"children": []any{
				map[string]any{
					"tag":      "button",
					"attrs":    map[string]any{"class": "primary"},
					"form":     map[string]any{"value": "1"},
					"style":    map[string]any{"color": "red"},
					"events":   []any{"click"},
					"children": []any{map[string]any{"text": "go"}},
				},
				map[string]any{"text": ""},
			},
		}, got)
	})

	t.Run("html", func(t *testing.T) {
		assert.Equal(t, `<main><button class="primary" style="color: red" value="1">go</button></main>`, HTML(root))
		assert.Equal(t, HTML(root), root.String())
	})
}
