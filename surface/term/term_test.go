package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/surface/memory"
)

func form(c *blaze.Ctx, _ blaze.Props) blaze.Node {
	count, setCount := blaze.UseState(c, 0)
	text, setText := blaze.UseState(c, "")
	done, setDone := blaze.UseState(c, false)

	return blaze.El("div", nil,
		blaze.El("p", nil, "count: ", count),
		blaze.El("button", blaze.Props{"onClick": func() { setCount.Update(func(n int) int { return n + 1 }) }}, "+"),
		blaze.El("input", blaze.Props{"value": text, "onInput": func(ev blaze.Event) { setText.Set(ev.Value) }}),
		blaze.El("input", blaze.Props{"type": "checkbox", "checked": done, "onChange": func(ev blaze.Event) { setDone.Set(ev.Checked) }}),
		blaze.El("p", nil, "text: ", text),
	)
}

func newModel(t *testing.T) (*Model, *memory.Node) {
	s := memory.New()
	root := s.NewContainer("main")
	rt := blaze.NewRuntime(s, blaze.WithLogger(nil))
	require.NoError(t, rt.Render(blaze.C(form, nil), root))

	return New(s, root, rt), root
}

func view(m *Model) string {
	return ansi.Strip(m.View())
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestModel(t *testing.T) {
	t.Run("focuses the first focusable node", func(t *testing.T) {
		m, root := newModel(t)

		assert.Same(t, root.Find(memory.ByTag("button")), m.Focused())
		assert.Contains(t, view(m), "count: 0")
		assert.Contains(t, view(m), "[ + ]")
	})

	t.Run("enter clicks", func(t *testing.T) {
		m, _ := newModel(t)

		m.Update(key(tea.KeyEnter))
		m.Update(key(tea.KeySpace))

		assert.Contains(t, view(m), "count: 2")
		assert.NoError(t, m.Err())
	})

	t.Run("tab cycles the focus", func(t *testing.T) {
		m, root := newModel(t)
		inputs := root.FindAll(memory.ByTag("input"))
		require.Len(t, inputs, 2)

		m.Update(key(tea.KeyTab))
		assert.Same(t, inputs[0], m.Focused())

		m.Update(key(tea.KeyTab))
		assert.Same(t, inputs[1], m.Focused())

		m.Update(key(tea.KeyTab))
		assert.Same(t, root.Find(memory.ByTag("button")), m.Focused())

		m.Update(key(tea.KeyShiftTab))
		assert.Same(t, inputs[1], m.Focused())
	})

	t.Run("typing edits the focused input", func(t *testing.T) {
		m, _ := newModel(t)
		m.Update(key(tea.KeyTab))

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")})
		m.Update(key(tea.KeySpace))
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("yo")})
		assert.Contains(t, view(m), "text: hé yo")
		assert.Contains(t, view(m), "[hé yo_]")

		m.Update(key(tea.KeyBackspace))
		m.Update(key(tea.KeyBackspace))
		m.Update(key(tea.KeyBackspace))
		m.Update(key(tea.KeyBackspace))
		assert.Contains(t, view(m), "text: h")
		assert.NotContains(t, view(m), "text: hé")
	})

	t.Run("space toggles checkboxes", func(t *testing.T) {
		m, _ := newModel(t)
		m.Update(key(tea.KeyTab))
		m.Update(key(tea.KeyTab))

		assert.Contains(t, view(m), "[ ]")
		m.Update(key(tea.KeySpace))
		assert.Contains(t, view(m), "[x]")
		m.Update(key(tea.KeyEnter))
		assert.Contains(t, view(m), "[ ]")
	})

	t.Run("esc quits", func(t *testing.T) {
		m, _ := newModel(t)

		_, cmd := m.Update(key(tea.KeyEsc))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})

	t.Run("shows reported errors", func(t *testing.T) {
		m, _ := newModel(t)

		m.ReportError(blaze.ErrUpdateLoop)
		assert.Contains(t, view(m), blaze.ErrUpdateLoop.Error())
	})
}

func TestRender(t *testing.T) {
	s := memory.New()
	root := s.NewContainer("main")
	rt := blaze.NewRuntime(s, blaze.WithLogger(nil))

	require.NoError(t, rt.Render(blaze.El("div", nil,
		blaze.El("h1", nil, "Title"),
		blaze.El("ul", nil, blaze.El("li", nil, "one"), blaze.El("li", nil, "two")),
		blaze.El("div", blaze.Props{"style": blaze.Style{"display": "flex", "gap": "1"}},
			blaze.El("span", nil, "left"),
			blaze.El("span", nil, "right"),
		),
		blaze.El("input", blaze.Props{"placeholder": "type here"}),
		"inline ", blaze.El("strong", nil, "bold"),
	), root))

	got := ansi.Strip(Render(root, nil))

	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "• one")
	assert.Contains(t, got, "• two")
	assert.Contains(t, got, "left right")
	assert.Contains(t, got, "[type here]inline bold")
}
