// Package term runs a blaze tree in the terminal. The tree lives on a memory
// surface, a bubbletea model draws it with lipgloss and turns key presses into
// surface events.
//
// Keys: tab and shift+tab move the focus between buttons, inputs and nodes with
// a click listener; enter and space click the focused node; typing edits the
// focused text input; esc and ctrl+c quit.
package term

import (
	"slices"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnatoleLucet/blaze/surface"
	"github.com/AnatoleLucet/blaze/surface/memory"
)

// Flusher applies pending updates, *blaze.Runtime implements it.
type Flusher interface {
	Flush() error
}

type Model struct {
	surface *memory.Surface
	root    *memory.Node
	flusher Flusher

	focused *memory.Node
	width   int
	err     error
}

var _ tea.Model = (*Model)(nil)

// New returns a model drawing root. flusher may be nil.
func New(s *memory.Surface, root *memory.Node, flusher Flusher) *Model {
	m := &Model{
		surface: s,
		root:    root,
		flusher: flusher,
	}
	m.refocus()
	return m
}

// Run starts a bubbletea program for the model and blocks until it quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.moveFocus(1)
		case tea.KeyShiftTab:
			m.moveFocus(-1)
		case tea.KeyEnter:
			m.activate(msg)
		case tea.KeySpace:
			if isTextInput(m.focused) {
				m.edit(" ", msg)
			} else {
				m.activate(msg)
			}
		case tea.KeyBackspace:
			m.backspace(msg)
		case tea.KeyRunes:
			m.edit(string(msg.Runes), msg)
		default:
			return m, nil
		}

		m.flush()
		m.refocus()
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	tree := Render(m.root, m.focused)
	if m.width > 0 {
		tree = lipgloss.NewStyle().MaxWidth(m.width).Render(tree)
	}
	b.WriteString(tree)
	b.WriteString("\n\n")
	b.WriteString(placeholderStyle.Render("tab: focus • enter: click • esc: quit"))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.err.Error())
	}
	b.WriteString("\n")
	return b.String()
}

// Focused returns the node that receives key presses, nil when nothing is focusable.
func (m *Model) Focused() *memory.Node {
	return m.focused
}

// Err returns the last error returned by a flush.
func (m *Model) Err() error {
	return m.err
}

// ReportError shows err under the tree. It fits blaze.WithErrorHandler.
func (m *Model) ReportError(err error) {
	m.err = err
}

func (m *Model) focusables() []*memory.Node {
	return m.root.FindAll(func(n *memory.Node) bool {
		if n.IsText() {
			return false
		}
		if n.Tag == "button" || n.Tag == "input" {
			return true
		}
		_, ok := n.Listeners["click"]
		return ok
	})
}

func (m *Model) moveFocus(step int) {
	nodes := m.focusables()
	if len(nodes) == 0 {
		m.focused = nil
		return
	}

	i := slices.Index(nodes, m.focused)
	if i < 0 {
		m.focused = nodes[0]
		return
	}
	m.focused = nodes[(i+step+len(nodes))%len(nodes)]
}

// refocus keeps the focus on a node that is still in the tree.
func (m *Model) refocus() {
	nodes := m.focusables()
	if slices.Contains(nodes, m.focused) {
		return
	}

	m.focused = nil
	if len(nodes) > 0 {
		m.focused = nodes[0]
	}
}

func (m *Model) activate(key tea.KeyMsg) {
	n := m.focused
	if n == nil {
		return
	}

	if n.Tag == "input" && n.Props["type"] == "checkbox" {
		checked, _ := n.Value("checked").(bool)
		m.surface.SetFormValue(n, "checked", !checked)
		m.surface.Fire(n, "change", surface.Event{Checked: !checked, Data: key})
	}
	if isTextInput(n) {
		m.surface.Fire(n, "change", surface.Event{Value: valueOf(n), Data: key})
		return
	}

	m.surface.Fire(n, "click", surface.Event{Data: key})
}

func (m *Model) edit(text string, key tea.KeyMsg) {
	if !isTextInput(m.focused) {
		return
	}
	m.setValue(valueOf(m.focused)+text, key)
}

func (m *Model) backspace(key tea.KeyMsg) {
	if !isTextInput(m.focused) {
		return
	}

	value := valueOf(m.focused)
	if value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(value)
	m.setValue(value[:len(value)-size], key)
}

func (m *Model) setValue(value string, key tea.KeyMsg) {
	n := m.focused
	m.surface.SetFormValue(n, "value", value)
	m.surface.Fire(n, "input", surface.Event{Value: value, Data: key})
}

func (m *Model) flush() {
	if m.flusher == nil {
		return
	}
	if err := m.flusher.Flush(); err != nil {
		m.err = err
	}
}

func isTextInput(n *memory.Node) bool {
	if n == nil || n.Tag != "input" {
		return false
	}
	t, _ := n.Props["type"].(string)
	return t == "" || t == "text" || t == "search" || t == "password"
}

func valueOf(n *memory.Node) string {
	return toString(n.Value("value"))
}
