package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AnatoleLucet/blaze/surface/memory"
)

var blockTags = map[string]bool{
	"div": true, "p": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true,
	"section": true, "header": true, "footer": true, "main": true, "nav": true,
	"form": true, "pre": true, "table": true, "tr": true,
}

var (
	headingStyle     = lipgloss.NewStyle().Bold(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	focusStyle       = lipgloss.NewStyle().Reverse(true)
)

// Render draws the tree under n as terminal text. focused, if not nil, is
// highlighted.
func Render(n *memory.Node, focused *memory.Node) string {
	r := renderer{focused: focused}
	return r.node(n)
}

type renderer struct {
	focused *memory.Node
}

func (r renderer) node(n *memory.Node) string {
	if n.IsText() {
		return n.Text
	}

	var content string
	switch n.Tag {
	case "input":
		content = r.input(n)
	default:
		content = r.children(n)
	}

	switch n.Tag {
	case "button":
		content = "[ " + content + " ]"
	case "li":
		content = "• " + content
	case "h1", "h2", "h3", "strong":
		content = headingStyle.Render(content)
	case "em":
		content = lipgloss.NewStyle().Italic(true).Render(content)
	}

	if style, ok := styleOf(n.Style); ok {
		content = style.Render(content)
	}
	if n == r.focused {
		content = focusStyle.Render(content)
	}
	return content
}

func (r renderer) input(n *memory.Node) string {
	if n.Props["type"] == "checkbox" {
		if checked, _ := n.Value("checked").(bool); checked {
			return "[x]"
		}
		return "[ ]"
	}

	value := ""
	if v := n.Value("value"); v != nil {
		value = toString(v)
	}
	if value == "" {
		if placeholder, ok := n.Props["placeholder"]; ok {
			return "[" + placeholderStyle.Render(toString(placeholder)) + "]"
		}
	}
	return "[" + value + "_]"
}

// children lays out inline children on a line and block children on lines
// of their own. A flex container puts every child side by side.
func (r renderer) children(n *memory.Node) string {
	if n.Style["display"] == "flex" {
		var parts []string
		for _, c := range n.Children {
			parts = append(parts, r.node(c))
		}
		if gap := size(n.Style["gap"]); gap > 0 {
			parts = interleave(parts, strings.Repeat(" ", gap))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	var (
		lines []string
		line  strings.Builder
		open  bool
	)
	for _, c := range n.Children {
		if blockTags[c.Tag] {
			if open {
				lines = append(lines, line.String())
				line.Reset()
				open = false
			}
			lines = append(lines, r.node(c))
			continue
		}
		line.WriteString(r.node(c))
		open = true
	}
	if open {
		lines = append(lines, line.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func styleOf(css map[string]string) (lipgloss.Style, bool) {
	if len(css) == 0 {
		return lipgloss.Style{}, false
	}

	s := lipgloss.NewStyle()
	for name, value := range css {
		switch name {
		case "color":
			s = s.Foreground(lipgloss.Color(value))
		case "background", "background-color":
			s = s.Background(lipgloss.Color(value))
		case "font-weight":
			s = s.Bold(value == "bold" || value == "700")
		case "font-style":
			s = s.Italic(value == "italic")
		case "text-decoration":
			s = s.Underline(strings.Contains(value, "underline")).
				Strikethrough(strings.Contains(value, "line-through"))
		case "padding":
			s = s.Padding(size(value))
		case "border":
			if value != "none" && value != "0" {
				s = s.Border(lipgloss.RoundedBorder())
			}
		case "width":
			if w := size(value); w > 0 {
				s = s.Width(w)
			}
		}
	}
	return s, true
}

// size reads the leading integer of a css length ("2", "2px", "2ch").
func size(value string) int {
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(value[:end])
	return n
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
