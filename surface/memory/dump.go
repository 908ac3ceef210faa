package memory

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type dumpNode struct {
	Tag      string            `yaml:"tag,omitempty"`
	Text     *string           `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Form     map[string]string `yaml:"form,omitempty"`
	Style    map[string]string `yaml:"style,omitempty"`
	Events   []string          `yaml:"events,omitempty"`
	Children []dumpNode        `yaml:"children,omitempty"`
}

func toDump(n *Node) dumpNode {
	if n.IsText() {
		text := n.Text
		return dumpNode{Text: &text}
	}

	d := dumpNode{
		Tag:    n.Tag,
		Attrs:  stringify(n.Props),
		Form:   stringify(n.Form),
		Events: slices.Sorted(maps.Keys(n.Listeners)),
	}
	if len(n.Style) > 0 {
		d.Style = maps.Clone(n.Style)
	}
	for _, c := range n.Children {
		d.Children = append(d.Children, toDump(c))
	}
	return d
}

func stringify(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Dump serializes the tree under n as YAML.
func Dump(n *Node) ([]byte, error) {
	return yaml.Marshal(toDump(n))
}

// HTML renders the tree under n as compact markup, attributes sorted by name.
// Live form values are rendered as attributes.
func HTML(n *Node) string {
	var b strings.Builder
	writeHTML(&b, n)
	return b.String()
}

// InnerHTML renders the children of n.
func InnerHTML(n *Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		writeHTML(&b, c)
	}
	return b.String()
}

func writeHTML(b *strings.Builder, n *Node) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}

	attrs := stringify(n.Props)
	if attrs == nil {
		attrs = make(map[string]string)
	}
	for k, v := range stringify(n.Form) {
		attrs[k] = v
	}
	if len(n.Style) > 0 {
		var decls []string
		for _, k := range slices.Sorted(maps.Keys(n.Style)) {
			decls = append(decls, k+": "+n.Style[k])
		}
		attrs["style"] = strings.Join(decls, "; ")
	}

	b.WriteString("<" + n.Tag)
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Fprintf(b, " %s=%q", k, attrs[k])
	}
	b.WriteString(">")

	for _, c := range n.Children {
		writeHTML(b, c)
	}

	b.WriteString("</" + n.Tag + ">")
}

func (n *Node) String() string {
	return HTML(n)
}
