package internal

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/AnatoleLucet/blaze/surface"
)

type PropKind int

// the order matters: props are applied in kind order, so styles and event
// subscriptions always come after attributes.
const (
	PropAttribute PropKind = iota
	PropClass
	PropFormValue
	PropStyle
	PropEvent
)

func (k PropKind) String() string {
	switch k {
	case PropAttribute:
		return "attribute"
	case PropClass:
		return "class"
	case PropFormValue:
		return "form value"
	case PropStyle:
		return "style"
	case PropEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Style maps style property names to values.
type Style map[string]string

// Prop is a property classified once, when its element is built.
type Prop struct {
	Kind PropKind

	// attribute name, "class", form field name, "style" or the lower-cased event name
	Name string

	Value    any
	Style    Style
	Listener *Listener
}

type propKey struct {
	kind PropKind
	name string
}

func (p Prop) key() propKey { return propKey{p.Kind, p.Name} }

// Props is a classified, sorted property list. It must not be mutated after construction.
type Props []Prop

func (p Props) lookup() map[propKey]Prop {
	m := make(map[propKey]Prop, len(p))
	for _, prop := range p {
		m[prop.key()] = prop
	}
	return m
}

// Get returns the prop of the given kind and name.
func (p Props) Get(kind PropKind, name string) (Prop, bool) {
	for _, prop := range p {
		if prop.Kind == kind && prop.Name == name {
			return prop, true
		}
	}
	return Prop{}, false
}

// ClassifyProps splits a raw property mapping into classified props and the
// explicit children list (if any).
func ClassifyProps(raw map[string]any) (Props, []Node, bool) {
	var (
		props       Props
		children    []Node
		hasChildren bool
	)

	seen := make(map[propKey]int)
	add := func(p Prop) {
		if i, ok := seen[p.key()]; ok {
			props[i] = p
			return
		}
		seen[p.key()] = len(props)
		props = append(props, p)
	}

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]
		if value == nil {
			continue
		}

		switch {
		case key == "children":
			children, hasChildren = childList(value), true
		case key == "style":
			if style, ok := toStyle(value); ok {
				add(Prop{Kind: PropStyle, Name: "style", Style: style})
			} else {
				add(Prop{Kind: PropAttribute, Name: key, Value: value})
			}
		case key == "className" || key == "class":
			add(Prop{Kind: PropClass, Name: "class", Value: value})
		case key == "value" || key == "checked":
			add(Prop{Kind: PropFormValue, Name: key, Value: value})
		case len(key) > 2 && strings.HasPrefix(key, "on"):
			if l := toListener(value); l != nil {
				add(Prop{Kind: PropEvent, Name: strings.ToLower(key[2:]), Listener: l})
			} else {
				add(Prop{Kind: PropAttribute, Name: key, Value: value})
			}
		default:
			add(Prop{Kind: PropAttribute, Name: key, Value: value})
		}
	}

	slices.SortStableFunc(props, func(a, b Prop) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(a.Name, b.Name)
	})

	return props, children, hasChildren
}

func childList(v any) []Node {
	switch c := v.(type) {
	case Fragment:
		return c
	case []Node:
		return c
	default:
		return []Node{c}
	}
}

func toStyle(v any) (Style, bool) {
	switch s := v.(type) {
	case Style:
		return maps.Clone(s), true
	case map[string]string:
		return Style(maps.Clone(s)), true
	case map[string]any:
		style := make(Style, len(s))
		for k, v := range s {
			if v == nil {
				continue
			}
			style[k] = fmt.Sprint(v)
		}
		return style, true
	}
	return nil, false
}

func toListener(v any) *Listener {
	switch fn := v.(type) {
	case *Listener:
		return fn
	case func(surface.Event):
		return NewListener(fn)
	case func():
		return NewListener(func(surface.Event) { fn() })
	}
	return nil
}
