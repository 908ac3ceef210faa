package internal

import (
	"reflect"
	"strconv"
)

// Node is a description node. Its kind is derived from its dynamic shape only.
type Node = any

type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindText
	KindElement
	KindComponent
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindElement:
		return "element"
	case KindComponent:
		return "component"
	case KindFragment:
		return "fragment"
	default:
		return "invalid"
	}
}

// Fragment is an ordered sequence of nodes without a surface node of its own.
type Fragment []Node

// Element describes a surface node of kind Tag.
type Element struct {
	Tag      string
	Props    Props
	Children []Node
}

// hostChildren returns the nodes whose surface runs populate this element's surface node.
func (e *Element) hostChildren() []Node { return e.Children }

func KindOf(n Node) Kind {
	switch v := n.(type) {
	case nil:
		return KindNull
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindText
	case *Element:
		if v == nil {
			return KindNull
		}
		return KindElement
	case *Instance:
		if v == nil {
			return KindNull
		}
		return KindComponent
	case Fragment, []Node:
		return KindFragment
	default:
		return KindInvalid
	}
}

func IsNull(n Node) bool              { return KindOf(n) == KindNull }
func IsText(n Node) bool              { return KindOf(n) == KindText }
func IsElement(n Node) bool           { return KindOf(n) == KindElement }
func IsComponentInstance(n Node) bool { return KindOf(n) == KindComponent }
func IsFragment(n Node) bool          { return KindOf(n) == KindFragment }

// TextOf stringifies a text node.
func TextOf(n Node) string {
	switch v := n.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	return ""
}

func members(n Node) []Node {
	switch v := n.(type) {
	case Fragment:
		return v
	case []Node:
		return v
	}
	return nil
}

// Flatten returns the non-fragment nodes of a sequence, depth first, left to right.
func Flatten(nodes []Node) []Node {
	flat := make([]Node, 0, len(nodes))
	return appendFlat(flat, nodes)
}

func appendFlat(dst []Node, nodes []Node) []Node {
	for _, n := range nodes {
		if KindOf(n) == KindFragment {
			dst = appendFlat(dst, members(n))
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// RunLength is the number of consecutive surface nodes a mounted node occupies.
func RunLength(n Node) int {
	switch KindOf(n) {
	case KindText, KindElement:
		return 1
	case KindFragment:
		length := 0
		for _, child := range members(n) {
			length += RunLength(child)
		}
		return length
	case KindComponent:
		s := n.(*Instance).state
		if s == nil {
			return 0
		}
		return RunLength(s.snapshot)
	default:
		return 0
	}
}
