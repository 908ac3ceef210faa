// Package tags provides one constructor per common element tag.
//
// The first argument is either the element's Props or its first child:
//
//	tags.Div(blaze.Props{"className": "row"}, tags.P("hello"))
//	tags.P("hello", " world")
//
// Input elements have no children, their first argument is always props.
package tags

import "github.com/AnatoleLucet/blaze"

// Tag returns a constructor for an arbitrary tag.
func Tag(tag string) func(first any, children ...blaze.Node) *blaze.Element {
	return func(first any, children ...blaze.Node) *blaze.Element {
		return build(tag, first, children)
	}
}

func build(tag string, first any, children []blaze.Node) *blaze.Element {
	switch p := first.(type) {
	case blaze.Props:
		return blaze.El(tag, p, children...)
	case nil:
		return blaze.El(tag, nil, children...)
	default:
		return blaze.El(tag, nil, append([]blaze.Node{first}, children...)...)
	}
}

func Div(first any, children ...blaze.Node) *blaze.Element     { return build("div", first, children) }
func Span(first any, children ...blaze.Node) *blaze.Element    { return build("span", first, children) }
func P(first any, children ...blaze.Node) *blaze.Element       { return build("p", first, children) }
func H1(first any, children ...blaze.Node) *blaze.Element      { return build("h1", first, children) }
func H2(first any, children ...blaze.Node) *blaze.Element      { return build("h2", first, children) }
func H3(first any, children ...blaze.Node) *blaze.Element      { return build("h3", first, children) }
func Ul(first any, children ...blaze.Node) *blaze.Element      { return build("ul", first, children) }
func Ol(first any, children ...blaze.Node) *blaze.Element      { return build("ol", first, children) }
func Li(first any, children ...blaze.Node) *blaze.Element      { return build("li", first, children) }
func Button(first any, children ...blaze.Node) *blaze.Element  { return build("button", first, children) }
func Label(first any, children ...blaze.Node) *blaze.Element   { return build("label", first, children) }
func Form(first any, children ...blaze.Node) *blaze.Element    { return build("form", first, children) }
func Section(first any, children ...blaze.Node) *blaze.Element { return build("section", first, children) }
func Header(first any, children ...blaze.Node) *blaze.Element  { return build("header", first, children) }
func Footer(first any, children ...blaze.Node) *blaze.Element  { return build("footer", first, children) }
func Main(first any, children ...blaze.Node) *blaze.Element    { return build("main", first, children) }
func Nav(first any, children ...blaze.Node) *blaze.Element     { return build("nav", first, children) }
func A(first any, children ...blaze.Node) *blaze.Element       { return build("a", first, children) }
func Strong(first any, children ...blaze.Node) *blaze.Element  { return build("strong", first, children) }
func Em(first any, children ...blaze.Node) *blaze.Element      { return build("em", first, children) }
func Code(first any, children ...blaze.Node) *blaze.Element    { return build("code", first, children) }
func Pre(first any, children ...blaze.Node) *blaze.Element     { return build("pre", first, children) }

// Input creates an input element.
func Input(props blaze.Props) *blaze.Element {
	return blaze.El("input", props)
}
