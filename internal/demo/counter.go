package demo

import (
	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/tags"
)

func Counter(c *blaze.Ctx, _ blaze.Props) blaze.Node {
	count, setCount := blaze.UseState(c, 0)

	decrement := func() { setCount.Update(func(n int) int { return n - 1 }) }
	increment := func() { setCount.Update(func(n int) int { return n + 1 }) }

	return tags.Div(nil,
		tags.H1("Counter"),
		tags.Div(blaze.Props{"style": blaze.Style{"display": "flex", "gap": "2"}},
			tags.Button(blaze.Props{"onClick": decrement}, "-"),
			tags.P(count),
			tags.Button(blaze.Props{"onClick": increment}, "+"),
		),
	)
}
