package demo

import (
	"slices"
	"strings"

	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/tags"
)

type Todo struct {
	ID   int
	Text string
	Done bool
}

func nextID(todos []Todo) int {
	id := 0
	for _, t := range todos {
		id = max(id, t.ID)
	}
	return id + 1
}

func TodoList(c *blaze.Ctx, _ blaze.Props) blaze.Node {
	todos, setTodos := blaze.UseState(c, []Todo(nil))
	draft, setDraft := blaze.UseState(c, "")

	add := func() {
		text := strings.TrimSpace(draft)
		if text == "" {
			return
		}

		setTodos.Update(func(prev []Todo) []Todo {
			return append(slices.Clone(prev), Todo{ID: nextID(prev), Text: text})
		})
		setDraft.Set("")
	}

	toggle := func(id int, done bool) {
		setTodos.Update(func(prev []Todo) []Todo {
			next := slices.Clone(prev)
			for i := range next {
				if next[i].ID == id {
					next[i].Done = done
				}
			}
			return next
		})
	}

	remove := func(id int) {
		setTodos.Update(func(prev []Todo) []Todo {
			return slices.DeleteFunc(slices.Clone(prev), func(t Todo) bool { return t.ID == id })
		})
	}

	items := make([]blaze.Node, len(todos))
	for i, t := range todos {
		items[i] = blaze.C(TodoItem, TodoItemProps{Todo: t, Toggle: toggle, Remove: remove})
	}

	remaining := 0
	for _, t := range todos {
		if !t.Done {
			remaining++
		}
	}

	return tags.Div(blaze.Props{"style": blaze.Style{"padding": "1"}},
		tags.H1("Todo List"),
		tags.Div(blaze.Props{"style": blaze.Style{"display": "flex", "gap": "1"}},
			tags.Input(blaze.Props{
				"type":        "text",
				"placeholder": "Add todo",
				"value":       draft,
				"onInput":     func(ev blaze.Event) { setDraft.Set(ev.Value) },
				"onChange":    add,
			}),
			tags.Button(blaze.Props{"onClick": add}, "Add Todo"),
		),
		tags.Ul(nil, items...),
		tags.P(blaze.Props{"style": blaze.Style{"color": "8"}}, remaining, " left"),
	)
}

type TodoItemProps struct {
	Todo   Todo
	Toggle func(id int, done bool)
	Remove func(id int)
}

func TodoItem(c *blaze.Ctx, p TodoItemProps) blaze.Node {
	text := blaze.Style{}
	if p.Todo.Done {
		text["text-decoration"] = "line-through"
	}

	return tags.Li(nil,
		tags.Span(blaze.Props{"style": blaze.Style{"display": "flex", "gap": "1"}},
			tags.Input(blaze.Props{
				"type":     "checkbox",
				"checked":  p.Todo.Done,
				"onChange": func(ev blaze.Event) { p.Toggle(p.Todo.ID, ev.Checked) },
			}),
			tags.Span(blaze.Props{"style": text}, p.Todo.Text),
			tags.Button(blaze.Props{"onClick": func() { p.Remove(p.Todo.ID) }}, "x"),
		),
	)
}
