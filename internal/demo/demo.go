// Package demo holds the sample applications run by the blaze command.
package demo

import (
	"slices"

	"github.com/AnatoleLucet/blaze"
)

type App struct {
	Name        string
	Description string

	// Root returns the node to render.
	Root func() blaze.Node
}

var apps = []App{
	{
		Name:        "counter",
		Description: "a counter with increment and decrement buttons",
		Root:        func() blaze.Node { return blaze.C(Counter, nil) },
	},
	{
		Name:        "todo",
		Description: "a todo list with an input, checkboxes and removal",
		Root:        func() blaze.Node { return blaze.C(TodoList, nil) },
	},
	{
		Name:        "tictactoe",
		Description: "a two player tic-tac-toe board",
		Root:        func() blaze.Node { return blaze.C(TicTacToe, nil) },
	},
}

// Lookup returns the app registered under name.
func Lookup(name string) (App, bool) {
	i := slices.IndexFunc(apps, func(a App) bool { return a.Name == name })
	if i < 0 {
		return App{}, false
	}
	return apps[i], true
}

// Apps returns every registered app, in registration order.
func Apps() []App {
	return slices.Clone(apps)
}

// Names returns the names of the registered apps.
func Names() []string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	return names
}
