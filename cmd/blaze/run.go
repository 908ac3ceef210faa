package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/surface/term"
)

func init() {
	runCmd.Flags().IntVarP(&width, "width", "w", 0, "Maximum width of the view")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [app]",
	Short: "Run an app interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := appName
		if len(args) == 1 {
			name = args[0]
		}
		return run(cmd.OutOrStdout(), name)
	},
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run(out io.Writer, name string) error {
	if !interactive() {
		return dump(out, name, "text")
	}

	// the model reports errors from event turns, it exists once the app is mounted
	var model *term.Model
	report := func(err error) {
		if model != nil {
			model.ReportError(err)
		}
	}

	s, err := start(name, blaze.WithErrorHandler(report))
	if err != nil {
		return err
	}
	defer s.close()

	model = term.New(s.surface, s.root, s.runtime)
	if width > 0 {
		model.Update(tea.WindowSizeMsg{Width: width})
	}

	return term.Run(model, tea.WithOutput(out))
}
