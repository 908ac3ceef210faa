package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/blaze/internal/demo"
	"github.com/AnatoleLucet/blaze/surface/memory"
	"github.com/AnatoleLucet/blaze/surface/term"
)

var dumpFormat string

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "Output format: yaml, html or text")
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(listCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [app]",
	Short: "Print the surface tree of an app after its first render",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := appName
		if len(args) == 1 {
			name = args[0]
		}
		return dump(cmd.OutOrStdout(), name, dumpFormat)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available apps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, app := range demo.Apps() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", app.Name, app.Description)
		}
		return nil
	},
}

func dump(out io.Writer, name, format string) error {
	s, err := start(name)
	if err != nil {
		return err
	}
	defer s.close()

	switch format {
	case "yaml":
		data, err := memory.Dump(s.root)
		if err != nil {
			return fmt.Errorf("dump %s: %w", name, err)
		}
		_, err = out.Write(data)
		return err
	case "html":
		_, err := fmt.Fprintln(out, memory.InnerHTML(s.root))
		return err
	case "text":
		_, err := fmt.Fprintln(out, term.Render(s.root, nil))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
