// Command blaze runs the demo applications in the terminal or dumps their
// rendered tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/internal/demo"
	"github.com/AnatoleLucet/blaze/surface/memory"
)

var (
	appName  string
	dumpOnly bool
	width    int
	logPath  string
	verbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Write runtime logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log render and flush traces")

	rootCmd.Flags().StringVarP(&appName, "app", "a", "counter", "App to run ("+strings.Join(demo.Names(), ", ")+")")
	rootCmd.Flags().BoolVar(&dumpOnly, "dump", false, "Print the first render instead of running interactively")
	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "Maximum width of the interactive view")
}

var rootCmd = &cobra.Command{
	Use:           "blaze",
	Short:         "Run blaze demo apps in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpOnly {
			return dump(cmd.OutOrStdout(), appName, "text")
		}
		return run(cmd.OutOrStdout(), appName)
	},
}

// session is an app mounted on a memory surface.
type session struct {
	runtime *blaze.Runtime
	surface *memory.Surface
	root    *memory.Node

	log     *slog.Logger
	logFile io.Closer
}

// close unmounts the app and closes the log file.
func (s *session) close() {
	if err := s.runtime.Unmount(s.root); err != nil {
		s.log.Error("blaze: unmount", "error", err)
	}
	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "blaze: close log file:", err)
		}
	}
}

func start(name string, opts ...blaze.Option) (*session, error) {
	app, ok := demo.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown app %q, expected one of: %s", name, strings.Join(demo.Names(), ", "))
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return nil, err
	}

	s := memory.New()
	root := s.NewContainer("main")
	rt := blaze.NewRuntime(s, append([]blaze.Option{blaze.WithLogger(logger)}, opts...)...)

	if err := rt.Mount(app.Root(), root); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("mount %s: %w", name, err)
	}

	return &session{runtime: rt, surface: s, root: root, log: logger, logFile: logFile}, nil
}

// newLogger returns the runtime logger, and the log file to close when --log is set.
func newLogger() (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blaze:", err)
		os.Exit(1)
	}
}
