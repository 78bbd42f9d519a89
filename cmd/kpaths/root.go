package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/internal/logging"
	"github.com/katalvlaran/kpaths/yen"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad flags, unreadable graph, ...).
	ExitCodeError = 1
	// ExitCodeNoPath indicates that the target cannot be reached from the source.
	ExitCodeNoPath = 2
)

// app carries what subcommands share: output streams and the logger built
// from --log-level.
type app struct {
	out, errOut io.Writer
	logLevel    string
	log         *slog.Logger
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "kpaths",
		Short: "List the k shortest loopless paths between two vertices",
		Long: `kpaths enumerates loopless source→target paths of a weighted graph in
non-decreasing order of total weight (Yen's algorithm). Graphs are read
from YAML or JSON documents; any numeric edge attribute can be the cost.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.New(lvl, a.errOut)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newFindCmd(a), newDemoCmd(a))

	return root
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	return runWith(args, os.Stdout, os.Stderr)
}

func runWith(args []string, out, errOut io.Writer) int {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitCodeSuccess
	}
	fmt.Fprintln(errOut, "Error:", err)

	return exitCode(err)
}

// exitCode maps an error to the documented exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, yen.ErrNoPath):
		return ExitCodeNoPath
	default:
		return ExitCodeError
	}
}
