package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pfm"
	"github.com/google/subcommands"
)

type shellCmd struct {
	// standard streams, os ones when nil.
	stdin          io.Reader
	stdout, stderr io.Writer
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "record and review transactions interactively" }
func (*shellCmd) Usage() string {
	return `pfm [-retry] [shell]

  Starts the interactive menu: add transactions, view them, summarize them
  and filter them by date or category. Transactions are kept in memory
  only, and are lost on exit.

  A malformed date or amount ends the session with an error, unless -retry
  is set, in which case the question is asked again.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stdin, stdout, stderr := c.stdin, c.stdout, c.stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	if err := setupLogger(stderr, *logLevel, *logFormat); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := pfm.NewLedger()
	session := NewSession(ledger, stdin, stdout, SessionOptions{Retry: *retry})
	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
