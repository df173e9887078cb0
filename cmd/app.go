// Package cmd implements the CLI application of the personal finance manager.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var retry = flag.Bool("retry", false, "Ask again after a malformed date or amount, instead of exiting with an error.")
var logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
var logFormat = flag.String("log-format", "text", "Log format (text, json)")

// DefaultCommand is the subcommand to run when none is given on the command line.
const DefaultCommand = "shell"

// ParseArgs parses the top level flags in args. When no subcommand follows
// them, DefaultCommand is selected, and the flags already parsed are kept.
func ParseArgs(f *flag.FlagSet, args []string) error {
	if err := f.Parse(args); err != nil {
		return err
	}
	if f.NArg() == 0 {
		return f.Parse([]string{DefaultCommand})
	}
	return nil
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&shellCmd{}, "ledger")
}
