package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagValues lists the accepted values of flags that take a fixed set of values.
var flagValues = map[string]predict.Set{
	"log-level":  {"debug", "info", "warn", "error"},
	"log-format": {"text", "json"},
}

// Completion describes the command line of the commander c, with top level
// flags, for shell completion.
func Completion(c *subcommands.Commander, topFlags *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(topFlags),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		f := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(f)
		root.Sub[sub.Name()] = &complete.Command{Flags: predictFlags(f)}
	})
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = predictFlag(fl)
	})
	return flags
}

func predictFlag(f *flag.Flag) complete.Predictor {
	if values, ok := flagValues[f.Name]; ok {
		return values
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
