package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2/predict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("pfm", flag.ContinueOnError)
	top.Bool("retry", false, "")
	top.String("log-level", "warn", "")
	top.String("log-format", "text", "")
	top.String("other", "", "")

	commander := subcommands.NewCommander(top, "pfm")
	Register(commander)

	c := Completion(commander, top)

	for _, name := range []string{"shell", "help", "flags", "commands"} {
		assert.Contains(t, c.Sub, name)
	}
	require.Len(t, c.Flags, 4)
	assert.Equal(t, predict.Nothing, c.Flags["retry"])
	assert.Equal(t, predict.Set{"debug", "info", "warn", "error"}, c.Flags["log-level"])
	assert.Equal(t, predict.Set{"text", "json"}, c.Flags["log-format"])
	assert.Equal(t, predict.Something, c.Flags["other"])
}
