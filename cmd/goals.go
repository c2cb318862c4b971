package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth/renderer"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals with their progress" }
func (*goalsCmd) Usage() string {
	return `wealth goals

  Lists every goal with progress, streak and a suggested next saving.
`
}

func (*goalsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GoalsMarkdown(b.Goals))
	return subcommands.ExitSuccess
}
