package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/roma12mc/wealth/renderer"
)

type badgesCmd struct{}

func (*badgesCmd) Name() string     { return "badges" }
func (*badgesCmd) Synopsis() string { return "show earned badges and current nudges" }
func (*badgesCmd) Usage() string {
	return `wealth badges

  Shows the badges earned so far and the nudges derived from recent
  activity.
`
}

func (*badgesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *badgesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	today := wealth.Today()
	b.EvaluateBadges(today)
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BadgesMarkdown(b.Badges, b.Nudges(today)))
	return subcommands.ExitSuccess
}
