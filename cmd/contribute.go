package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/roma12mc/wealth/renderer"
)

type contributeCmd struct {
	goal   string
	amount string
	date   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "contribute to a savings goal" }
func (*contributeCmd) Usage() string {
	return `wealth contribute -n <goal> -a <amount> [-d <date>]

  Earmarks money on the goal's funding account. Contributing on
  consecutive days grows the goal's streak; crossing a quarter of the
  target celebrates a milestone.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "n", "", "Name of the goal.")
	f.StringVar(&c.amount, "a", "", "Amount to contribute.")
	f.StringVar(&c.date, "d", "", "Contribution date (YYYY-MM-DD). Defaults to today.")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal == "" {
		return fail(fmt.Errorf("missing -n goal name"))
	}
	amount, err := wealth.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	today := wealth.Today()
	if c.date != "" {
		if today, err = wealth.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}

	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	milestones, badges, err := b.Contribute(c.goal, amount, today)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}

	g := b.Goals.Get(c.goal)
	fmt.Printf("Contributed %s to %q: %s of %s (%s), streak %d days\n",
		amount, g.Name, g.Current, g.Target, g.Percent(), g.StreakCount)
	if md := renderer.MilestonesMarkdown(c.goal, milestones, badges); md != "" {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
