package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/roma12mc/wealth/renderer"
)

type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the wealth dashboard" }
func (*dashboardCmd) Usage() string {
	return `wealth dashboard [-d <date>]

  Shows balances, this month's income statement, goal discipline and the
  wealth index.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report as of this date (YYYY-MM-DD). Defaults to today.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := wealth.Today()
	if c.date != "" {
		var err error
		if today, err = wealth.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DashboardMarkdown(b.Summary(today)))
	return subcommands.ExitSuccess
}
