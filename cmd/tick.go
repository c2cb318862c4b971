package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type tickCmd struct {
	date string
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "materialize due standing orders" }
func (*tickCmd) Usage() string {
	return `wealth tick [-d <date>]

  Records a transaction for every standing order occurrence due on or
  before the given date, today by default. Running it twice is safe: an
  occurrence is only materialized once.
`
}

func (c *tickCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Evaluate as of this date (YYYY-MM-DD). Defaults to today.")
}

func (c *tickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := wealth.Today()
	if c.date != "" {
		var err error
		if today, err = wealth.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}

	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	done, evalErr := b.EvaluateStandingOrders(today)
	// Orders that could run have run; persist them even when others failed.
	if err := SaveBook(b); err != nil {
		return fail(err)
	}

	for _, tx := range done {
		fmt.Println("Recorded", tx)
	}
	if len(done) == 0 {
		fmt.Println("Nothing due.")
	}
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, "Some orders could not run:", evalErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
