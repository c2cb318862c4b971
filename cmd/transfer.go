package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type transferCmd struct {
	from   string
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `wealth transfer -from <account> -to <account> -a <amount>

  Moves money between two accounts. The source must hold enough.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account.")
	f.StringVar(&c.to, "to", "", "Destination account.")
	f.StringVar(&c.amount, "a", "", "Amount to move.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		return fail(fmt.Errorf("missing -from or -to account name"))
	}
	amount, err := wealth.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Accounts.Transfer(c.from, c.to, amount); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Moved %s from %q to %q\n", amount, c.from, c.to)
	return subcommands.ExitSuccess
}
