package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type createAccountCmd struct {
	name    string
	initial string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "create a new account" }
func (*createAccountCmd) Usage() string {
	return `wealth create-account -n <name> [-b <initial_balance>]

  Creates a new account, optionally with an initial balance.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the account.")
	f.StringVar(&c.initial, "b", "", "Initial balance. Defaults to zero.")
}

func (c *createAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n account name"))
	}
	initial := wealth.M(0)
	if c.initial != "" {
		var err error
		if initial, err = wealth.ParseAmount(c.initial); err != nil {
			return fail(err)
		}
	}

	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	a, err := b.Accounts.Create(c.name, initial)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %q with balance %s\n", a.Name, a.Balance)
	return subcommands.ExitSuccess
}
