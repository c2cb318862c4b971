package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteAccountCmd struct {
	name string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `wealth delete-account -n <name>

  Deletes an account. Goals funded from it and standing orders booked on it
  must be removed first; past transactions stay in the ledger.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the account.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n account name"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.DeleteAccount(c.name); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted account %q\n", c.name)
	return subcommands.ExitSuccess
}
