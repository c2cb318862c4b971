package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetAllocationCmd struct {
	name string
}

func (*resetAllocationCmd) Name() string     { return "reset-allocation" }
func (*resetAllocationCmd) Synopsis() string { return "clear an account's goal allocation" }
func (*resetAllocationCmd) Usage() string {
	return `wealth reset-allocation -n <account>

  Clears the amount earmarked for goals on an account, making the whole
  balance free again. Goal progress figures are untouched.
`
}

func (c *resetAllocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the account.")
}

func (c *resetAllocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n account name"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Accounts.ResetAllocation(c.name); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Cleared allocation on %q\n", c.name)
	return subcommands.ExitSuccess
}
