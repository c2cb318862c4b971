package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `wealth accounts

  Lists every account with its balance, allocated and free amounts.
`
}

func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountsMarkdown(b.Accounts))
	return subcommands.ExitSuccess
}
