package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type addGoalCmd struct {
	name    string
	target  string
	account string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `wealth add-goal -n <name> -a <target> -t <account>

  Creates a savings goal funded from the given account. Contributions
  earmark money on that account without moving it.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the goal.")
	f.StringVar(&c.target, "a", "", "Target amount to save.")
	f.StringVar(&c.account, "t", "", "Account the goal is funded from.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.account == "" {
		return fail(fmt.Errorf("missing -n goal name or -t account name"))
	}
	target, err := wealth.ParseAmount(c.target)
	if err != nil {
		return fail(err)
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	g, err := b.Goals.Create(c.name, target, c.account, b.Accounts)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Created goal %q: save %s from %q\n", g.Name, g.Target, g.AllocatedFrom)
	return subcommands.ExitSuccess
}
