package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type editGoalCmd struct {
	name    string
	rename  string
	target  string
	account string
}

func (*editGoalCmd) Name() string     { return "edit-goal" }
func (*editGoalCmd) Synopsis() string { return "change a goal's name, target or account" }
func (*editGoalCmd) Usage() string {
	return `wealth edit-goal -n <goal> [-rename <new_name>] [-a <new_target>] [-t <new_account>]

  Updates a goal's metadata. Progress, streak and history are untouched.
  Moving the goal to another account moves its earmark with it.
`
}

func (c *editGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the goal.")
	f.StringVar(&c.rename, "rename", "", "New name for the goal.")
	f.StringVar(&c.target, "a", "", "New target amount.")
	f.StringVar(&c.account, "t", "", "New funding account.")
}

func (c *editGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n goal name"))
	}
	var target wealth.Money
	if c.target != "" {
		var err error
		if target, err = wealth.ParseAmount(c.target); err != nil {
			return fail(err)
		}
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := b.Goals.Edit(c.name, c.rename, target, c.account, b.Accounts); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated goal %q\n", c.name)
	return subcommands.ExitSuccess
}
