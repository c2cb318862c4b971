package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteGoalCmd struct {
	name string
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a savings goal" }
func (*deleteGoalCmd) Usage() string {
	return `wealth delete-goal -n <goal>

  Deletes a goal, releasing its earmark back to the funding account's free
  balance.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the goal.")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n goal name"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	released, err := b.Goals.Delete(c.name, b.Accounts)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted goal %q, released %s\n", c.name, released)
	return subcommands.ExitSuccess
}
