package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetGoalCmd struct {
	name string
}

func (*resetGoalCmd) Name() string     { return "reset-goal" }
func (*resetGoalCmd) Synopsis() string { return "restart a goal from zero" }
func (*resetGoalCmd) Usage() string {
	return `wealth reset-goal -n <goal>

  Zeroes a goal's progress and contribution history, releasing its earmark
  back to the funding account's free balance. Badges stay earned.
`
}

func (c *resetGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the goal.")
}

func (c *resetGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -n goal name"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	released, err := b.Goals.Reset(c.name, b.Accounts)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Reset goal %q, released %s\n", c.name, released)
	return subcommands.ExitSuccess
}
