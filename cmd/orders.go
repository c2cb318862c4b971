package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth/renderer"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list standing orders" }
func (*ordersCmd) Usage() string {
	return `wealth orders

  Lists every standing order with its next execution date.
`
}

func (*ordersCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.OrdersMarkdown(b.Orders))
	return subcommands.ExitSuccess
}
