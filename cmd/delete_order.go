package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type deleteOrderCmd struct {
	id string
}

func (*deleteOrderCmd) Name() string     { return "delete-order" }
func (*deleteOrderCmd) Synopsis() string { return "remove a standing order" }
func (*deleteOrderCmd) Usage() string {
	return `wealth delete-order -id <id>

  Removes a standing order. Transactions it already materialized stay in
  the ledger.
`
}

func (c *deleteOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Order id, or an unambiguous prefix of it.")
}

func (c *deleteOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing -id"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	var found []string
	for o := range b.Orders.All() {
		if strings.HasPrefix(o.ID, c.id) {
			found = append(found, o.ID)
		}
	}
	if len(found) > 1 {
		return fail(fmt.Errorf("id prefix %q matches %d orders", c.id, len(found)))
	}
	id := c.id
	if len(found) == 1 {
		id = found[0]
	}

	if err := b.Orders.Delete(id); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted standing order %q\n", id)
	return subcommands.ExitSuccess
}
