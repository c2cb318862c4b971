package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type expenseCmd struct {
	amount   string
	account  string
	note     string
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `wealth expense -a <amount> -t <account> [-n <note>] [-c <category>]

  Records an expense on an account. The account must hold enough.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount spent.")
	f.StringVar(&c.account, "t", "", "Account to debit.")
	f.StringVar(&c.note, "n", "", "Free text note.")
	f.StringVar(&c.category, "c", "", "Category label.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail(fmt.Errorf("missing -t account name"))
	}
	amount, err := wealth.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	tx := wealth.NewExpense(amount, c.account, c.note, c.category)
	if err := b.Record(tx); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Println("Recorded", tx)
	return subcommands.ExitSuccess
}
