package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type incomeCmd struct {
	amount   string
	account  string
	note     string
	category string
	auto     bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `wealth income -a <amount> (-t <account> | -auto) [-n <note>] [-c <category>]

  Records an income on an account, or distributes it across accounts
  following the auto-split ratios with -auto.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount received.")
	f.StringVar(&c.account, "t", "", "Target account.")
	f.StringVar(&c.note, "n", "", "Free text note.")
	f.StringVar(&c.category, "c", "", "Category label.")
	f.BoolVar(&c.auto, "auto", false, "Distribute following the auto-split ratios.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" && !c.auto {
		return fail(fmt.Errorf("missing -t account name (or use -auto)"))
	}
	amount, err := wealth.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	account := c.account
	if c.auto {
		account = wealth.AutoSplitAccount
	}

	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}
	tx := wealth.NewIncome(amount, account, c.note, c.category)
	if err := b.Record(tx); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Println("Recorded", tx)
	return subcommands.ExitSuccess
}
