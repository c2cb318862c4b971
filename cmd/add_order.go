package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type addOrderCmd struct {
	kind      string
	amount    string
	note      string
	frequency string
	first     string
	account   string
	auto      bool
}

func (*addOrderCmd) Name() string     { return "add-order" }
func (*addOrderCmd) Synopsis() string { return "register a recurring income or expense" }
func (*addOrderCmd) Usage() string {
	return `wealth add-order -k <income|expense> -a <amount> -f <Weekly|Monthly> (-t <account> | -auto) [-n <note>] [-d <first_date>]

  Registers a standing order. The 'tick' command materializes every
  occurrence that has come due. Without -d the first occurrence is the day
  of the first tick.
`
}

func (c *addOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Order kind: income or expense.")
	f.StringVar(&c.amount, "a", "", "Amount per occurrence.")
	f.StringVar(&c.note, "n", "", "Free text note, e.g. \"Salary\" or \"Rent\".")
	f.StringVar(&c.frequency, "f", "", "Frequency: Weekly or Monthly.")
	f.StringVar(&c.first, "d", "", "First execution date (YYYY-MM-DD).")
	f.StringVar(&c.account, "t", "", "Account the order is booked on.")
	f.BoolVar(&c.auto, "auto", false, "Route income through the auto-split ratios.")
}

func (c *addOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := wealth.ParseTxType(c.kind)
	if err != nil {
		return fail(err)
	}
	amount, err := wealth.ParseAmount(c.amount)
	if err != nil {
		return fail(err)
	}
	freq, err := wealth.ParseFrequency(c.frequency)
	if err != nil {
		return fail(err)
	}
	var first wealth.Date
	if c.first != "" {
		if first, err = wealth.ParseDate(c.first); err != nil {
			return fail(err)
		}
	}
	if c.account == "" && !(c.auto && kind == wealth.Income) {
		return fail(fmt.Errorf("missing -t account name"))
	}

	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	if c.account != "" && b.Accounts.Get(c.account) == nil {
		return fail(fmt.Errorf("%w: %q", wealth.ErrAccountNotFound, c.account))
	}
	o, err := b.Orders.Add(kind, amount, c.note, freq, first, c.account, c.auto)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Println("Registered", o)
	return subcommands.ExitSuccess
}
