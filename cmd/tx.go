package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/roma12mc/wealth/renderer"
)

type txCmd struct {
	account string
	head    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `wealth tx [-t <account>] [-head <n>]

  Lists transactions most recent first, optionally only those booked on one
  account, optionally limited to the first n shown.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "t", "", "Only transactions on this account.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}

	entries := b.Ledger.Newest()
	if c.account != "" {
		entries = b.Ledger.OnAccount(c.account)
	}
	var txs []wealth.Transaction
	for tx := range entries {
		if c.head > 0 && len(txs) == c.head {
			break
		}
		txs = append(txs, tx)
	}

	printMarkdown(renderer.LogMarkdown(txs))
	return subcommands.ExitSuccess
}
