package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/shopspring/decimal"
)

type splitCmd struct {
	ratios  string
	disable bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "configure the auto-split ratios" }
func (*splitCmd) Usage() string {
	return `wealth split [-r <account=ratio,...>] [-off]

  Configures how incomes routed through auto-split are distributed, e.g.
  -r "Checking=50,Savings=30,Fun=20". Ratios are normalized by their sum,
  so they need not add up to 100. Without flags, shows the current table.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ratios, "r", "", "Comma separated account=ratio pairs.")
	f.BoolVar(&c.disable, "off", false, "Disable auto-split, keeping the table.")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	if c.ratios == "" && !c.disable {
		c.show(b)
		return subcommands.ExitSuccess
	}

	if c.ratios != "" {
		ratios, err := parseRatios(c.ratios, b.Accounts)
		if err != nil {
			return fail(err)
		}
		b.Policy.Set(ratios, !c.disable)
		if err := b.Policy.Validate(); err != nil {
			return fail(err)
		}
	} else {
		b.Policy.Enabled = false
	}

	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	c.show(b)
	return subcommands.ExitSuccess
}

func (c *splitCmd) show(b *wealth.Book) {
	state := "off"
	if b.Policy.Enabled {
		state = "on"
	}
	fmt.Printf("Auto-split is %s.\n", state)
	sum := b.Policy.Sum()
	for name := range b.Policy.Accounts() {
		ratio := b.Policy.Ratios[name]
		share := "-"
		if sum.IsPositive() {
			share = ratio.Div(sum).Mul(decimal.NewFromInt(100)).Round(1).String() + "%"
		}
		fmt.Printf("  %s: %s (%s of each income)\n", name, ratio, share)
	}
}

// parseRatios reads "account=ratio" pairs, checking each account exists.
func parseRatios(s string, accounts *wealth.AccountStore) (map[string]decimal.Decimal, error) {
	ratios := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(s, ",") {
		name, ratio, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid ratio %q: want account=ratio", pair)
		}
		name = strings.TrimSpace(name)
		if accounts.Get(name) == nil {
			return nil, fmt.Errorf("%w: %q", wealth.ErrAccountNotFound, name)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(ratio))
		if err != nil {
			return nil, fmt.Errorf("invalid ratio for %q: %w", name, err)
		}
		ratios[name] = d
	}
	return ratios, nil
}
