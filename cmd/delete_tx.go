package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction, reverting its effect" }
func (*deleteTxCmd) Usage() string {
	return `wealth delete-tx -id <id>

  Reverts the transaction's balance effect and removes it from the ledger.
  The id may be abbreviated to an unambiguous prefix, as shown by 'wealth tx'.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id, or an unambiguous prefix of it.")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing -id"))
	}
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	id, err := resolveTxID(b.Ledger, c.id)
	if err != nil {
		return fail(err)
	}
	tx, err := b.Ledger.Get(id)
	if err != nil {
		return fail(err)
	}
	if err := b.DeleteTransaction(id); err != nil {
		return fail(err)
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted", tx)
	return subcommands.ExitSuccess
}

// resolveTxID expands an id prefix into the full id, rejecting ambiguous
// prefixes.
func resolveTxID(ledger *wealth.Ledger, prefix string) (string, error) {
	var found []string
	for tx := range ledger.All() {
		if tx.ID == prefix {
			return prefix, nil
		}
		if strings.HasPrefix(tx.ID, prefix) {
			found = append(found, tx.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %q", wealth.ErrTransactionNotFound, prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("id prefix %q matches %d transactions", prefix, len(found))
}
