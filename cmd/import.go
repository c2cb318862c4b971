package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

type importCmd struct {
	file string
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON export" }
func (*importCmd) Usage() string {
	return `wealth import -f <file.json> [-path <jsonpath>]

  Imports transactions from another app's JSON export and applies them to
  the accounts. -path points at the row list inside the document, e.g.
  "$.data.transactions"; by default rows are expected at "$.transactions".
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to import.")
	f.StringVar(&c.path, "path", wealth.DefaultRowsPath, "jsonpath expression selecting the rows.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("missing -f file to import"))
	}
	r, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer r.Close()

	txs, err := wealth.ImportTransactions(r, c.path)
	if err != nil {
		return fail(err)
	}

	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	var recorded int
	var errs []error
	for _, tx := range txs {
		if err := b.Record(tx); err != nil {
			errs = append(errs, err)
			continue
		}
		recorded++
	}
	if err := SaveBook(b); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %d of %d transactions from %s\n", recorded, len(txs), c.file)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Some rows could not be applied:", errors.Join(errs...))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
