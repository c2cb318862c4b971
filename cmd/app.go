// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
)

// Commands lists every subcommand.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&createAccountCmd{},
	&deleteAccountCmd{},
	&accountsCmd{},
	&transferCmd{},
	&resetAllocationCmd{},

	&incomeCmd{},
	&expenseCmd{},
	&deleteTxCmd{},
	&txCmd{},

	&addOrderCmd{},
	&deleteOrderCmd{},
	&ordersCmd{},
	&tickCmd{},

	&addGoalCmd{},
	&contributeCmd{},
	&editGoalCmd{},
	&resetGoalCmd{},
	&deleteGoalCmd{},
	&goalsCmd{},

	&splitCmd{},
	&dashboardCmd{},
	&badgesCmd{},
	&profileCmd{},
	&tipsCmd{},
	&importCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", ".wealth", "Path to the data folder")

// LoadBook reads the whole book from the app store folder. A missing folder
// yields an empty book, so the first command just works.
func LoadBook() (*wealth.Book, error) {
	return wealth.NewStore(*storePath).Load()
}

// SaveBook writes the whole book back to the app store folder.
func SaveBook(b *wealth.Book) error {
	return wealth.NewStore(*storePath).Save(b)
}

// LoadCurrentBook loads the book and materializes the standing orders due by
// today before anything is read, so balances and the ledger are never stale.
// An order that cannot run is reported and retried on the next command.
func LoadCurrentBook() (*wealth.Book, error) {
	b, err := LoadBook()
	if err != nil {
		return nil, err
	}
	done, evalErr := b.EvaluateStandingOrders(wealth.Today())
	if len(done) > 0 {
		if err := SaveBook(b); err != nil {
			return nil, err
		}
	}
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, "Warning: standing orders skipped:", evalErr)
	}
	return b, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status, the common exit
// path of every command.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
