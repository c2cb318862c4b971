package renderer

import (
	"fmt"
	"strings"

	"github.com/roma12mc/wealth"
)

// LogMarkdown renders the ledger entries it is given, in the order given.
func LogMarkdown(txs []wealth.Transaction) string {
	r := &strings.Builder{}
	fmt.Fprintf(r, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintf(r, "No transactions yet.\n")
		return r.String()
	}
	fmt.Fprintf(r, "| Date | Type | Amount | Account | Note | Id |\n")
	fmt.Fprintf(r, "|:---|:---|---:|:---|:---|:---|\n")
	for _, tx := range txs {
		note := tx.Note
		if tx.Category != "" {
			note = strings.TrimSpace(note + " (" + tx.Category + ")")
		}
		fmt.Fprintf(r, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date(), tx.Type, tx.Amount, tx.Account, note, short(tx.ID))
	}
	return r.String()
}

// OrdersMarkdown renders the standing orders table.
func OrdersMarkdown(orders *wealth.OrderStore) string {
	r := &strings.Builder{}
	fmt.Fprintf(r, "# Standing Orders\n\n")
	if orders.Len() == 0 {
		fmt.Fprintf(r, "No standing orders yet.\n")
		return r.String()
	}
	fmt.Fprintf(r, "| Note | Type | Amount | Frequency | Account | Next | Id |\n")
	fmt.Fprintf(r, "|:---|:---|---:|:---|:---|:---|:---|\n")
	for o := range orders.All() {
		account := o.Account
		if o.UseAuto && o.Type == wealth.Income {
			account = wealth.AutoSplitAccount
		}
		next := "next tick"
		if !o.NextExecution.IsZero() {
			next = o.NextExecution.String()
		}
		fmt.Fprintf(r, "| %s | %s | %s | %s | %s | %s | %s |\n",
			o.Note, o.Type, o.Amount, o.Frequency, account, next, short(o.ID))
	}
	return r.String()
}

// short keeps the first uuid block, enough to identify an entry on screen.
func short(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
