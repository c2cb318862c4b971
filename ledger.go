package wealth

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
)

// ErrTransactionNotFound is returned when a ledger entry id does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// Ledger is the append-only list of transactions. Entries keep their
// insertion order on disk; display order is newest first.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds an already-applied entry at the end of the ledger.
func (l *Ledger) Append(tx ...Transaction) { l.transactions = append(l.transactions, tx...) }

// All iterates entries in insertion order, the canonical on-disk order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Newest iterates entries most recent first, for display.
func (l *Ledger) Newest() iter.Seq[Transaction] {
	sorted := slices.Clone(l.transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return func(yield func(Transaction) bool) {
		for _, tx := range sorted {
			if !yield(tx) {
				return
			}
		}
	}
}

// Get returns the entry with the given id.
func (l *Ledger) Get(id string) (Transaction, error) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return Transaction{}, fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
}

// Record applies a transaction to the account store and, on success, appends
// it to the ledger. Income on the auto-split account is fanned out across the
// policy's target accounts instead; the entry still lands in the ledger as a
// single row against the auto-split account.
func (l *Ledger) Record(tx Transaction, accounts *AccountStore, policy *AutoSplitPolicy) error {
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("cannot record %s of %s: %w", tx.Type, tx.Amount, ErrInvalidAmount)
	}
	if err := l.apply(tx, accounts, policy); err != nil {
		return err
	}
	l.Append(tx)
	return nil
}

func (l *Ledger) apply(tx Transaction, accounts *AccountStore, policy *AutoSplitPolicy) error {
	if tx.Type == Income && tx.Account == AutoSplitAccount && policy != nil && policy.Enabled {
		return l.split(tx, accounts, policy)
	}
	acc := accounts.Get(tx.Account)
	if acc == nil {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, tx.Account)
	}
	switch tx.Type {
	case Income:
		acc.Balance = acc.Balance.Add(tx.Amount)
	case Expense:
		if acc.Balance.LessThan(tx.Amount) {
			return fmt.Errorf("%w: %q holds %s, expense is %s", ErrInsufficientFunds, acc.Name, acc.Balance, tx.Amount)
		}
		acc.Balance = acc.Balance.Sub(tx.Amount)
	default:
		return fmt.Errorf("invalid transaction type %q", tx.Type)
	}
	return nil
}

// split distributes an income across the policy's accounts, each receiving
// its ratio normalized by the sum of all ratios.
func (l *Ledger) split(tx Transaction, accounts *AccountStore, policy *AutoSplitPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	// All targets must exist before any of them is credited.
	for name := range policy.Accounts() {
		if accounts.Get(name) == nil {
			return fmt.Errorf("%w: auto-split target %q", ErrAccountNotFound, name)
		}
	}
	for name := range policy.Accounts() {
		acc := accounts.Get(name)
		acc.Balance = acc.Balance.Add(policy.Share(tx.Amount, name))
	}
	return nil
}

// revert undoes the balance effect of an entry. An account deleted since
// the entry was recorded is skipped with a warning: the entry can still be
// removed, its balance effect is simply lost with the account. Auto-split
// incomes are unwound with the policy's current ratios.
func (l *Ledger) revert(tx Transaction, accounts *AccountStore, policy *AutoSplitPolicy) {
	if tx.Type == Income && tx.Account == AutoSplitAccount && policy != nil && policy.Enabled {
		for name := range policy.Accounts() {
			acc := accounts.Get(name)
			if acc == nil {
				log.Printf("reverting %s: auto-split target %q no longer exists, skipping its share", tx.ID, name)
				continue
			}
			acc.Balance = acc.Balance.Sub(policy.Share(tx.Amount, name))
		}
		return
	}
	acc := accounts.Get(tx.Account)
	if acc == nil {
		log.Printf("reverting %s: account %q no longer exists, skipping the balance adjustment", tx.ID, tx.Account)
		return
	}
	switch tx.Type {
	case Income:
		acc.Balance = acc.Balance.Sub(tx.Amount)
	case Expense:
		acc.Balance = acc.Balance.Add(tx.Amount)
	}
}

// Delete reverts the entry's balance effect and removes it from the ledger.
func (l *Ledger) Delete(id string, accounts *AccountStore, policy *AutoSplitPolicy) error {
	i := slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
	}
	l.revert(l.transactions[i], accounts, policy)
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// OnAccount iterates entries booked against the given account, newest first.
func (l *Ledger) OnAccount(name string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for tx := range l.Newest() {
			if tx.Account != name {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// References reports whether any ledger entry mentions the given account.
func (l *Ledger) References(name string) bool {
	return slices.ContainsFunc(l.transactions, func(tx Transaction) bool { return tx.Account == name })
}
