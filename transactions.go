package wealth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TxType identifies the direction of a transaction.
type TxType string

const (
	Income  TxType = "Income"
	Expense TxType = "Expense"
)

// ParseTxType validates a transaction type string.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(s) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	}
	return "", fmt.Errorf("invalid transaction type %q: must be %q or %q", s, Income, Expense)
}

// Transaction is a single immutable ledger entry. Once recorded it is never
// edited in place; corrections go through Ledger.Delete which reverts the
// balance effect and removes the row.
type Transaction struct {
	ID        string
	Type      TxType
	Amount    Money
	Account   string
	Note      string
	Category  string
	Timestamp time.Time
	// Goal is set when the entry was materialized by a goal contribution,
	// so the streak engine can attribute it back to the goal.
	Goal string
}

// NewTransaction records a new entry identified by a fresh UUID and stamped
// with the current time.
func NewTransaction(t TxType, amount Money, account, note, category string) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Type:      t,
		Amount:    amount,
		Account:   account,
		Note:      note,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// NewIncome records a credit on the given account.
func NewIncome(amount Money, account, note, category string) Transaction {
	return NewTransaction(Income, amount, account, note, category)
}

// NewExpense records a debit on the given account.
func NewExpense(amount Money, account, note, category string) Transaction {
	return NewTransaction(Expense, amount, account, note, category)
}

// Date returns the calendar day of the entry.
func (t Transaction) Date() Date { return DateOf(t.Timestamp) }

// Signed returns the amount as a positive value for income and a negative
// one for expenses, for profit arithmetic.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s on %q (%s)", t.Date(), t.Type, t.Amount, t.Account, t.Note)
}

// MarshalJSON customizes the JSON output to enforce a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("account", t.Account)
	w.Optional("note", t.Note)
	w.Optional("category", t.Category)
	w.Append("timestamp", t.Timestamp.Format(time.RFC3339))
	w.Optional("goal", t.Goal)
	return w.MarshalJSON()
}

// UnmarshalJSON parses a ledger row, tolerating rows written before some
// optional fields existed.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var row struct {
		ID        string `json:"id"`
		Type      TxType `json:"type"`
		Amount    Money  `json:"amount"`
		Account   string `json:"account"`
		Note      string `json:"note"`
		Category  string `json:"category"`
		Timestamp string `json:"timestamp"`
		Goal      string `json:"goal"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, row.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid transaction timestamp %q: %w", row.Timestamp, err)
	}
	if _, err := ParseTxType(string(row.Type)); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	if row.ID == "" {
		// Rows imported from older exports carry no identifier.
		row.ID = uuid.NewString()
	}
	t.ID = row.ID
	t.Type = row.Type
	t.Amount = row.Amount
	t.Account = row.Account
	t.Note = row.Note
	t.Category = row.Category
	t.Timestamp = ts
	t.Goal = row.Goal
	return nil
}
