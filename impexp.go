package wealth

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import format: JSON exports
// from other tracking apps, whose row list can live anywhere in the
// document. A jsonpath expression points at the rows.

// DefaultRowsPath locates the transaction rows in a typical export.
const DefaultRowsPath = "$.transactions"

// ImportTransactions parses an external JSON export and returns the ledger
// rows it contains. rowsPath is a jsonpath expression selecting the array
// of rows; each row needs at least a type and an amount, everything else is
// best effort.
func ImportTransactions(r io.Reader, rowsPath string) ([]Transaction, error) {
	if rowsPath == "" {
		rowsPath = DefaultRowsPath
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse import file: %w", err)
	}
	jval, err := jsonpath.Get(rowsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot find rows at %q: %w", rowsPath, err)
	}
	jrows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("rows at %q are not a list", rowsPath)
	}

	txs := make([]Transaction, 0, len(jrows))
	for i, jrow := range jrows {
		row, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not an object", i)
		}
		tx, err := importRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func importRow(row map[string]any) (Transaction, error) {
	t, err := ParseTxType(str(row, "type"))
	if err != nil {
		return Transaction{}, err
	}
	amount, err := importAmount(row["amount"])
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:       str(row, "id"),
		Type:     t,
		Amount:   amount,
		Account:  str(row, "account"),
		Note:     first(str(row, "note"), str(row, "description")),
		Category: str(row, "category"),
		Goal:     str(row, "goal"),
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	when := first(str(row, "timestamp"), str(row, "date"))
	if ts, err := time.Parse(time.RFC3339, when); err == nil {
		tx.Timestamp = ts
	} else if d, err := ParseDate(when); err == nil {
		tx.Timestamp = d.Time()
	} else {
		return Transaction{}, fmt.Errorf("cannot parse date %q", when)
	}
	return tx, nil
}

// importAmount accepts the number shapes found in the wild: JSON numbers
// and strings with either decimal separator.
func importAmount(v any) (Money, error) {
	switch a := v.(type) {
	case float64:
		m := Money{value: decimal.NewFromFloat(a)}
		if !m.IsPositive() {
			return Money{}, fmt.Errorf("amount %v: %w", a, ErrInvalidAmount)
		}
		return m, nil
	case string:
		return ParseAmount(a)
	}
	return Money{}, fmt.Errorf("amount %v: %w", v, ErrInvalidAmount)
}

func str(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}

func first(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
