package wealth

import (
	"strings"
	"testing"
)

func TestImportTransactions(t *testing.T) {
	export := `{
	  "version": 2,
	  "data": {
	    "transactions": [
	      {"type": "income", "amount": 1200.50, "account": "Checking", "description": "Salary", "date": "2024-01-05"},
	      {"type": "Expense", "amount": "45,90", "account": "Checking", "note": "Groceries", "category": "Food", "timestamp": "2024-01-06T18:30:00Z"}
	    ]
	  }
	}`

	txs, err := ImportTransactions(strings.NewReader(export), "$.data.transactions")
	if err != nil {
		t.Fatalf("ImportTransactions returned %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("imported %d rows, want 2", len(txs))
	}

	salary := txs[0]
	if salary.Type != Income || !salary.Amount.Equal(EUR(1200.50)) {
		t.Errorf("salary = %+v, want income of 1200.50", salary)
	}
	if salary.Note != "Salary" || salary.Date() != day("2024-01-05") {
		t.Errorf("salary = %+v, want the description and date mapped", salary)
	}
	if salary.ID == "" {
		t.Error("rows without an id must get one")
	}

	groceries := txs[1]
	// amounts written with a decimal comma parse the same
	if groceries.Type != Expense || !groceries.Amount.Equal(EUR(45.90)) {
		t.Errorf("groceries = %+v, want expense of 45.90", groceries)
	}
	if groceries.Category != "Food" || groceries.Date() != day("2024-01-06") {
		t.Errorf("groceries = %+v, want the category and timestamp mapped", groceries)
	}
}

func TestImportTransactions_DefaultPath(t *testing.T) {
	export := `{"transactions": [{"type": "income", "amount": 10, "account": "Checking", "date": "2024-01-05"}]}`
	txs, err := ImportTransactions(strings.NewReader(export), "")
	if err != nil {
		t.Fatalf("ImportTransactions returned %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("imported %d rows, want 1", len(txs))
	}
}

func TestImportTransactions_BadRows(t *testing.T) {
	testCases := []struct {
		name   string
		export string
		path   string
	}{
		{name: "rows not a list", export: `{"transactions": {}}`, path: ""},
		{name: "missing path", export: `{"other": []}`, path: "$.transactions"},
		{name: "unknown type", export: `{"transactions": [{"type": "loan", "amount": 10, "date": "2024-01-05"}]}`, path: ""},
		{name: "negative amount", export: `{"transactions": [{"type": "income", "amount": -10, "date": "2024-01-05"}]}`, path: ""},
		{name: "bad date", export: `{"transactions": [{"type": "income", "amount": 10, "date": "someday"}]}`, path: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportTransactions(strings.NewReader(tc.export), tc.path); err == nil {
				t.Error("ImportTransactions accepted a bad export")
			}
		})
	}
}
