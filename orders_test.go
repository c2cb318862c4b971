package wealth

import (
	"errors"
	"testing"
)

func TestOrderStore_Evaluate_DrainsMissedOccurrences(t *testing.T) {
	b := testBook()
	o, err := b.Orders.Add(Income, EUR(100), "salary", WeeklyFrequency, day("2024-01-01"), "Checking", false)
	if err != nil {
		t.Fatalf("Add returned %v", err)
	}

	// evaluated 9 days late: both 01-01 and 01-08 are due
	done, err := b.EvaluateStandingOrders(day("2024-01-10"))
	if err != nil {
		t.Fatalf("Evaluate returned %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("materialized %d transactions, want 2", len(done))
	}
	if got := done[0].Date(); got != day("2024-01-01") {
		t.Errorf("first occurrence dated %s, want 2024-01-01", got)
	}
	if got := done[1].Date(); got != day("2024-01-08") {
		t.Errorf("second occurrence dated %s, want 2024-01-08", got)
	}
	if o.NextExecution != day("2024-01-15") {
		t.Errorf("NextExecution = %s, want 2024-01-15", o.NextExecution)
	}
	if got := b.Accounts.Get("Checking").Balance; !got.Equal(EUR(1200)) {
		t.Errorf("Checking = %s, want 1200", got)
	}

	// evaluating again the same day records nothing new
	done, err = b.EvaluateStandingOrders(day("2024-01-10"))
	if err != nil || len(done) != 0 {
		t.Errorf("second evaluation: %d transactions, err %v, want none", len(done), err)
	}
}

func TestOrderStore_Evaluate_InitializesSchedule(t *testing.T) {
	b := testBook()
	o, _ := b.Orders.Add(Expense, EUR(10), "subscription", MonthlyFrequency, Date{}, "Checking", false)

	done, err := b.EvaluateStandingOrders(day("2024-02-01"))
	if err != nil {
		t.Fatalf("Evaluate returned %v", err)
	}
	if len(done) != 1 {
		t.Fatalf("materialized %d transactions, want 1", len(done))
	}
	if got := done[0].Date(); got != day("2024-02-01") {
		t.Errorf("occurrence dated %s, want 2024-02-01", got)
	}
	if o.NextExecution != day("2024-03-02") {
		t.Errorf("NextExecution = %s, want 2024-03-02", o.NextExecution)
	}
}

func TestOrderStore_Evaluate_InsufficientFunds(t *testing.T) {
	b := testBook()
	rent, _ := b.Orders.Add(Expense, EUR(5000), "rent", MonthlyFrequency, day("2024-01-01"), "Checking", false)
	b.Orders.Add(Income, EUR(100), "salary", MonthlyFrequency, day("2024-01-01"), "Checking", false)

	done, err := b.EvaluateStandingOrders(day("2024-01-01"))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	// the failing order did not run nor advance, the healthy one did both
	if len(done) != 1 || done[0].Note != "salary" {
		t.Fatalf("materialized %v, want only the salary", done)
	}
	if rent.NextExecution != day("2024-01-01") {
		t.Errorf("failed order advanced to %s, want 2024-01-01", rent.NextExecution)
	}
	if got := b.Accounts.Get("Checking").Balance; !got.Equal(EUR(1100)) {
		t.Errorf("Checking = %s, want 1100", got)
	}
}

func TestOrderStore_Add_Validation(t *testing.T) {
	s := NewOrderStore()
	if _, err := s.Add(Expense, EUR(0), "x", WeeklyFrequency, Date{}, "Checking", false); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount err = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.Add(Expense, EUR(10), "x", "Fortnightly", Date{}, "Checking", false); !errors.Is(err, ErrMissingSchedule) {
		t.Errorf("bad frequency err = %v, want ErrMissingSchedule", err)
	}
}

func TestOrderStore_Delete(t *testing.T) {
	s := NewOrderStore()
	o, _ := s.Add(Expense, EUR(10), "x", WeeklyFrequency, Date{}, "Checking", false)
	if err := s.Delete(o.ID); err != nil {
		t.Fatalf("Delete returned %v", err)
	}
	if err := s.Delete(o.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("second delete err = %v, want ErrOrderNotFound", err)
	}
}
