package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func recordOn(t *testing.T, b *Book, tx Transaction, on Date) {
	t.Helper()
	tx.Timestamp = on.Time()
	if err := b.Record(tx); err != nil {
		t.Fatalf("Record returned %v", err)
	}
}

func TestSummary_MonthlyFigures(t *testing.T) {
	b := testBook()
	recordOn(t, b, NewIncome(EUR(1000), "Checking", "salary", ""), day("2024-01-05"))
	recordOn(t, b, NewExpense(EUR(400), "Checking", "rent", ""), day("2024-01-06"))
	recordOn(t, b, NewIncome(EUR(1000), "Checking", "salary", ""), day("2024-02-05"))

	s := b.Summary(day("2024-01-31"))
	if !s.MonthlyIncome.Equal(EUR(1000)) {
		t.Errorf("MonthlyIncome = %s, want 1000", s.MonthlyIncome)
	}
	if !s.MonthlyExpense.Equal(EUR(400)) {
		t.Errorf("MonthlyExpense = %s, want 400", s.MonthlyExpense)
	}
	// (1000-400)/1000 = 60%
	if !s.ProfitMargin.Equal(60) {
		t.Errorf("ProfitMargin = %s, want 60%%", s.ProfitMargin)
	}

	if len(s.Months) != 2 {
		t.Fatalf("Months has %d rows, want 2", len(s.Months))
	}
	if s.Months[0].Month != day("2024-01-01") || !s.Months[0].Profit.Equal(EUR(600)) {
		t.Errorf("January row = %+v, want profit 600", s.Months[0])
	}
	if s.Months[1].Month != day("2024-02-01") || !s.Months[1].Profit.Equal(EUR(1000)) {
		t.Errorf("February row = %+v, want profit 1000", s.Months[1])
	}
}

func TestSummary_Allocation(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(1000), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(150), day("2024-01-01"), b.Accounts)

	s := b.Summary(day("2024-01-01"))
	if !s.TotalBalance.Equal(EUR(1500)) {
		t.Errorf("TotalBalance = %s, want 1500", s.TotalBalance)
	}
	if !s.TotalAllocated.Equal(EUR(150)) {
		t.Errorf("TotalAllocated = %s, want 150", s.TotalAllocated)
	}
	if !s.FreeBalance.Equal(EUR(1350)) {
		t.Errorf("FreeBalance = %s, want 1350", s.FreeBalance)
	}
	if !s.PercentAllocated.Equal(10) {
		t.Errorf("PercentAllocated = %s, want 10%%", s.PercentAllocated)
	}
}

func TestSummary_StreakDecay(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(1000), "Checking", b.Accounts)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		b.Goals.Contribute("Trip", EUR(10), day(d), b.Accounts)
	}

	if got := b.Summary(day("2024-01-05")).LongestStreak; got != 5 {
		t.Errorf("LongestStreak on the last day = %d, want 5", got)
	}
	// one quiet day keeps the streak alive
	if got := b.Summary(day("2024-01-06")).LongestStreak; got != 5 {
		t.Errorf("LongestStreak the day after = %d, want 5", got)
	}
	// months later the streak is gone, not frozen at its best value
	if got := b.Summary(day("2024-06-01")).LongestStreak; got != 0 {
		t.Errorf("LongestStreak months later = %d, want 0", got)
	}
}

func TestSummary_WealthIndex(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(1000), "Checking", b.Accounts)

	// no contributions yet: every discipline factor is zero
	if got := b.Summary(day("2024-01-01")).WealthIndex; !got.IsZero() {
		t.Errorf("WealthIndex = %s, want zero", got)
	}

	b.Goals.Contribute("Trip", EUR(150), day("2024-01-03"), b.Accounts)
	recordOn(t, b, NewIncome(EUR(1000), "Checking", "salary", ""), day("2024-01-02"))
	recordOn(t, b, NewExpense(EUR(500), "Checking", "rent", ""), day("2024-01-03"))

	s := b.Summary(day("2024-01-03"))
	// balance 2000 after the income, allocated 150: 7.5% allocated.
	// one-day streak, average contribution 150, margin 50%.
	// 7.5 * 1 * 150 * 1.5 / 1000 = 1.6875, rounded to 1.69
	want := decimal.RequireFromString("1.69")
	if !s.WealthIndex.Equal(want) {
		t.Errorf("WealthIndex = %s, want %s", s.WealthIndex, want)
	}
}
