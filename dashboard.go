package wealth

import (
	"slices"

	"github.com/shopspring/decimal"
)

// MonthlyFigures is one month's row of the income statement.
type MonthlyFigures struct {
	Month   Date // first day of the month
	Income  Money
	Expense Money
	Profit  Money
}

// Summary is the dashboard snapshot: wealth position, current month
// performance, goal discipline and the composite wealth index.
type Summary struct {
	Date Date

	TotalBalance     Money
	TotalAllocated   Money
	FreeBalance      Money
	PercentAllocated Percent

	MonthlyIncome  Money
	MonthlyExpense Money
	ProfitMargin   Percent

	TotalGoals          int
	CompletedGoals      int
	LongestStreak       int
	AverageContribution Money

	WealthIndex decimal.Decimal

	Months []MonthlyFigures
}

// NewSummary computes the dashboard figures as of the given day.
func NewSummary(accounts *AccountStore, goals *GoalStore, ledger *Ledger, today Date) *Summary {
	s := &Summary{
		Date:           today,
		TotalBalance:   accounts.TotalBalance(),
		TotalAllocated: accounts.TotalAllocated(),
		TotalGoals:     goals.Len(),
		CompletedGoals: goals.CountCompleted(),
		LongestStreak:  LongestStreak(goals),
	}
	s.FreeBalance = s.TotalBalance.Sub(s.TotalAllocated)
	s.PercentAllocated = s.TotalAllocated.Percent(s.TotalBalance)

	s.Months = monthlyFigures(ledger)
	month := today.StartOf(Monthly)
	for _, m := range s.Months {
		if m.Month == month {
			s.MonthlyIncome = m.Income
			s.MonthlyExpense = m.Expense
		}
	}
	s.ProfitMargin = s.MonthlyIncome.Sub(s.MonthlyExpense).Percent(s.MonthlyIncome)

	s.AverageContribution = averageContribution(goals)
	s.WealthIndex = wealthIndex(s.PercentAllocated, s.LongestStreak, s.AverageContribution, s.ProfitMargin)
	return s
}

// monthlyFigures aggregates the ledger per calendar month, oldest first.
func monthlyFigures(ledger *Ledger) []MonthlyFigures {
	byMonth := make(map[Date]*MonthlyFigures)
	for tx := range ledger.All() {
		month := tx.Date().StartOf(Monthly)
		m := byMonth[month]
		if m == nil {
			m = &MonthlyFigures{Month: month}
			byMonth[month] = m
		}
		switch tx.Type {
		case Income:
			m.Income = m.Income.Add(tx.Amount)
		case Expense:
			m.Expense = m.Expense.Add(tx.Amount)
		}
	}
	months := make([]MonthlyFigures, 0, len(byMonth))
	for _, m := range byMonth {
		m.Profit = m.Income.Sub(m.Expense)
		months = append(months, *m)
	}
	slices.SortFunc(months, func(a, b MonthlyFigures) int {
		if a.Month.Before(b.Month) {
			return -1
		}
		if a.Month.After(b.Month) {
			return 1
		}
		return 0
	})
	return months
}

// averageContribution is the mean amount of a single day's contribution
// across every goal's history.
func averageContribution(goals *GoalStore) Money {
	var total Money
	var n int
	for g := range goals.All() {
		for _, e := range g.History {
			total = total.Add(e.Amount)
			n++
		}
	}
	if n == 0 {
		return Money{}
	}
	return total.Div(n)
}

// wealthIndex folds discipline and performance into a single score:
//
//	(percent allocated) x (longest streak) x (average contribution) x (1 + margin/100) / 1000
//
// The score is zero whenever any discipline factor is zero, so it only
// rewards sustained saving.
func wealthIndex(allocated Percent, streak int, avgContribution Money, margin Percent) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(float64(margin)).Div(decimal.NewFromInt(100)))
	return decimal.NewFromFloat(float64(allocated)).
		Mul(decimal.NewFromInt(int64(streak))).
		Mul(avgContribution.value).
		Mul(growth).
		Div(decimal.NewFromInt(1000)).
		Round(2)
}
