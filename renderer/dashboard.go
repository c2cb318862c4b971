package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/roma12mc/wealth"
)

// DashboardMarkdown renders the summary snapshot.
func DashboardMarkdown(s *wealth.Summary) string {
	r := &strings.Builder{}

	fmt.Fprintf(r, "# Dashboard on %s\n\n", s.Date)

	fmt.Fprintf(r, "| | |\n")
	fmt.Fprintf(r, "|:---|---:|\n")
	fmt.Fprintf(r, "| **Total Balance** | %s |\n", s.TotalBalance)
	fmt.Fprintf(r, "| Allocated to Goals | %s (%s) |\n", s.TotalAllocated, s.PercentAllocated)
	fmt.Fprintf(r, "| Free to Spend | %s |\n", s.FreeBalance)
	fmt.Fprintf(r, "| **Wealth Index** | %s |\n", s.WealthIndex)
	fmt.Fprintf(r, "\n")

	fmt.Fprintf(r, "## This Month\n\n")
	fmt.Fprintf(r, "| Income | Expenses | Profit Margin |\n")
	fmt.Fprintf(r, "|---:|---:|---:|\n")
	fmt.Fprintf(r, "| %s | %s | %s |\n\n", s.MonthlyIncome, s.MonthlyExpense, s.ProfitMargin)

	fmt.Fprintf(r, "## Discipline\n\n")
	fmt.Fprintf(r, "| Goals | Completed | Longest Streak | Avg. Contribution |\n")
	fmt.Fprintf(r, "|---:|---:|---:|---:|\n")
	fmt.Fprintf(r, "| %d | %d | %d days | %s |\n\n", s.TotalGoals, s.CompletedGoals, s.LongestStreak, s.AverageContribution)

	ConditionalBlock(r, func(w io.Writer) bool { return renderMonths(w, s.Months) })

	return r.String()
}

func renderMonths(w io.Writer, months []wealth.MonthlyFigures) bool {
	if len(months) == 0 {
		return false
	}
	fmt.Fprintf(w, "## Monthly History\n\n")
	fmt.Fprintf(w, "| Month | Income | Expenses | Profit |\n")
	fmt.Fprintf(w, "|:---|---:|---:|---:|\n")
	for _, m := range months {
		fmt.Fprintf(w, "| %s %d | %s | %s | %s |\n", m.Month.Month(), m.Month.Year(), m.Income, m.Expense, m.Profit)
	}
	fmt.Fprintf(w, "\n")
	return true
}

// AccountsMarkdown renders the account table.
func AccountsMarkdown(accounts *wealth.AccountStore) string {
	r := &strings.Builder{}
	fmt.Fprintf(r, "# Accounts\n\n")
	if accounts.Len() == 0 {
		fmt.Fprintf(r, "No accounts yet.\n")
		return r.String()
	}
	fmt.Fprintf(r, "| Account | Balance | Allocated | Free |\n")
	fmt.Fprintf(r, "|:---|---:|---:|---:|\n")
	for a := range accounts.All() {
		fmt.Fprintf(r, "| %s | %s | %s | %s |\n", a.Name, a.Balance, a.Allocated, a.Free())
	}
	return r.String()
}
