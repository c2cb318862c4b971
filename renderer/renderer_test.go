package renderer

import (
	"strings"
	"testing"

	"github.com/roma12mc/wealth"
)

func book(t *testing.T) *wealth.Book {
	t.Helper()
	b := wealth.NewBook()
	if _, err := b.Accounts.Create("Checking", wealth.M(1000)); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestDashboardMarkdown(t *testing.T) {
	b := book(t)
	if err := b.Record(wealth.NewIncome(wealth.M(500), "Checking", "salary", "")); err != nil {
		t.Fatal(err)
	}
	md := DashboardMarkdown(b.Summary(wealth.Today()))

	for _, want := range []string{"# Dashboard", "Total Balance", "Wealth Index", "## This Month", "## Monthly History"} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard misses %q:\n%s", want, md)
		}
	}
}

func TestGoalsMarkdown(t *testing.T) {
	b := book(t)
	b.Goals.Create("Trip", wealth.M(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", wealth.M(40), wealth.Today(), b.Accounts)

	md := GoalsMarkdown(b.Goals)
	for _, want := range []string{"## Trip", "40.0%", "Suggested saving", "Streak | 1 days"} {
		if !strings.Contains(md, want) {
			t.Errorf("goals misses %q:\n%s", want, md)
		}
	}
	// 40% fills 8 of the 20 bar cells
	if !strings.Contains(md, strings.Repeat("█", 8)+strings.Repeat("░", 12)) {
		t.Errorf("goals misses the progress bar:\n%s", md)
	}
}

func TestLogMarkdown(t *testing.T) {
	b := book(t)
	b.Record(wealth.NewIncome(wealth.M(500), "Checking", "salary", "work"))

	var txs []wealth.Transaction
	for tx := range b.Ledger.Newest() {
		txs = append(txs, tx)
	}
	md := LogMarkdown(txs)
	for _, want := range []string{"# Transactions", "Income", "salary (work)"} {
		if !strings.Contains(md, want) {
			t.Errorf("log misses %q:\n%s", want, md)
		}
	}
}

func TestBadgesMarkdown(t *testing.T) {
	b := book(t)
	if md := BadgesMarkdown(b.Badges, nil); !strings.Contains(md, "No badges") {
		t.Errorf("empty book should render the empty message, got:\n%s", md)
	}

	b.Badges.Award("streak_7_Trip", "Week Warrior", "7-day streak", wealth.Today())
	md := BadgesMarkdown(b.Badges, []string{"Spend less on gadgets."})
	for _, want := range []string{"Week Warrior", "# Nudges", "gadgets"} {
		if !strings.Contains(md, want) {
			t.Errorf("badges misses %q:\n%s", want, md)
		}
	}
}

func TestMilestonesMarkdown(t *testing.T) {
	md := MilestonesMarkdown("Trip", []int{75, 100}, nil)
	if !strings.Contains(md, "75%") || !strings.Contains(md, "fully funded") {
		t.Errorf("milestones = %q", md)
	}
	if MilestonesMarkdown("Trip", nil, nil) != "" {
		t.Error("no milestones should render nothing")
	}
}
