package wealth

import (
	"fmt"
)

// Book bundles every store of one user's finances and enforces the rules
// that span more than one of them. Commands operate on a Book and persist
// it back as a whole.
type Book struct {
	Accounts *AccountStore
	Ledger   *Ledger
	Orders   *OrderStore
	Goals    *GoalStore
	Policy   *AutoSplitPolicy
	Badges   *BadgeBook
	Profile  Profile
	Tips     []Tip
}

// NewBook returns an empty book with all stores initialized.
func NewBook() *Book {
	return &Book{
		Accounts: NewAccountStore(),
		Ledger:   NewLedger(),
		Orders:   NewOrderStore(),
		Goals:    NewGoalStore(),
		Policy:   NewAutoSplitPolicy(),
		Badges:   NewBadgeBook(),
	}
}

// DeleteAccount removes an account that nothing depends on anymore. Goals
// funded from it and standing orders booked on it must go first; ledger
// history mentioning it is kept as is.
func (b *Book) DeleteAccount(name string) error {
	if b.Goals.References(name) {
		return fmt.Errorf("cannot delete account %q: a goal is funded from it", name)
	}
	for o := range b.Orders.All() {
		if o.Account == name {
			return fmt.Errorf("cannot delete account %q: standing order %q is booked on it", name, o.Note)
		}
	}
	return b.Accounts.Delete(name)
}

// Record applies and appends a transaction using the book's auto-split
// policy.
func (b *Book) Record(tx Transaction) error {
	return b.Ledger.Record(tx, b.Accounts, b.Policy)
}

// DeleteTransaction reverts and removes a ledger entry.
func (b *Book) DeleteTransaction(id string) error {
	return b.Ledger.Delete(id, b.Accounts, b.Policy)
}

// EvaluateStandingOrders materializes every occurrence due on or before
// today and returns the recorded transactions.
func (b *Book) EvaluateStandingOrders(today Date) ([]Transaction, error) {
	return b.Orders.Evaluate(today, b.Ledger, b.Accounts, b.Policy)
}

// Contribute funds a goal for today and returns the milestones crossed and
// the badges newly earned by this contribution.
func (b *Book) Contribute(goal string, amount Money, today Date) (milestones []int, badges []Badge, err error) {
	milestones, err = b.Goals.Contribute(goal, amount, today, b.Accounts)
	if err != nil {
		return nil, nil, err
	}
	return milestones, b.EvaluateBadges(today), nil
}

// RefreshStreaks recomputes every goal's streak from the recorded history,
// so a lapsed streak decays even when nothing has touched the goal since.
// The recompute allows one quiet day before a streak breaks, where the
// running counter kept by contributions only ever grows.
func (b *Book) RefreshStreaks(today Date) {
	for g := range b.Goals.All() {
		g.StreakCount = StreakOf(g, b.Ledger, today)
	}
}

// EvaluateBadges refreshes every goal's streak as of today, then awards the
// badges the refreshed state has earned.
func (b *Book) EvaluateBadges(today Date) []Badge {
	b.RefreshStreaks(today)
	return b.Badges.EvaluateBadges(b.Goals, today)
}

// Summary computes the dashboard snapshot as of today, refreshing the goal
// streaks first so the discipline figures decay with inactivity.
func (b *Book) Summary(today Date) *Summary {
	b.RefreshStreaks(today)
	return NewSummary(b.Accounts, b.Goals, b.Ledger, today)
}

// Nudges returns the reminders derived from the book's recent activity.
func (b *Book) Nudges(today Date) []string {
	return Nudges(b.Goals, b.Ledger, today)
}
