package wealth

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrGoalNotFound is returned when a goal name does not exist.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrDuplicateGoal is returned when creating a goal whose name is taken.
	ErrDuplicateGoal = errors.New("goal already exists")
)

// Milestones are the completion thresholds, in percent, that a goal
// celebrates exactly once each.
var Milestones = []int{25, 50, 75, 100}

// GoalEntry is one day's worth of contributions to a goal. Several
// contributions on the same day accumulate into a single entry.
type GoalEntry struct {
	Date   Date  `json:"date"`
	Amount Money `json:"amount"`
}

// Goal is a savings target funded by earmarking money on one account.
// Contributions do not move money; they raise the account's allocated
// share so the funds stop counting as free.
type Goal struct {
	Name             string      `json:"name"`
	Target           Money       `json:"target"`
	Current          Money       `json:"current"`
	AllocatedFrom    string      `json:"allocatedFrom"`
	StreakCount      int         `json:"streakCount"`
	LastContribution Date        `json:"lastContribution,omitzero"`
	MilestonesHit    []int       `json:"milestonesHit,omitempty"`
	History          []GoalEntry `json:"history,omitempty"`
}

// Percent returns how much of the target has been funded.
func (g *Goal) Percent() Percent { return g.Current.Percent(g.Target) }

// Completed reports whether the goal is fully funded.
func (g *Goal) Completed() bool { return g.Current.GreaterThanOrEqual(g.Target) }

// Remaining returns the amount still to fund, never negative.
func (g *Goal) Remaining() Money {
	if g.Completed() {
		return M(0)
	}
	return g.Target.Sub(g.Current)
}

// SuggestedSaving proposes a contribution that would complete the goal in
// three more payments.
func (g *Goal) SuggestedSaving() Money { return g.Remaining().Div(3) }

// contribute applies a contribution dated today: it raises the funded
// amount, updates the daily streak, accumulates the day's history bucket,
// and returns the milestones newly crossed by this contribution.
func (g *Goal) contribute(amount Money, today Date) []int {
	g.Current = g.Current.Add(amount)

	// A streak survives only across consecutive days. A second contribution
	// on the same day changes nothing.
	switch {
	case g.LastContribution == today:
	case g.LastContribution == today.Add(-1):
		g.StreakCount++
	default:
		g.StreakCount = 1
	}
	g.LastContribution = today

	if n := len(g.History); n > 0 && g.History[n-1].Date == today {
		g.History[n-1].Amount = g.History[n-1].Amount.Add(amount)
	} else {
		g.History = append(g.History, GoalEntry{Date: today, Amount: amount})
	}

	var crossed []int
	pct := float64(g.Percent())
	for _, m := range Milestones {
		if pct >= float64(m) && !slices.Contains(g.MilestonesHit, m) {
			g.MilestonesHit = append(g.MilestonesHit, m)
			crossed = append(crossed, m)
		}
	}
	return crossed
}

// GoalStore holds goals in creation order.
type GoalStore struct {
	goals []*Goal
}

func NewGoalStore() *GoalStore { return &GoalStore{} }

func (s *GoalStore) Len() int { return len(s.goals) }

// Get returns the goal with the given name, or nil.
func (s *GoalStore) Get(name string) *Goal {
	for _, g := range s.goals {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// All iterates goals in creation order.
func (s *GoalStore) All() iter.Seq[*Goal] {
	return func(yield func(*Goal) bool) {
		for _, g := range s.goals {
			if !yield(g) {
				return
			}
		}
	}
}

// Create adds a new goal funded from the given account.
func (s *GoalStore) Create(name string, target Money, account string, accounts *AccountStore) (*Goal, error) {
	if s.Get(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateGoal, name)
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("goal target %s: %w", target, ErrInvalidAmount)
	}
	if accounts.Get(account) == nil {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, account)
	}
	g := &Goal{Name: name, Target: target, AllocatedFrom: account}
	s.goals = append(s.goals, g)
	return g, nil
}

// Contribute earmarks amount on the goal's funding account, dated today.
// It returns the milestones this contribution newly crossed. The account
// must have enough free (unallocated) balance to cover the contribution.
func (s *GoalStore) Contribute(name string, amount Money, today Date, accounts *AccountStore) ([]int, error) {
	g := s.Get(name)
	if g == nil {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, name)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("contribution of %s: %w", amount, ErrInvalidAmount)
	}
	acc := accounts.Get(g.AllocatedFrom)
	if acc == nil {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, g.AllocatedFrom)
	}
	if acc.Free().LessThan(amount) {
		return nil, fmt.Errorf("%w: %q has %s free, contribution is %s", ErrInsufficientFunds, acc.Name, acc.Free(), amount)
	}
	acc.Allocated = acc.Allocated.Add(amount)
	return g.contribute(amount, today), nil
}

// release gives back the goal's funded amount to its account's free
// balance. The account's allocation never goes below zero, and a funding
// account deleted since is simply ignored.
func release(g *Goal, accounts *AccountStore) Money {
	acc := accounts.Get(g.AllocatedFrom)
	if acc == nil {
		return M(0)
	}
	released := g.Current
	if acc.Allocated.LessThan(released) {
		released = acc.Allocated
	}
	acc.Allocated = acc.Allocated.Sub(released)
	return released
}

// Reset zeroes a goal's progress, releasing its allocation and clearing
// its contribution history. Milestones already celebrated stay celebrated.
// It returns the amount released back to the account's free balance.
func (s *GoalStore) Reset(name string, accounts *AccountStore) (Money, error) {
	g := s.Get(name)
	if g == nil {
		return Money{}, fmt.Errorf("%w: %q", ErrGoalNotFound, name)
	}
	released := release(g, accounts)
	g.Current = M(0)
	g.StreakCount = 0
	g.LastContribution = Date{}
	g.History = nil
	return released, nil
}

// Delete removes a goal, releasing its allocation. It returns the amount
// released back to the account's free balance.
func (s *GoalStore) Delete(name string, accounts *AccountStore) (Money, error) {
	g := s.Get(name)
	if g == nil {
		return Money{}, fmt.Errorf("%w: %q", ErrGoalNotFound, name)
	}
	released := release(g, accounts)
	s.goals = slices.DeleteFunc(s.goals, func(x *Goal) bool { return x.Name == name })
	return released, nil
}

// Edit updates a goal's metadata. Empty arguments keep the current value.
// Progress, streaks and history are untouched.
func (s *GoalStore) Edit(name, newName string, newTarget Money, newAccount string, accounts *AccountStore) error {
	g := s.Get(name)
	if g == nil {
		return fmt.Errorf("%w: %q", ErrGoalNotFound, name)
	}
	if newName != "" && newName != name {
		if s.Get(newName) != nil {
			return fmt.Errorf("%w: %q", ErrDuplicateGoal, newName)
		}
		g.Name = newName
	}
	if !newTarget.IsZero() {
		if !newTarget.IsPositive() {
			return fmt.Errorf("goal target %s: %w", newTarget, ErrInvalidAmount)
		}
		g.Target = newTarget
	}
	if newAccount != "" && newAccount != g.AllocatedFrom {
		if accounts.Get(newAccount) == nil {
			return fmt.Errorf("%w: %q", ErrAccountNotFound, newAccount)
		}
		// Move the existing earmark to the new funding account.
		old := accounts.Get(g.AllocatedFrom)
		if old != nil {
			moved := g.Current
			if old.Allocated.LessThan(moved) {
				moved = old.Allocated
			}
			old.Allocated = old.Allocated.Sub(moved)
		}
		acc := accounts.Get(newAccount)
		acc.Allocated = acc.Allocated.Add(g.Current)
		g.AllocatedFrom = newAccount
	}
	return nil
}

// CountCompleted returns how many goals are fully funded.
func (s *GoalStore) CountCompleted() int {
	var n int
	for _, g := range s.goals {
		if g.Completed() {
			n++
		}
	}
	return n
}

// References reports whether any goal is funded from the given account.
func (s *GoalStore) References(name string) bool {
	return slices.ContainsFunc(s.goals, func(g *Goal) bool { return g.AllocatedFrom == name })
}
