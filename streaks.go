package wealth

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// goalNoteMarker tags imported ledger rows that belong to a goal, for files
// exported by tools that have no dedicated goal field.
const goalNoteMarker = "[Goal]"

// DailyTotals returns the per-day contribution totals of a goal, merging
// its own history with ledger entries attributed to it.
func DailyTotals(g *Goal, ledger *Ledger) map[Date]Money {
	totals := make(map[Date]Money, len(g.History))
	for _, e := range g.History {
		totals[e.Date] = totals[e.Date].Add(e.Amount)
	}
	if ledger != nil {
		for tx := range ledger.All() {
			if tx.Goal != g.Name && !strings.Contains(tx.Note, goalNoteMarker+" "+g.Name) {
				continue
			}
			d := tx.Date()
			totals[d] = totals[d].Add(tx.Amount)
		}
	}
	return totals
}

// StreakOf recomputes a goal's current streak from its daily totals: the
// number of consecutive days with a contribution, ending today or
// yesterday. A streak whose last day is before yesterday is broken.
func StreakOf(g *Goal, ledger *Ledger, today Date) int {
	totals := DailyTotals(g, ledger)
	day := today
	if _, ok := totals[day]; !ok {
		day = day.Add(-1)
	}
	var streak int
	for {
		if _, ok := totals[day]; !ok {
			return streak
		}
		streak++
		day = day.Add(-1)
	}
}

// LongestStreak returns the best current streak across all goals.
func LongestStreak(goals *GoalStore) int {
	var best int
	for g := range goals.All() {
		if g.StreakCount > best {
			best = g.StreakCount
		}
	}
	return best
}

// Badge is an achievement awarded exactly once.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AwardedAt   Date   `json:"awardedAt"`
}

// BadgeBook holds awarded badges keyed by their id.
type BadgeBook struct {
	badges map[string]Badge
}

func NewBadgeBook() *BadgeBook { return &BadgeBook{badges: make(map[string]Badge)} }

func (b *BadgeBook) Len() int { return len(b.badges) }

// Has reports whether the badge with the given id has been awarded.
func (b *BadgeBook) Has(id string) bool { _, ok := b.badges[id]; return ok }

// Award grants a badge and reports whether it is new. Awarding an already
// held badge changes nothing, in particular the original award date stays.
func (b *BadgeBook) Award(id, title, description string, when Date) bool {
	if b.Has(id) {
		return false
	}
	b.badges[id] = Badge{ID: id, Title: title, Description: description, AwardedAt: when}
	return true
}

// All iterates badges by award date, oldest first, ties broken by id.
func (b *BadgeBook) All() iter.Seq[Badge] {
	sorted := make([]Badge, 0, len(b.badges))
	for _, badge := range b.badges {
		sorted = append(sorted, badge)
	}
	slices.SortFunc(sorted, func(x, y Badge) int {
		if x.AwardedAt != y.AwardedAt {
			if x.AwardedAt.Before(y.AwardedAt) {
				return -1
			}
			return 1
		}
		return strings.Compare(x.ID, y.ID)
	})
	return func(yield func(Badge) bool) {
		for _, badge := range sorted {
			if !yield(badge) {
				return
			}
		}
	}
}

// EvaluateBadges checks every badge condition against the current goals
// and returns the badges newly awarded today.
func (b *BadgeBook) EvaluateBadges(goals *GoalStore, today Date) []Badge {
	var won []Badge
	award := func(id, title, description string) {
		if b.Award(id, title, description, today) {
			won = append(won, b.badges[id])
		}
	}
	for g := range goals.All() {
		if g.StreakCount >= 7 {
			award("streak_7_"+g.Name, "Week Warrior",
				fmt.Sprintf("7-day contribution streak on %q", g.Name))
		}
		if g.StreakCount >= 30 {
			award("streak_30_"+g.Name, "Monthly Master",
				fmt.Sprintf("30-day contribution streak on %q", g.Name))
		}
		if g.Completed() {
			award("completed_"+g.Name, "Goal Crusher",
				fmt.Sprintf("fully funded %q", g.Name))
		}
	}
	if goals.CountCompleted() >= 3 {
		award("three_goals", "Triple Threat", "completed three savings goals")
	}
	return won
}

// Nudges returns gentle reminders derived from recent activity: a quiet
// ledger, a week of unusually heavy spending, or goals left untouched.
func Nudges(goals *GoalStore, ledger *Ledger, today Date) []string {
	var nudges []string

	var recent bool
	for tx := range ledger.All() {
		if today.DaysSince(tx.Date()) < 7 {
			recent = true
			break
		}
	}
	if ledger.Len() > 0 && !recent {
		nudges = append(nudges, "No transactions in the last 7 days. Keeping the ledger current keeps the numbers honest.")
	}

	if n := overspendNudge(ledger, today); n != "" {
		nudges = append(nudges, n)
	}

	for g := range goals.All() {
		if g.Completed() || g.LastContribution.IsZero() {
			continue
		}
		if days := today.DaysSince(g.LastContribution); days >= 7 {
			nudges = append(nudges, fmt.Sprintf("No contribution to %q in %d days. Even a small one keeps the streak logic on your side.", g.Name, days))
		}
	}
	return nudges
}

// overspendNudge flags the current ISO week when its expenses exceed three
// times the average of the previous weeks.
func overspendNudge(ledger *Ledger, today Date) string {
	type week struct{ year, num int }
	spent := make(map[week]Money)
	for tx := range ledger.All() {
		if tx.Type != Expense {
			continue
		}
		y, n := tx.Date().ISOWeek()
		w := week{y, n}
		spent[w] = spent[w].Add(tx.Amount)
	}
	y, n := today.ISOWeek()
	current := week{y, n}
	var past Money
	var weeks int
	for w, m := range spent {
		if w == current {
			continue
		}
		past = past.Add(m)
		weeks++
	}
	if weeks == 0 {
		return ""
	}
	avg := past.Div(weeks)
	threshold := avg.Add(avg).Add(avg)
	if avg.IsPositive() && spent[current].GreaterThan(threshold) {
		return fmt.Sprintf("Spending this week (%s) is more than three times your weekly average (%s).", spent[current], avg)
	}
	return ""
}
