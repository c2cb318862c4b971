package wealth

import (
	"errors"
	"slices"
	"testing"
)

func TestGoalStore_Contribute_Streak(t *testing.T) {
	b := testBook()
	b.Goals.Create("Bike", EUR(500), "Checking", b.Accounts)

	contribute := func(amount Money, on Date) []int {
		t.Helper()
		crossed, err := b.Goals.Contribute("Bike", amount, on, b.Accounts)
		if err != nil {
			t.Fatalf("Contribute returned %v", err)
		}
		return crossed
	}

	g := b.Goals.Get("Bike")
	contribute(EUR(10), day("2024-01-01"))
	if g.StreakCount != 1 {
		t.Errorf("streak = %d, want 1", g.StreakCount)
	}
	// same day again: streak unchanged
	contribute(EUR(10), day("2024-01-01"))
	if g.StreakCount != 1 {
		t.Errorf("streak after same-day contribution = %d, want 1", g.StreakCount)
	}
	// next day: streak grows
	contribute(EUR(10), day("2024-01-02"))
	if g.StreakCount != 2 {
		t.Errorf("streak = %d, want 2", g.StreakCount)
	}
	// a gap restarts from 1
	contribute(EUR(10), day("2024-01-05"))
	if g.StreakCount != 1 {
		t.Errorf("streak after a gap = %d, want 1", g.StreakCount)
	}

	// two same-day contributions share one history bucket
	if len(g.History) != 3 {
		t.Fatalf("history has %d entries, want 3", len(g.History))
	}
	if !g.History[0].Amount.Equal(EUR(20)) {
		t.Errorf("first day bucket = %s, want 20", g.History[0].Amount)
	}

	// contributions earmark money on the funding account
	if got := b.Accounts.Get("Checking").Allocated; !got.Equal(EUR(40)) {
		t.Errorf("Allocated = %s, want 40", got)
	}
}

func TestGoalStore_Contribute_Milestones(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)

	crossed, _ := b.Goals.Contribute("Trip", EUR(30), day("2024-01-01"), b.Accounts)
	if !slices.Equal(crossed, []int{25}) {
		t.Errorf("crossed %v, want [25]", crossed)
	}
	// jumping several thresholds at once reports them all
	crossed, _ = b.Goals.Contribute("Trip", EUR(70), day("2024-01-02"), b.Accounts)
	if !slices.Equal(crossed, []int{50, 75, 100}) {
		t.Errorf("crossed %v, want [50 75 100]", crossed)
	}
	// nothing crosses twice
	crossed, _ = b.Goals.Contribute("Trip", EUR(10), day("2024-01-03"), b.Accounts)
	if len(crossed) != 0 {
		t.Errorf("crossed %v, want none", crossed)
	}
	if !b.Goals.Get("Trip").Completed() {
		t.Error("goal should be completed")
	}
}

func TestGoalStore_Contribute_InsufficientFree(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(5000), "Checking", b.Accounts)

	// Checking holds 1000, so a 1200 contribution cannot be earmarked
	_, err := b.Goals.Contribute("Trip", EUR(1200), day("2024-01-01"), b.Accounts)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	g := b.Goals.Get("Trip")
	if !g.Current.IsZero() || g.StreakCount != 0 {
		t.Error("failed contribution must not change the goal")
	}
}

func TestGoalStore_Reset(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(30), day("2024-01-01"), b.Accounts)

	released, err := b.Goals.Reset("Trip", b.Accounts)
	if err != nil {
		t.Fatalf("Reset returned %v", err)
	}
	if !released.Equal(EUR(30)) {
		t.Errorf("released %s, want 30", released)
	}
	g := b.Goals.Get("Trip")
	if !g.Current.IsZero() || g.StreakCount != 0 || len(g.History) != 0 {
		t.Error("Reset must zero progress, streak and history")
	}
	// milestones already celebrated stay celebrated
	if !slices.Equal(g.MilestonesHit, []int{25}) {
		t.Errorf("MilestonesHit = %v, want [25]", g.MilestonesHit)
	}
	if got := b.Accounts.Get("Checking").Allocated; !got.IsZero() {
		t.Errorf("Allocated = %s, want zero", got)
	}
}

func TestGoalStore_Reset_ClampsRelease(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(30), day("2024-01-01"), b.Accounts)
	// a manual correction already freed part of the earmark
	b.Accounts.ResetAllocation("Checking")

	released, err := b.Goals.Reset("Trip", b.Accounts)
	if err != nil {
		t.Fatalf("Reset returned %v", err)
	}
	if !released.IsZero() {
		t.Errorf("released %s, want zero", released)
	}
	// allocation never goes negative
	if got := b.Accounts.Get("Checking").Allocated; !got.IsZero() {
		t.Errorf("Allocated = %s, want zero", got)
	}
}

func TestGoalStore_Delete(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(30), day("2024-01-01"), b.Accounts)

	released, err := b.Goals.Delete("Trip", b.Accounts)
	if err != nil {
		t.Fatalf("Delete returned %v", err)
	}
	if !released.Equal(EUR(30)) {
		t.Errorf("released %s, want 30", released)
	}
	if b.Goals.Get("Trip") != nil {
		t.Error("goal still exists after Delete")
	}
	if _, err := b.Goals.Delete("Trip", b.Accounts); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("second delete err = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalStore_Edit(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(30), day("2024-01-01"), b.Accounts)

	if err := b.Goals.Edit("Trip", "Japan", EUR(200), "Savings", b.Accounts); err != nil {
		t.Fatalf("Edit returned %v", err)
	}
	g := b.Goals.Get("Japan")
	if g == nil {
		t.Fatal("renamed goal not found")
	}
	if !g.Target.Equal(EUR(200)) || g.AllocatedFrom != "Savings" {
		t.Errorf("goal = %+v, want target 200 funded from Savings", g)
	}
	// progress and streak survive the edit
	if !g.Current.Equal(EUR(30)) || g.StreakCount != 1 {
		t.Error("Edit must not touch progress")
	}
	// the earmark moved with the goal
	if got := b.Accounts.Get("Checking").Allocated; !got.IsZero() {
		t.Errorf("Checking allocated = %s, want zero", got)
	}
	if got := b.Accounts.Get("Savings").Allocated; !got.Equal(EUR(30)) {
		t.Errorf("Savings allocated = %s, want 30", got)
	}
}

func TestGoalStore_Create_Validation(t *testing.T) {
	b := testBook()
	if _, err := b.Goals.Create("Trip", EUR(0), "Checking", b.Accounts); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero target err = %v, want ErrInvalidAmount", err)
	}
	if _, err := b.Goals.Create("Trip", EUR(10), "Nowhere", b.Accounts); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("unknown account err = %v, want ErrAccountNotFound", err)
	}
	b.Goals.Create("Trip", EUR(10), "Checking", b.Accounts)
	if _, err := b.Goals.Create("Trip", EUR(10), "Checking", b.Accounts); !errors.Is(err, ErrDuplicateGoal) {
		t.Errorf("duplicate err = %v, want ErrDuplicateGoal", err)
	}
}

func TestGoal_SuggestedSaving(t *testing.T) {
	b := testBook()
	b.Goals.Create("Trip", EUR(100), "Checking", b.Accounts)
	b.Goals.Contribute("Trip", EUR(40), day("2024-01-01"), b.Accounts)

	g := b.Goals.Get("Trip")
	// 60 remaining, three payments of 20
	if got := g.SuggestedSaving(); !got.Equal(EUR(20)) {
		t.Errorf("SuggestedSaving = %s, want 20", got)
	}
}
