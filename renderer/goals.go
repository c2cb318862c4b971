package renderer

import (
	"fmt"
	"strings"

	"github.com/roma12mc/wealth"
)

// GoalsMarkdown renders every goal with its progress bar and streak.
func GoalsMarkdown(goals *wealth.GoalStore) string {
	r := &strings.Builder{}
	fmt.Fprintf(r, "# Savings Goals\n\n")
	if goals.Len() == 0 {
		fmt.Fprintf(r, "No goals yet.\n")
		return r.String()
	}
	for g := range goals.All() {
		fmt.Fprintf(r, "## %s\n\n", g.Name)
		fmt.Fprintf(r, "`%s` %s\n\n", progressBar(g.Percent()), g.Percent())
		fmt.Fprintf(r, "| | |\n")
		fmt.Fprintf(r, "|:---|---:|\n")
		fmt.Fprintf(r, "| Saved | %s of %s |\n", g.Current, g.Target)
		fmt.Fprintf(r, "| Funded from | %s |\n", g.AllocatedFrom)
		if g.Completed() {
			fmt.Fprintf(r, "| Status | completed |\n")
		} else {
			fmt.Fprintf(r, "| Remaining | %s |\n", g.Remaining())
			fmt.Fprintf(r, "| Suggested saving | %s |\n", g.SuggestedSaving())
		}
		if g.StreakCount > 0 {
			fmt.Fprintf(r, "| Streak | %d days |\n", g.StreakCount)
		}
		fmt.Fprintf(r, "\n")
	}
	return r.String()
}

// progressBar draws a 20-cell bar, clamped at full.
func progressBar(p wealth.Percent) string {
	cells := int(p) / 5
	if cells > 20 {
		cells = 20
	}
	if cells < 0 {
		cells = 0
	}
	return strings.Repeat("█", cells) + strings.Repeat("░", 20-cells)
}
