package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/roma12mc/wealth"
)

// BadgesMarkdown renders earned badges and current nudges together, the
// motivational side of the dashboard.
func BadgesMarkdown(badges *wealth.BadgeBook, nudges []string) string {
	r := &strings.Builder{}

	ConditionalBlock(r, func(w io.Writer) bool {
		if badges.Len() == 0 {
			return false
		}
		fmt.Fprintf(w, "# Badges\n\n")
		fmt.Fprintf(w, "| Badge | For | Earned |\n")
		fmt.Fprintf(w, "|:---|:---|:---|\n")
		for b := range badges.All() {
			fmt.Fprintf(w, "| 🏅 %s | %s | %s |\n", b.Title, b.Description, b.AwardedAt)
		}
		fmt.Fprintf(w, "\n")
		return true
	})

	ConditionalBlock(r, func(w io.Writer) bool {
		if len(nudges) == 0 {
			return false
		}
		fmt.Fprintf(w, "# Nudges\n\n")
		for _, n := range nudges {
			fmt.Fprintf(w, "- %s\n", n)
		}
		return true
	})

	if r.Len() == 0 {
		return "No badges or nudges yet. Contribute to a goal to get started.\n"
	}
	return r.String()
}

// MilestonesMarkdown celebrates the milestones and badges one contribution
// just earned.
func MilestonesMarkdown(goal string, milestones []int, badges []wealth.Badge) string {
	r := &strings.Builder{}
	for _, m := range milestones {
		if m == 100 {
			fmt.Fprintf(r, "🎉 %q is fully funded!\n", goal)
			continue
		}
		fmt.Fprintf(r, "🎯 %q crossed %d%% of its target.\n", goal, m)
	}
	for _, b := range badges {
		fmt.Fprintf(r, "🏅 New badge: %s (%s)\n", b.Title, b.Description)
	}
	return r.String()
}
