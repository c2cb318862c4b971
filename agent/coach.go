// Package agent holds the AI coaching side of the tool: a Gemini backed
// expert that turns the current dashboard figures and the user's own words
// about money into short, personal saving tips.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/roma12mc/wealth"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewCoach creates the savings coach, primed with the user's profile.
func NewCoach(profile wealth.Profile) *Expert {
	var sb strings.Builder
	sb.WriteString(`
	You are a pragmatic personal savings coach. The user tracks accounts,
	savings goals, contribution streaks and a wealth index in a ledger tool.
	You will receive their current dashboard figures in markdown.

	Give at most three short, concrete tips the user can act on this week.
	Anchor every tip in the figures you were given, never invent numbers.
	Be encouraging about streaks, direct about overspending. No disclaimers.
	`)
	if profile.Vision != "" {
		fmt.Fprintf(&sb, "\nTheir financial vision, in their words: %q\n", profile.Vision)
	}
	if profile.Ambitions != "" {
		fmt.Fprintf(&sb, "\nBeyond their tracked goals they are saving towards: %q\n", profile.Ambitions)
	}
	if profile.Relationship != "" {
		fmt.Fprintf(&sb, "\nTheir relationship with money today: %q\n", profile.Relationship)
	}
	return &Expert{
		Name:        "Coach",
		Description: "A personal savings coach grounded in the user's own dashboard figures.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: sb.String()}}},
		},
	}
}

// Tips asks the coach for advice grounded in the rendered dashboard.
func Tips(ctx context.Context, client *genai.Client, profile wealth.Profile, dashboard string) (string, error) {
	coach := NewCoach(profile)
	if err := coach.Start(ctx, client); err != nil {
		return "", err
	}
	return coach.Ask(ctx, &genai.Part{Text: dashboard})
}
