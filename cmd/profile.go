package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type profileCmd struct {
	vision       string
	ambitions    string
	relationship string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "describe yourself to the savings coach" }
func (*profileCmd) Usage() string {
	return `wealth profile [-vision <text>] [-ambitions <text>] [-relationship <text>]

  Stores a few words about your financial vision, your ambitions and your
  relationship with money. The 'tips' coach uses them to personalize its
  advice. Without flags, shows the current profile.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vision, "vision", "", "Where you want to be financially.")
	f.StringVar(&c.ambitions, "ambitions", "", "What you are saving towards beyond your tracked goals.")
	f.StringVar(&c.relationship, "relationship", "", "How you feel about money today.")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	changed := false
	if c.vision != "" {
		b.Profile.Vision = c.vision
		changed = true
	}
	if c.ambitions != "" {
		b.Profile.Ambitions = c.ambitions
		changed = true
	}
	if c.relationship != "" {
		b.Profile.Relationship = c.relationship
		changed = true
	}
	if changed {
		if err := SaveBook(b); err != nil {
			return fail(err)
		}
	}

	if b.Profile.IsZero() {
		fmt.Println("No profile yet.")
		return subcommands.ExitSuccess
	}
	if b.Profile.Vision != "" {
		fmt.Println("Vision:", b.Profile.Vision)
	}
	if b.Profile.Ambitions != "" {
		fmt.Println("Ambitions:", b.Profile.Ambitions)
	}
	if b.Profile.Relationship != "" {
		fmt.Println("Relationship with money:", b.Profile.Relationship)
	}
	return subcommands.ExitSuccess
}
