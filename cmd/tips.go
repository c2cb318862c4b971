package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/roma12mc/wealth"
	"github.com/roma12mc/wealth/agent"
	"github.com/roma12mc/wealth/renderer"
	"google.golang.org/genai"
)

type tipsCmd struct {
	last bool
}

func (*tipsCmd) Name() string     { return "tips" }
func (*tipsCmd) Synopsis() string { return "ask the savings coach for advice" }
func (*tipsCmd) Usage() string {
	return `wealth tips [-last]

  Asks the AI savings coach for advice grounded in the current dashboard
  figures and your profile. Tips are kept, -last shows the most recent one
  without asking again.
`
}

func (c *tipsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.last, "last", false, "Show the last saved tip instead of asking the coach.")
}

func (c *tipsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadCurrentBook()
	if err != nil {
		return fail(err)
	}

	if c.last {
		if len(b.Tips) == 0 {
			fmt.Println("No saved tips yet.")
			return subcommands.ExitSuccess
		}
		tip := b.Tips[len(b.Tips)-1]
		fmt.Println("On", tip.Date.Format("2006-01-02"))
		printMarkdown(tip.Text)
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	dashboard := renderer.DashboardMarkdown(b.Summary(wealth.Today()))
	text, err := agent.Tips(ctx, client, b.Profile, dashboard)
	if err != nil {
		return fail(err)
	}

	b.Tips = append(b.Tips, wealth.Tip{Date: time.Now(), Text: text})
	if err := SaveBook(b); err != nil {
		return fail(err)
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}
