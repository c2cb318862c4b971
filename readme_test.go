package wealth

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeExamples keeps the README honest: every bash example must be a
// wealth command line.
func TestReadmeExamples(t *testing.T) {
	source, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var commands []string
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fence.Language(source)) != "bash" {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fence.Lines().Len(); i++ {
			line := fence.Lines().At(i)
			b.Write(line.Value(source))
		}
		commands = append(commands, strings.TrimSpace(b.String()))
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk README.md: %v", err)
	}

	if len(commands) == 0 {
		t.Fatal("README.md has no bash examples")
	}
	for _, cmd := range commands {
		if !strings.HasPrefix(cmd, "wealth ") {
			t.Errorf("example %q is not a wealth command", cmd)
		}
	}
}
