package docs

import (
	"regexp"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This test ensures that the documentation is in sync with itself:
// every topic must parse as markdown with a single level-1 heading, and
// every topic must be mentioned in readme.md.
func TestTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}

	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	md := goldmark.New()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("topic %q cannot be loaded: %v", topic, err)
			continue
		}

		source := []byte(content)
		root := md.Parser().Parse(text.NewReader(source))
		titles := 0
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
				titles++
			}
			return ast.WalkContinue, nil
		})
		if titles != 1 {
			t.Errorf("topic %q has %d level-1 headings, want exactly 1", topic, titles)
		}

		mention := regexp.MustCompile("`" + regexp.QuoteMeta(topic) + "`")
		if !mention.MatchString(readme) {
			t.Errorf("topic %q is not mentioned in readme.md", topic)
		}
	}
}
