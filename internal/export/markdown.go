package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/minhngoc2704/article-flow/internal/generator"
)

// RenderMarkdown serializes an article to markdown. Headings follow the
// section nesting (top-level sections are H2, subsections H3, and so
// on, capped at H6).
func RenderMarkdown(a generator.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	if len(a.Tags) > 0 {
		fmt.Fprintf(&b, "_Tags: %s_\n\n", strings.Join(a.Tags, ", "))
	}
	if a.Metadata.ReadingTime > 0 {
		fmt.Fprintf(&b, "_%d words, about %d min read_\n\n", a.Metadata.WordCount, a.Metadata.ReadingTime)
	}

	b.WriteString(strings.TrimSpace(a.Introduction))
	b.WriteString("\n\n")

	generator.WalkSections(a.Sections, func(depth int, s *generator.ArticleSection) {
		level := depth + 2
		if level > 6 {
			level = 6
		}
		fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), s.Heading)
		if content := strings.TrimSpace(s.Content); content != "" {
			b.WriteString(content)
			b.WriteString("\n\n")
		}
	})

	b.WriteString("## Conclusion\n\n")
	b.WriteString(strings.TrimSpace(a.Conclusion))
	b.WriteString("\n")

	return b.String()
}

// WriteMarkdown renders the article and writes it to path.
func WriteMarkdown(a generator.Article, path string) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(a)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
