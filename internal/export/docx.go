package export

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/minhngoc2704/article-flow/internal/generator"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx renders the article as a styled docx document. Section
// headings shrink with nesting depth; body text uses a single font so
// the output opens cleanly in Word and LibreOffice.
func WriteDocx(a generator.Article, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addHeading(doc, a.Title, 16)
	if a.Metadata.ReadingTime > 0 {
		addBody(doc, fmt.Sprintf("%d words, about %d min read", a.Metadata.WordCount, a.Metadata.ReadingTime))
	}
	addBody(doc, a.Introduction)

	generator.WalkSections(a.Sections, func(depth int, s *generator.ArticleSection) {
		addHeading(doc, s.Heading, headingSize(depth))
		if s.Content != "" {
			addBody(doc, s.Content)
		}
	})

	addHeading(doc, "Conclusion", headingSize(0))
	addBody(doc, a.Conclusion)

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func headingSize(depth int) uint64 {
	switch depth {
	case 0:
		return 15
	case 1:
		return 14
	default:
		return fontSize
	}
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
