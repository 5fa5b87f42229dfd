package generator

import (
	"fmt"
	"strings"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

// fillerSentence stands in for section content when nothing in the
// analysis matches.
const fillerSentence = "This section covers additional points discussed in the video."

// keyPointBudget maps the length option to how many key points a
// section folds in. It is a selection budget, not a truncation.
func keyPointBudget(length string) int {
	switch length {
	case LengthShort:
		return 2
	case LengthLong:
		return 6
	default:
		return 4
	}
}

// Generate renders the analysis into an Article using the selected
// template. It is pure and never fails: a degenerate analysis still
// yields a minimal valid article.
func (g *implGenerator) Generate(analysis analyzer.ContentAnalysis, meta video.Metadata, t transcript.Transcript, opts Options) Article {
	tpl := g.selectTemplate(analysis, opts.CustomTemplate)

	tone := opts.Tone
	if tone == "" {
		tone = tpl.DefaultTone
	}
	length := opts.Length
	if length == "" {
		length = tpl.EstimatedLength
	}
	budget := keyPointBudget(length)

	usedKeyPoints := make(map[int]bool, len(analysis.KeyPoints))
	sections := make([]ArticleSection, 0, len(tpl.Structure))
	for _, ts := range tpl.Structure {
		sections = append(sections, g.renderSection(ts, analysis, opts, budget, usedKeyPoints))
	}

	article := Article{
		Title:        articleTitle(tpl.Type, meta, analysis),
		Introduction: applyTone(g.renderIntroduction(meta, analysis), tone),
		Sections:     sections,
		Conclusion:   applyTone(g.renderConclusion(analysis), tone),
	}
	article.Metadata = deriveMetadata(article, meta)
	article.Tags = deriveTags(analysis, meta)

	return article
}

// renderSection fills one structural slot from the analysis.
func (g *implGenerator) renderSection(ts TemplateSection, analysis analyzer.ContentAnalysis, opts Options, budget int, used map[int]bool) ArticleSection {
	switch ts.ContentType {
	case ContentSummary:
		content := analysis.Summary
		if content == "" || content == "." {
			content = fillerSentence
		}
		return ArticleSection{Heading: ts.Heading, Content: content}

	case ContentTopics:
		return g.renderTopicSection(ts, analysis)

	default:
		return g.renderKeyPointSection(ts, analysis, opts, budget, used)
	}
}

// renderKeyPointSection concatenates key points relevant to the
// heading, preferring heading keyword overlap, then unused points by
// rank. Timestamp markers are appended when both the options and the
// template slot ask for them.
func (g *implGenerator) renderKeyPointSection(ts TemplateSection, analysis analyzer.ContentAnalysis, opts Options, budget int, used map[int]bool) ArticleSection {
	headingWords := headingKeywords(ts.Heading)

	selected := make([]int, 0, budget)
	// First pass: heading keyword overlap against the key point text.
	for i, kp := range analysis.KeyPoints {
		if len(selected) >= budget {
			break
		}
		if used[i] {
			continue
		}
		lower := strings.ToLower(kp.Text)
		for _, w := range headingWords {
			if strings.Contains(lower, w) {
				selected = append(selected, i)
				used[i] = true
				break
			}
		}
	}
	// Second pass: fill the remaining budget with unused points by rank.
	for i := range analysis.KeyPoints {
		if len(selected) >= budget {
			break
		}
		if !used[i] {
			selected = append(selected, i)
			used[i] = true
		}
	}

	if len(selected) == 0 {
		return ArticleSection{Heading: ts.Heading, Content: fillerSentence}
	}

	var parts []string
	for _, i := range selected {
		kp := analysis.KeyPoints[i]
		text := kp.Text
		if opts.IncludeTimestamps && ts.IncludeTimestamps {
			text = fmt.Sprintf("%s [%s]", text, transcript.FormatTimestamp(kp.Timestamp, false))
		}
		parts = append(parts, text)
	}

	return ArticleSection{Heading: ts.Heading, Content: strings.Join(parts, ". ") + "."}
}

// renderTopicSection lists the topics in prose and nests one
// subsection per topic, reusing the analyzer's suggested outline
// content where it has any.
func (g *implGenerator) renderTopicSection(ts TemplateSection, analysis analyzer.ContentAnalysis) ArticleSection {
	if len(analysis.Topics) == 0 {
		return ArticleSection{Heading: ts.Heading, Content: fillerSentence}
	}

	names := make([]string, 0, len(analysis.Topics))
	for _, topic := range analysis.Topics {
		names = append(names, topic.Name)
	}

	outlineContent := make(map[string]string, len(analysis.SuggestedStructure))
	for _, section := range analysis.SuggestedStructure {
		outlineContent[section.Heading] = section.Content
	}

	const maxSubsections = 3
	subsections := make([]ArticleSection, 0, maxSubsections)
	for _, topic := range analysis.Topics {
		if len(subsections) >= maxSubsections {
			break
		}
		content := outlineContent[topic.Name]
		if content == "" {
			content = "Discussion of " + strings.ToLower(topic.Name) + "."
		}
		subsections = append(subsections, ArticleSection{
			Heading: topic.Name,
			Content: content,
		})
	}

	return ArticleSection{
		Heading:     ts.Heading,
		Content:     "The video covers " + joinNatural(names) + ".",
		Subsections: subsections,
	}
}

// articleTitle derives a title from the template type and the video
// title, falling back to the top topic for untitled videos.
func articleTitle(templateType string, meta video.Metadata, analysis analyzer.ContentAnalysis) string {
	base := strings.TrimSpace(meta.Title)
	if base == "" {
		if len(analysis.Topics) > 0 {
			base = analysis.Topics[0].Name
		} else {
			base = "Video Summary"
		}
	}

	switch templateType {
	case TypeTutorial:
		return base + ": A Step-by-Step Guide"
	case TypeInterview:
		return "Key Takeaways from " + base
	case TypePresentation:
		return base + ": Presentation Notes"
	case TypeDiscussion:
		return base + ": A Discussion Recap"
	default:
		return base + ": Key Points and Insights"
	}
}

func (g *implGenerator) renderIntroduction(meta video.Metadata, analysis analyzer.ContentAnalysis) string {
	var b strings.Builder
	b.WriteString("This article was created from the video")
	if title := strings.TrimSpace(meta.Title); title != "" {
		fmt.Fprintf(&b, " %q", title)
	}
	if channel := strings.TrimSpace(meta.ChannelName); channel != "" {
		fmt.Fprintf(&b, " by %s", channel)
	}
	b.WriteString(".")

	if analysis.Summary != "" && analysis.Summary != "." {
		b.WriteString(" ")
		b.WriteString(analysis.Summary)
	}
	return b.String()
}

func (g *implGenerator) renderConclusion(analysis analyzer.ContentAnalysis) string {
	if len(analysis.Topics) == 0 {
		return "In conclusion, the points above capture the essence of the video."
	}

	names := make([]string, 0, len(analysis.Topics))
	for _, topic := range analysis.Topics {
		names = append(names, strings.ToLower(topic.Name))
	}
	return "In conclusion, this video covered " + joinNatural(names) +
		". The key takeaways above should give a solid starting point for exploring these ideas further."
}

// headingKeywords tokenizes a section heading for overlap matching.
func headingKeywords(heading string) []string {
	fields := strings.FieldsFunc(strings.ToLower(heading), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			words = append(words, f)
		}
	}
	return words
}

// joinNatural joins names as "a", "a and b" or "a, b, and c".
func joinNatural(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
