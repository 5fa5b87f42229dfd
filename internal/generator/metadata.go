package generator

import (
	"regexp"
	"strings"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/video"
)

const (
	seoTitleLimit        = 60
	metaDescriptionLimit = 160
	wordsPerMinute       = 200
	maxTags              = 10
	maxTopicTags         = 5
)

// deriveMetadata computes publishing metadata from the rendered
// article.
func deriveMetadata(a Article, meta video.Metadata) ArticleMetadata {
	wordCount := countWords(a.Title) + countWords(a.Introduction) + countWords(a.Conclusion)
	WalkSections(a.Sections, func(depth int, s *ArticleSection) {
		wordCount += countWords(s.Heading) + countWords(s.Content)
	})

	readingTime := (wordCount + wordsPerMinute - 1) / wordsPerMinute

	return ArticleMetadata{
		WordCount:       wordCount,
		ReadingTime:     readingTime,
		SEOTitle:        truncateWithEllipsis(a.Title, seoTitleLimit),
		MetaDescription: truncateWithEllipsis(a.Introduction, metaDescriptionLimit),
		SourceVideo:     meta.ID,
	}
}

// deriveTags builds up to maxTags tags: topic names, key-point
// categories, the channel slug and two constant provenance tags,
// deduplicated in order.
func deriveTags(analysis analyzer.ContentAnalysis, meta video.Metadata) []string {
	var candidates []string

	for i, topic := range analysis.Topics {
		if i >= maxTopicTags {
			break
		}
		candidates = append(candidates, strings.ToLower(topic.Name))
	}

	for _, kp := range analysis.KeyPoints {
		candidates = append(candidates, strings.ToLower(kp.Category))
	}

	if slug := slugify(meta.ChannelName); slug != "" {
		candidates = append(candidates, slug)
	}
	candidates = append(candidates, "video-summary", "template-generated")

	seen := make(map[string]bool, len(candidates))
	tags := make([]string, 0, maxTags)
	for _, tag := range candidates {
		if tag == "" || seen[tag] {
			continue
		}
		if len(tags) >= maxTags {
			break
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// Finalize recomputes derived metadata and tags on an article produced
// outside the template renderer, so every article carries consistent
// publishing metadata regardless of how its body was written.
func Finalize(a *Article, analysis analyzer.ContentAnalysis, meta video.Metadata) {
	a.Metadata = deriveMetadata(*a, meta)
	a.Tags = deriveTags(analysis, meta)
}

var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := reNonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

func truncateWithEllipsis(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
