package generator

import (
	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

// Template types.
const (
	TypeTutorial     = "tutorial"
	TypeInterview    = "interview"
	TypePresentation = "presentation"
	TypeDiscussion   = "discussion"
	TypeGeneral      = "general"
)

// Tones.
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneTechnical    = "technical"
)

// Lengths.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Section content types used by template structures.
const (
	ContentSummary   = "summary"
	ContentKeyPoints = "key_points"
	ContentTopics    = "topics"
)

// Generator renders a ContentAnalysis into an Article. Generation is
// synchronous and pure: it never fails for a well-formed analysis,
// including one with zero topics or key points.
type Generator interface {
	Generate(analysis analyzer.ContentAnalysis, meta video.Metadata, t transcript.Transcript, opts Options) Article
	AvailableTemplates() []ArticleTemplate
}

// Options controls rendering.
type Options struct {
	Tone              string `json:"tone"`
	Length            string `json:"length"`
	CustomTemplate    string `json:"custom_template"`
	IncludeTimestamps bool   `json:"include_timestamps"`
}

// DefaultOptions returns the neutral rendering configuration.
func DefaultOptions() Options {
	return Options{
		Tone:              ToneProfessional,
		Length:            LengthMedium,
		IncludeTimestamps: true,
	}
}

// ArticleSection is a recursive section tree; practical depth is 2.
type ArticleSection struct {
	Heading     string           `json:"heading"`
	Content     string           `json:"content"`
	Subsections []ArticleSection `json:"subsections,omitempty"`
}

// ArticleMetadata carries derived publishing metadata.
type ArticleMetadata struct {
	WordCount       int    `json:"word_count"`
	ReadingTime     int    `json:"reading_time"`
	SEOTitle        string `json:"seo_title"`
	MetaDescription string `json:"meta_description"`
	SourceVideo     string `json:"source_video"`
}

// Article is the terminal artifact of the pipeline.
type Article struct {
	Title        string           `json:"title"`
	Introduction string           `json:"introduction"`
	Sections     []ArticleSection `json:"sections"`
	Conclusion   string           `json:"conclusion"`
	Metadata     ArticleMetadata  `json:"metadata"`
	Tags         []string         `json:"tags"`
}

// TemplateSection is one structural slot of an article template.
type TemplateSection struct {
	Heading           string `json:"heading"`
	ContentType       string `json:"content_type"`
	MinLength         int    `json:"min_length,omitempty"`
	MaxLength         int    `json:"max_length,omitempty"`
	IncludeTimestamps bool   `json:"include_timestamps"`
}

// ArticleTemplate is static, read-only template configuration. It is
// selected, never mutated.
type ArticleTemplate struct {
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	DefaultTone     string            `json:"default_tone"`
	EstimatedLength string            `json:"estimated_length"`
	Structure       []TemplateSection `json:"structure"`
}
