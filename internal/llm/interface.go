package llm

import (
	"context"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

// Writer drafts a full article with Gemini. Callers are expected to
// fall back to the template generator when WriteArticle fails, so every
// failure mode returns an error instead of a partial article.
type Writer interface {
	WriteArticle(ctx context.Context, analysis analyzer.ContentAnalysis, meta video.Metadata, t transcript.Transcript, opts generator.Options) (generator.Article, error)
}
