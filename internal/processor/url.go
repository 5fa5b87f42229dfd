package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/minhngoc2704/article-flow/internal/export"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/transcript"
)

// ProcessURL fetches a YouTube video's metadata and subtitles, then
// runs the same pipeline as Process with the real video metadata
// attached to the article.
func (p *implProcessor) ProcessURL(ctx context.Context, url string) error {
	if p.provider == nil {
		return fmt.Errorf("no video provider configured")
	}

	startTime := time.Now()

	meta, err := p.provider.FetchMetadata(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch metadata: %w", err)
	}
	p.logger.Info(ctx, "Video: %q by %s (%.0fs)", meta.Title, meta.ChannelName, meta.Duration)

	subtitlePath, err := p.provider.DownloadSubtitles(ctx, url, p.cfg.Paths.Temp)
	if err != nil {
		return fmt.Errorf("download subtitles: %w", err)
	}
	defer p.cleanupTempFile(ctx, subtitlePath)

	t, err := transcript.LoadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("load subtitles: %w", err)
	}
	if len(t.Segments) == 0 {
		return fmt.Errorf("subtitles have no segments: %s", url)
	}

	result := p.normalizer.Process(t, normalizer.DefaultOptions())
	cleaned := result.AsTranscript()

	analysis := p.analyzer.Analyze(cleaned, p.analyzerOptions())
	p.logger.Info(ctx, "Analysis: %d topics, %d key points, sentiment %s",
		len(analysis.Topics), len(analysis.KeyPoints), analysis.Sentiment)

	article := p.generateArticle(ctx, analysis, meta, cleaned)

	mdPath := filepath.Join(p.cfg.Paths.Output, meta.ID+".md")
	if err := export.WriteMarkdown(article, mdPath); err != nil {
		return fmt.Errorf("export markdown: %w", err)
	}
	docxPath := filepath.Join(p.cfg.Paths.Output, meta.ID+".docx")
	if err := export.WriteDocx(article, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to export docx: %v", err)
	}

	p.logger.Info(ctx, "Article ready: %s (took %s)", mdPath, time.Since(startTime))
	return nil
}
