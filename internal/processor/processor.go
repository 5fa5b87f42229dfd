package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/export"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

// Process orchestrates the entire transcript-to-article pipeline.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", transcriptPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Load and parse the transcript file
	t, err := transcript.LoadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}
	if len(t.Segments) == 0 {
		return fmt.Errorf("transcript has no segments: %s", transcriptPath)
	}
	p.logger.Info(ctx, "Loaded %d segments (%.0fs, %d words)", len(t.Segments), t.Duration, t.WordCount())

	// Step 2: Normalize
	result := p.normalizer.Process(t, normalizer.DefaultOptions())
	p.logger.Info(ctx, "Normalized: %d -> %d segments, %d filler words removed",
		result.OriginalSegmentCount, result.ProcessedSegmentCount, result.Stats.FillerWordsRemoved)
	cleaned := result.AsTranscript()

	// Step 3: Analyze
	analysis := p.analyzer.Analyze(cleaned, p.analyzerOptions())
	p.logger.Info(ctx, "Analysis: %d topics, %d key points, sentiment %s",
		len(analysis.Topics), len(analysis.KeyPoints), analysis.Sentiment)

	// Step 4: Generate the article, preferring the LLM draft
	meta := video.Metadata{ID: baseName, Title: titleFromFilename(baseName)}
	article := p.generateArticle(ctx, analysis, meta, cleaned)

	// Step 5: Export markdown and docx
	mdPath := filepath.Join(p.cfg.Paths.Output, baseName+".md")
	if err := export.WriteMarkdown(article, mdPath); err != nil {
		return fmt.Errorf("export markdown: %w", err)
	}
	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+".docx")
	if err := export.WriteDocx(article, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to export docx: %v", err)
	}

	// Step 6: Move the source transcript to the archived folder
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive transcript: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Article: %s (%d words, %d min read)", mdPath, article.Metadata.WordCount, article.Metadata.ReadingTime)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// generateArticle asks the LLM writer first and falls back to the
// deterministic template generator on any failure.
func (p *implProcessor) generateArticle(ctx context.Context, analysis analyzer.ContentAnalysis, meta video.Metadata, t transcript.Transcript) generator.Article {
	opts := p.generatorOptions()

	if p.writer != nil {
		article, err := p.writer.WriteArticle(ctx, analysis, meta, t, opts)
		if err == nil {
			p.logger.Info(ctx, "Article drafted by LLM")
			return article
		}
		p.logger.Warn(ctx, "LLM draft failed, falling back to templates: %v", err)
	}

	return p.generator.Generate(analysis, meta, t, opts)
}

func (p *implProcessor) analyzerOptions() analyzer.Options {
	return analyzer.Options{
		MaxKeywords:         p.cfg.Analyzer.MaxKeywords,
		MaxTopics:           p.cfg.Analyzer.MaxTopics,
		MaxKeyPoints:        p.cfg.Analyzer.MaxKeyPoints,
		MinKeywordFrequency: p.cfg.Analyzer.MinKeywordFrequency,
		MinTopicRelevance:   p.cfg.Analyzer.MinTopicRelevance,
		SummaryLength:       p.cfg.Analyzer.SummaryLength,
		IncludeTimestamps:   true,
	}
}

func (p *implProcessor) generatorOptions() generator.Options {
	return generator.Options{
		Tone:              p.cfg.Generator.Tone,
		Length:            p.cfg.Generator.Length,
		CustomTemplate:    p.cfg.Generator.Template,
		IncludeTimestamps: true,
	}
}

// titleFromFilename turns "intro-to-machine_learning" into a readable
// title for articles built from local files with no video metadata.
func titleFromFilename(base string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.Join(strings.Fields(replaced), " ")
}
