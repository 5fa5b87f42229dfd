package processor

import (
	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/config"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/llm"
	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/youtube"
)

type implProcessor struct {
	cfg        *config.Config
	normalizer normalizer.Normalizer
	analyzer   analyzer.Analyzer
	generator  generator.Generator
	writer     llm.Writer
	provider   youtube.Provider
	logger     logger.Logger
}

// New creates a Processor. writer and provider may be nil: without a
// writer every article is rendered by the template generator, and
// without a provider ProcessURL is unavailable.
func New(cfg *config.Config, norm normalizer.Normalizer, an analyzer.Analyzer, gen generator.Generator, writer llm.Writer, provider youtube.Provider, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		normalizer: norm,
		analyzer:   an,
		generator:  gen,
		writer:     writer,
		provider:   provider,
		logger:     log,
	}
}
